package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/Sushmeta1/Skill-Synch/errors"
	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/cache"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/external/speech"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/storage"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// reportTTL bounds how long a report stays retrievable after analysis
const reportTTL = 24 * time.Hour

// AnalysisService orchestrates the interview analysis pipeline
type AnalysisService struct {
	validator   *Validator
	extractor   *media.Extractor
	transcriber *speech.Transcriber
	reports     cache.ReportStore
	archive     *storage.RecordingArchive
	cfg         *config.Config
	logger      *zap.Logger

	// sentimentLexicon gates the VADER polarity scorer; when false the
	// analyzers fall back to keyword-ratio polarity
	sentimentLexicon bool
}

// NewAnalysisService creates a new interview analysis service. The archive
// may be nil when object storage is not configured.
func NewAnalysisService(
	validator *Validator,
	extractor *media.Extractor,
	transcriber *speech.Transcriber,
	reports cache.ReportStore,
	archive *storage.RecordingArchive,
	cfg *config.Config,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		validator:        validator,
		extractor:        extractor,
		transcriber:      transcriber,
		reports:          reports,
		archive:          archive,
		cfg:              cfg,
		logger:           logger,
		sentimentLexicon: true,
	}
}

// Analyze validates the recording, then runs extraction, transcription and
// the analyzers. Validation errors are returned to the caller; every failure
// after validation is logged and swallowed into the fallback report so the
// client always receives a complete result.
func (s *AnalysisService) Analyze(ctx context.Context, filePath string) (*entities.AnalysisReport, error) {
	kind, videoInfo, err := s.validator.Validate(ctx, filePath)
	if err != nil {
		return nil, err
	}

	report, err := s.runPipeline(ctx, entities.NewAnalysisInput(filePath, kind), videoInfo)
	if err != nil {
		s.logger.Error("❌ Interview analysis failed, returning fallback report",
			zap.String("file", filepath.Base(filePath)),
			zap.Error(err),
		)
		report = entities.NewFallbackReport()
	}

	s.archiveRecording(ctx, report.ID.String(), filePath)
	s.storeReport(ctx, report)

	return report, nil
}

// GetReport retrieves a cached report by ID
func (s *AnalysisService) GetReport(ctx context.Context, reportID string) (*entities.AnalysisReport, error) {
	payload, err := s.reports.GetReport(ctx, reportID)
	if err != nil {
		if errors.Is(err, cache.ErrReportNotFound) {
			return nil, apperrors.ErrNotFound("Report")
		}
		return nil, apperrors.ErrCacheFailed("get report", err)
	}

	var report entities.AnalysisReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("failed to decode cached report: %w", err))
	}
	return &report, nil
}

func (s *AnalysisService) runPipeline(ctx context.Context, input entities.AnalysisInput, videoInfo *entities.VideoInfo) (report *entities.AnalysisReport, err error) {
	// A panic anywhere in the pipeline degrades to the fallback report like
	// any other failure
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()

	audioPath := input.FilePath
	var tempDir string
	defer func() {
		if tempDir != "" && !s.cfg.Upload.KeepExtractedAudio {
			if rmErr := os.RemoveAll(tempDir); rmErr != nil {
				s.logger.Warn("⚠️ Failed to clean up temp files", zap.Error(rmErr))
			}
		}
	}()

	if input.Kind == entities.MediaKindVideo {
		s.logger.Info("📹 Video file detected", zap.String("file", filepath.Base(input.FilePath)))

		tempDir, audioPath, err = s.extractAudio(ctx, input.FilePath)
		if err != nil {
			return nil, apperrors.ErrExtraction(err)
		}
		s.logger.Info("✅ Audio extracted from video", zap.String("audio", filepath.Base(audioPath)))
	} else {
		s.logger.Info("🎙️ Audio file detected", zap.String("file", filepath.Base(input.FilePath)))
	}

	transcript := s.transcriber.Transcribe(ctx, audioPath)

	speechAnalysis := AnalyzeSpeechPatterns(transcript)
	sentimentAnalysis := AnalyzeSentimentAndEmotion(transcript, s.sentimentLexicon)
	contentAnalysis := AnalyzeContentQuality(transcript)
	feedback := GenerateFeedback(speechAnalysis, sentimentAnalysis, contentAnalysis)

	report = entities.NewAnalysisReport()
	report.OverallScore = overallScore(speechAnalysis, contentAnalysis)
	report.Transcript = transcript
	report.SpeechAnalysis = speechAnalysis
	report.SentimentAnalysis = sentimentAnalysis
	report.ContentAnalysis = contentAnalysis
	report.Feedback = feedback
	report.PerformanceSummary = performanceSummary(speechAnalysis, contentAnalysis, feedback)
	report.VideoMetadata = videoMetadata(input.Kind, videoInfo)

	s.logger.Info("✅ Interview analysis completed",
		zap.String("report_id", report.ID.String()),
		zap.Int("overall_score", report.OverallScore),
		zap.Int("total_words", speechAnalysis.TotalWords),
	)

	return report, nil
}

// extractAudio isolates the audio track into a fresh temp directory, retrying
// with a constant delay on failure. Returns the temp dir (for cleanup) and
// the extracted audio path.
func (s *AnalysisService) extractAudio(ctx context.Context, videoPath string) (string, string, error) {
	tempDir, err := os.MkdirTemp(s.cfg.Upload.Dir, "skillsync-")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	destPath := filepath.Join(tempDir, "extracted_audio.wav")

	var audioPath string
	operation := func() error {
		path, extractErr := s.extractor.Extract(ctx, videoPath, destPath)
		if extractErr != nil {
			s.logger.Warn("⚠️ Audio extraction attempt failed",
				zap.String("file", filepath.Base(videoPath)),
				zap.Error(extractErr),
			)
			return extractErr
		}
		audioPath = path
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(s.cfg.Media.RetryDelay),
			uint64(s.cfg.Media.MaxRetries),
		),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return tempDir, "", err
	}

	return tempDir, audioPath, nil
}

// archiveRecording uploads the original recording to object storage when an
// archive is configured. Failures are logged and never affect the response.
func (s *AnalysisService) archiveRecording(ctx context.Context, reportID, filePath string) {
	if s.archive == nil {
		return
	}

	objectName := reportID + filepath.Ext(filePath)
	if _, err := s.archive.ArchiveRecording(ctx, objectName, filePath); err != nil {
		s.logger.Warn("⚠️ Failed to archive recording",
			zap.String("object", objectName),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("📦 Recording archived", zap.String("object", objectName))
}

// storeReport caches the serialized report for later retrieval. Failures are
// logged and never affect the response.
func (s *AnalysisService) storeReport(ctx context.Context, report *entities.AnalysisReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("⚠️ Failed to serialize report for caching", zap.Error(err))
		return
	}
	if err := s.reports.SaveReport(ctx, report.ID.String(), payload, reportTTL); err != nil {
		s.logger.Warn("⚠️ Failed to cache report",
			zap.String("report_id", report.ID.String()),
			zap.Error(err),
		)
	}
}

// overallScore combines the component scores into the headline number
func overallScore(speechMetrics entities.SpeechMetrics, contentMetrics entities.ContentMetrics) int {
	return int(math.Round(
		float64(speechMetrics.ConfidenceScore)*0.3 +
			float64(speechMetrics.ClarityScore)*0.25 +
			float64(100-speechMetrics.HesitationRate)*0.15 +
			float64(contentMetrics.ContentQualityScore)*0.3,
	))
}

// performanceSummary buckets each dimension into strengths or improvement
// areas; the top three feedback items double as the recommendations
func performanceSummary(speechMetrics entities.SpeechMetrics, contentMetrics entities.ContentMetrics, feedback []string) entities.PerformanceSummary {
	summary := entities.PerformanceSummary{
		Strengths:           make([]string, 0, 3),
		AreasForImprovement: make([]string, 0, 3),
	}

	if speechMetrics.ConfidenceScore > 75 {
		summary.Strengths = append(summary.Strengths, "High confidence level")
	} else {
		summary.AreasForImprovement = append(summary.AreasForImprovement, "Build confidence")
	}

	if speechMetrics.HesitationRate < 10 {
		summary.Strengths = append(summary.Strengths, "Fluent speaking")
	} else {
		summary.AreasForImprovement = append(summary.AreasForImprovement, "Reduce hesitation")
	}

	if contentMetrics.ContentQualityScore > 70 {
		summary.Strengths = append(summary.Strengths, "Strong content quality")
	} else {
		summary.AreasForImprovement = append(summary.AreasForImprovement, "Improve content depth")
	}

	if len(feedback) > 3 {
		summary.Recommendations = feedback[:3]
	} else {
		summary.Recommendations = feedback
	}

	return summary
}

// videoMetadata records how the media stage handled the recording
func videoMetadata(kind entities.MediaKind, info *entities.VideoInfo) entities.VideoMetadata {
	if kind != entities.MediaKindVideo || info == nil {
		return entities.VideoMetadata{
			FileType:       entities.MediaKindAudio,
			AudioExtracted: false,
		}
	}

	format := info.Format
	if format == "" {
		format = "unknown"
	}
	return entities.VideoMetadata{
		FileType:       entities.MediaKindVideo,
		AudioExtracted: true,
		OriginalFormat: format,
		Duration:       info.Duration,
		Width:          info.Width,
		Height:         info.Height,
		FPS:            info.FPS,
	}
}
