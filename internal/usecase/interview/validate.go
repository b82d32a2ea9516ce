package interview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/Sushmeta1/Skill-Synch/errors"
	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// supportedAudioFormats lists the audio extensions accepted without
// extraction
var supportedAudioFormats = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".aac"}

// Validator checks an uploaded recording before the pipeline touches it.
// Every rejection is a validation AppError with user-facing suggestions;
// these are the only pipeline errors callers ever see.
type Validator struct {
	prober      *media.Prober
	maxSize     int64
	maxDuration int
	logger      *zap.Logger
}

func NewValidator(prober *media.Prober, cfg *config.UploadConfig, logger *zap.Logger) *Validator {
	return &Validator{
		prober:      prober,
		maxSize:     cfg.MaxFileSizeBytes(),
		maxDuration: cfg.MaxDurationSeconds,
		logger:      logger,
	}
}

// Validate classifies the recording and enforces size, format and duration
// limits. For video files it also probes metadata; when the prober is
// unavailable only the basic checks run.
func (v *Validator) Validate(ctx context.Context, filePath string) (entities.MediaKind, *entities.VideoInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return "", nil, apperrors.ErrValidation(fmt.Sprintf("Recording file not found: %s", filepath.Base(filePath)))
	}

	if stat.Size() > v.maxSize {
		sizeMB := float64(stat.Size()) / (1024 * 1024)
		return "", nil, apperrors.ErrValidation(
			fmt.Sprintf("Recording file too large: %.1fMB (max: %dMB)", sizeMB, v.maxSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if media.IsVideoFile(filePath) {
		info, err := v.validateVideo(ctx, filePath)
		if err != nil {
			return "", nil, err
		}
		return entities.MediaKindVideo, info, nil
	}

	if !isSupportedAudio(ext) {
		return "", nil, apperrors.ErrValidation(
			fmt.Sprintf("Unsupported file format: %s. Supported formats: %s",
				ext, strings.Join(v.supportedFormats(), ", ")))
	}
	return entities.MediaKindAudio, nil, nil
}

func (v *Validator) validateVideo(ctx context.Context, filePath string) (*entities.VideoInfo, error) {
	probed, err := v.prober.Probe(ctx, filePath)
	if err != nil {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Video file corrupted or unreadable: %v", err))
	}
	info := &probed

	if !info.HasMetadata() {
		v.logger.Warn("⚠️ Video metadata unavailable - basic validation only",
			zap.String("file", filepath.Base(filePath)))
		return info, nil
	}

	if err := v.checkVideoMetadata(info); err != nil {
		return nil, err
	}
	return info, nil
}

// checkVideoMetadata enforces duration limits on probed metadata and warns on
// low resolution
func (v *Validator) checkVideoMetadata(info *entities.VideoInfo) error {
	if info.Duration > float64(v.maxDuration) {
		return apperrors.ErrValidation(
			fmt.Sprintf("Video too long: %.1fs (max: %ds)", info.Duration, v.maxDuration))
	}
	if info.Duration < 1 {
		return apperrors.ErrValidation("Video file appears to be empty or corrupted")
	}

	if info.Width < 240 || info.Height < 240 {
		v.logger.Warn("⚠️ Low video resolution",
			zap.Int("width", info.Width),
			zap.Int("height", info.Height))
	}
	return nil
}

func (v *Validator) supportedFormats() []string {
	formats := media.SupportedVideoFormats()
	return append(formats, supportedAudioFormats...)
}

func isSupportedAudio(ext string) bool {
	for _, supported := range supportedAudioFormats {
		if ext == supported {
			return true
		}
	}
	return false
}
