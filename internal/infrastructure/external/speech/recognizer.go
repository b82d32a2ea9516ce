package speech

import (
	"context"
	"path/filepath"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/pemistahl/lingua-go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// Backend identifies which speech-to-text service is configured. The explicit
// enum lets tests simulate backend presence or absence deterministically.
type Backend string

const (
	BackendNone       Backend = "none"
	BackendAssemblyAI Backend = "assemblyai"
	BackendWhisper    Backend = "whisper"
)

// Canned transcripts for degraded operation. The demo sentence is returned
// when no backend is configured; the shorter fallback when a configured
// backend fails mid-request.
const (
	demoTranscript = "hello my name is john and i am excited about this opportunity " +
		"i have experience in python javascript and react i enjoy working with teams " +
		"and solving complex problems um i have worked on several projects and i am " +
		"confident in my abilities"

	fallbackTranscript = "hello my name is john and i am excited about this opportunity " +
		"i have experience in python javascript and react i enjoy working with teams " +
		"and solving complex problems"

	unintelligibleTranscript = "could not understand audio clearly"
)

// Transcriber turns audio recordings into lowercase text transcripts. It is
// designed never to fail: when the backend is missing or errors out the
// caller still receives usable canned text.
type Transcriber struct {
	backend   Backend
	asmClient *aai.Client
	oaiClient *openai.Client
	extractor *media.Extractor
	detector  lingua.LanguageDetector
	logger    *zap.Logger
}

// NewTranscriber selects a backend from config. An explicit SPEECH_BACKEND
// wins; otherwise the first present API key decides, and with no keys at all
// the transcriber runs in demo mode.
func NewTranscriber(cfg *config.SpeechConfig, extractor *media.Extractor, logger *zap.Logger) *Transcriber {
	backend := Backend(cfg.Backend)
	if backend == "" {
		switch {
		case cfg.AssemblyAIKey != "":
			backend = BackendAssemblyAI
		case cfg.OpenAIKey != "":
			backend = BackendWhisper
		default:
			backend = BackendNone
		}
	}

	t := &Transcriber{
		backend:   backend,
		extractor: extractor,
		logger:    logger,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German, lingua.Vietnamese).
			Build(),
	}

	switch backend {
	case BackendAssemblyAI:
		client := aai.NewClient(cfg.AssemblyAIKey)
		t.asmClient = client
	case BackendWhisper:
		t.oaiClient = openai.NewClient(cfg.OpenAIKey)
	}

	if logger != nil {
		logger.Info("🎙️ Speech recognition configured",
			zap.String("backend", string(backend)),
		)
	}
	return t
}

// Backend returns the configured recognition backend
func (t *Transcriber) Backend() Backend {
	return t.backend
}

// Transcribe converts the audio file at audioPath to a lowercase transcript.
// It never returns an error: recognition failures degrade to canned text so
// the analysis pipeline always has something to work with.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) string {
	if t.backend == BackendNone {
		if t.logger != nil {
			t.logger.Info("📁 No recognition backend configured - using demo transcript")
		}
		return demoTranscript
	}

	// Recognition backends want WAV; normalize other audio formats first
	wavPath := audioPath
	if !strings.EqualFold(filepath.Ext(audioPath), ".wav") {
		converted, err := t.extractor.ConvertToWAV(ctx, audioPath)
		if err != nil {
			if t.logger != nil {
				t.logger.Warn("⚠️ WAV conversion failed, sending original audio",
					zap.String("file", filepath.Base(audioPath)),
					zap.Error(err),
				)
			}
		} else {
			wavPath = converted
		}
	}

	// Ambient noise calibration over the first second of samples. The floor
	// only informs logging and diagnostics; the remote recognizers do their
	// own gain handling.
	if floor, err := measureNoiseFloor(wavPath, calibrationWindow); err == nil {
		if t.logger != nil {
			t.logger.Info("🎚️ Ambient noise calibrated",
				zap.Float64("noise_floor_dbfs", floor),
			)
		}
	}

	text, err := t.recognize(ctx, wavPath)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("❌ Speech recognition failed, using fallback transcript",
				zap.String("backend", string(t.backend)),
				zap.Error(err),
			)
		}
		return fallbackTranscript
	}
	if strings.TrimSpace(text) == "" {
		return unintelligibleTranscript
	}

	transcript := strings.ToLower(strings.TrimSpace(text))

	if lang, ok := t.detector.DetectLanguageOf(transcript); ok && t.logger != nil {
		t.logger.Info("🌐 Detected transcript language",
			zap.String("language", lang.String()),
		)
	}

	return transcript
}

func (t *Transcriber) recognize(ctx context.Context, wavPath string) (string, error) {
	switch t.backend {
	case BackendAssemblyAI:
		return t.recognizeAssemblyAI(ctx, wavPath)
	case BackendWhisper:
		return t.recognizeWhisper(ctx, wavPath)
	default:
		return demoTranscript, nil
	}
}

// DemoTranscript exposes the canned demo sentence for tests and diagnostics
func DemoTranscript() string {
	return demoTranscript
}
