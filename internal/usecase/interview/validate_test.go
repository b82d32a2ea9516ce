package interview

import (
	"bytes"
	"context"
	stdErrors "errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/Sushmeta1/Skill-Synch/errors"
	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

func newTestValidator(t *testing.T, maxSizeMB int) *Validator {
	t.Helper()
	// A bogus binary name keeps tests independent of an installed ffprobe
	prober := media.NewProber(&config.MediaConfig{FFprobePath: "ffprobe-missing-for-tests"}, zap.NewNop())
	return NewValidator(prober, &config.UploadConfig{
		Dir:                t.TempDir(),
		MaxFileSizeMB:      maxSizeMB,
		MaxDurationSeconds: 600,
	}, zap.NewNop())
}

func writeTempFile(t *testing.T, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func assertValidationError(t *testing.T, err error, wantFragment string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error containing %q", wantFragment)
	}
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError got %T: %v", err, err)
	}
	if appErr.Code != apperrors.ErrorCode_VALIDATION_FAILED {
		t.Fatalf("expected VALIDATION_FAILED got %s", appErr.Code.String())
	}
	if appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", appErr.HTTPCode)
	}
	if !strings.Contains(appErr.Message, wantFragment) {
		t.Fatalf("message %q does not contain %q", appErr.Message, wantFragment)
	}
	if len(appErr.Suggestions) == 0 {
		t.Fatalf("validation errors must carry suggestions")
	}
}

func TestValidate_MissingFile(t *testing.T) {
	v := newTestValidator(t, 100)
	_, _, err := v.Validate(context.Background(), "/nonexistent/recording.wav")
	assertValidationError(t, err, "not found")
}

func TestValidate_FileTooLarge(t *testing.T) {
	v := newTestValidator(t, 1)
	path := writeTempFile(t, "big.wav", bytes.Repeat([]byte{0}, 2*1024*1024))
	_, _, err := v.Validate(context.Background(), path)
	assertValidationError(t, err, "too large")
}

func TestValidate_UnsupportedFormat(t *testing.T) {
	v := newTestValidator(t, 100)
	path := writeTempFile(t, "notes.txt", []byte("not a recording"))
	_, _, err := v.Validate(context.Background(), path)
	assertValidationError(t, err, "Unsupported file format")
}

func TestValidate_AudioFile(t *testing.T) {
	v := newTestValidator(t, 100)
	path := writeTempFile(t, "answer.wav", []byte("RIFF fake"))

	kind, info, err := v.Validate(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != entities.MediaKindAudio {
		t.Fatalf("expected audio got %s", kind)
	}
	if info != nil {
		t.Fatalf("audio files have no video info")
	}
}

func TestCheckVideoMetadata_DurationLimits(t *testing.T) {
	v := newTestValidator(t, 100)

	tooLong := &entities.VideoInfo{Duration: 700, Width: 1280, Height: 720, FPS: 30}
	err := v.checkVideoMetadata(tooLong)
	assertValidationError(t, err, "Video too long")

	empty := &entities.VideoInfo{Duration: 0.5, Width: 1280, Height: 720}
	err = v.checkVideoMetadata(empty)
	assertValidationError(t, err, "empty or corrupted")

	ok := &entities.VideoInfo{Duration: 120, Width: 1280, Height: 720, FPS: 30}
	if err := v.checkVideoMetadata(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_VideoWithoutProber(t *testing.T) {
	// Uppercase extension must still classify as video; with no ffprobe the
	// metadata checks are skipped and the file passes basic validation
	v := newTestValidator(t, 100)
	path := writeTempFile(t, "interview.MP4", []byte("fake video"))

	kind, info, err := v.Validate(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != entities.MediaKindVideo {
		t.Fatalf("expected video got %s", kind)
	}
	if info == nil || info.HasMetadata() {
		t.Fatalf("expected degraded video info with note, got %+v", info)
	}
}
