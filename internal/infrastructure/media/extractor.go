package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// Extracted audio is mono 16-bit PCM at 16 kHz, the format every supported
// recognition backend accepts.
const (
	audioSampleRate = "16000"
	audioChannels   = "1"
	audioCodec      = "pcm_s16le"
)

// Extractor isolates audio tracks from video files and normalizes audio
// uploads to WAV, using the ffmpeg binary.
type Extractor struct {
	ffmpegPath string
	logger     *zap.Logger
}

// NewExtractor creates an Extractor using the configured ffmpeg binary
func NewExtractor(cfg *config.MediaConfig, logger *zap.Logger) *Extractor {
	return &Extractor{
		ffmpegPath: cfg.FFmpegPath,
		logger:     logger,
	}
}

// Available reports whether the ffmpeg binary can be found
func (e *Extractor) Available() bool {
	_, err := exec.LookPath(e.ffmpegPath)
	return err == nil
}

// Extract writes the audio track of videoPath to destPath as mono PCM WAV and
// returns the output path. When destPath is empty the name is derived from
// the video file stem. The fast single-pass transcode is tried first; on
// failure a tolerant full-decode pass runs before the error is surfaced.
// The source video is never modified.
func (e *Extractor) Extract(ctx context.Context, videoPath, destPath string) (string, error) {
	if !e.Available() {
		return "", fmt.Errorf("ffmpeg not available at %q", e.ffmpegPath)
	}

	if destPath == "" {
		stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		destPath = filepath.Join(filepath.Dir(videoPath), stem+"_extracted_audio.wav")
	}

	// Fast path: direct transcode of the default audio stream
	fastArgs := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", audioCodec,
		"-ac", audioChannels,
		"-ar", audioSampleRate,
		destPath,
	}
	if err := e.runFFmpeg(ctx, fastArgs); err == nil {
		return e.verifyOutput(destPath)
	} else if e.logger != nil {
		e.logger.Warn("⚠️ Direct audio extraction failed, falling back to full decode",
			zap.String("file", filepath.Base(videoPath)),
			zap.Error(err),
		)
	}

	// Tolerant path: explicit stream mapping with error concealment and a
	// software resample, which copes with damaged containers the fast path
	// rejects.
	fallbackArgs := []string{
		"-y",
		"-err_detect", "ignore_err",
		"-i", videoPath,
		"-map", "0:a:0",
		"-af", "aresample=" + audioSampleRate,
		"-acodec", audioCodec,
		"-ac", audioChannels,
		destPath,
	}
	if err := e.runFFmpeg(ctx, fallbackArgs); err != nil {
		return "", fmt.Errorf("audio extraction failed: %w", err)
	}

	return e.verifyOutput(destPath)
}

// ConvertToWAV transcodes an audio file to mono PCM WAV next to the original
// and returns the new path. WAV inputs are returned unchanged.
func (e *Extractor) ConvertToWAV(ctx context.Context, audioPath string) (string, error) {
	if strings.EqualFold(filepath.Ext(audioPath), ".wav") {
		return audioPath, nil
	}
	if !e.Available() {
		return audioPath, fmt.Errorf("ffmpeg not available at %q", e.ffmpegPath)
	}

	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".wav"
	args := []string{
		"-y",
		"-i", audioPath,
		"-acodec", audioCodec,
		"-ac", audioChannels,
		"-ar", audioSampleRate,
		wavPath,
	}
	if err := e.runFFmpeg(ctx, args); err != nil {
		return audioPath, fmt.Errorf("audio conversion failed: %w", err)
	}
	return wavPath, nil
}

// runFFmpeg executes ffmpeg with the given arguments, returning stderr detail
// on failure
func (e *Extractor) runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// verifyOutput confirms the extraction actually produced a non-empty file
func (e *Extractor) verifyOutput(destPath string) (string, error) {
	info, err := os.Stat(destPath)
	if err != nil {
		return "", fmt.Errorf("audio extraction completed but file not found: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("audio extraction produced an empty file")
	}
	if e.logger != nil {
		e.logger.Info("✅ Audio extracted",
			zap.String("audio", filepath.Base(destPath)),
			zap.Int64("bytes", info.Size()),
		)
	}
	return destPath, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
