package speech

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

func newDemoTranscriber(t *testing.T) *Transcriber {
	t.Helper()
	extractor := media.NewExtractor(&config.MediaConfig{FFmpegPath: "ffmpeg-missing-for-tests"}, zap.NewNop())
	return NewTranscriber(&config.SpeechConfig{Backend: "none"}, extractor, zap.NewNop())
}

func TestNewTranscriber_BackendSelection(t *testing.T) {
	extractor := media.NewExtractor(&config.MediaConfig{FFmpegPath: "ffmpeg-missing-for-tests"}, zap.NewNop())

	cases := []struct {
		name string
		cfg  config.SpeechConfig
		want Backend
	}{
		{"explicit none", config.SpeechConfig{Backend: "none", AssemblyAIKey: "key"}, BackendNone},
		{"auto assemblyai", config.SpeechConfig{AssemblyAIKey: "key"}, BackendAssemblyAI},
		{"auto whisper", config.SpeechConfig{OpenAIKey: "key"}, BackendWhisper},
		{"no keys", config.SpeechConfig{}, BackendNone},
	}
	for _, tc := range cases {
		tr := NewTranscriber(&tc.cfg, extractor, zap.NewNop())
		if tr.Backend() != tc.want {
			t.Fatalf("%s: expected %s got %s", tc.name, tc.want, tr.Backend())
		}
	}
}

func TestTranscribe_NoBackendReturnsDemo(t *testing.T) {
	tr := newDemoTranscriber(t)

	got := tr.Transcribe(context.Background(), "/nonexistent/audio.wav")
	if got != DemoTranscript() {
		t.Fatalf("expected demo transcript got %q", got)
	}
}

// writeTestWAV writes a mono 16-bit PCM file with every sample set to the
// given amplitude
func writeTestWAV(t *testing.T, sampleRate uint32, amplitude int16, samples int) string {
	t.Helper()

	dataSize := samples * 2
	buf := make([]byte, 0, 44+dataSize)

	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+dataSize))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // PCM
	buf = binary.LittleEndian.AppendUint16(buf, 1) // mono
	buf = binary.LittleEndian.AppendUint32(buf, sampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, sampleRate*2)
	buf = binary.LittleEndian.AppendUint16(buf, 2)
	buf = binary.LittleEndian.AppendUint16(buf, 16)

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dataSize))
	for i := 0; i < samples; i++ {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(amplitude))
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write wav: %v", err)
	}
	return path
}

func TestMeasureNoiseFloor_Silence(t *testing.T) {
	path := writeTestWAV(t, 8000, 0, 8000)

	floor, err := measureNoiseFloor(path, calibrationWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if floor != -96 {
		t.Fatalf("expected silence floor -96 got %v", floor)
	}
}

func TestMeasureNoiseFloor_HalfScale(t *testing.T) {
	// Constant half-scale amplitude is about -6 dBFS
	path := writeTestWAV(t, 8000, 16384, 8000)

	floor, err := measureNoiseFloor(path, calibrationWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 20 * math.Log10(0.5)
	if math.Abs(floor-want) > 0.1 {
		t.Fatalf("expected about %.2f dBFS got %v", want, floor)
	}
}

func TestMeasureNoiseFloor_RejectsShortFmtChunk(t *testing.T) {
	// Some encoders write a 14-byte fmt chunk without the bits-per-sample
	// field; that must fail cleanly instead of reading past the chunk
	buf := make([]byte, 0, 64)
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, 38)
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 14)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // PCM
	buf = binary.LittleEndian.AppendUint16(buf, 1) // mono
	buf = binary.LittleEndian.AppendUint32(buf, 8000)
	buf = binary.LittleEndian.AppendUint32(buf, 16000)
	buf = binary.LittleEndian.AppendUint16(buf, 2)

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, 0)

	path := filepath.Join(t.TempDir(), "short-fmt.wav")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write wav: %v", err)
	}

	if _, err := measureNoiseFloor(path, calibrationWindow); err == nil {
		t.Fatalf("expected error for truncated fmt chunk")
	}
}

func TestMeasureNoiseFloor_RejectsNonWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav file"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := measureNoiseFloor(path, calibrationWindow); err == nil {
		t.Fatalf("expected error for non-WAV input")
	}
}
