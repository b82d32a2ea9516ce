package speech

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// calibrationWindow is the fixed slice of audio measured for the ambient
// noise floor before recognition.
const calibrationWindow = time.Second

// measureNoiseFloor computes the RMS level in dBFS over the first window of
// a 16-bit PCM WAV file. Returns an error for non-PCM or malformed files;
// callers treat calibration as best-effort.
func measureNoiseFloor(wavPath string, window time.Duration) (float64, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return 0, fmt.Errorf("short wav header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a RIFF/WAVE file")
	}

	var (
		sampleRate    uint32
		bitsPerSample uint16
		channels      uint16
	)

	// Walk chunks until the data chunk; the fmt chunk must come first
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(f, hdr[:]); err != nil {
			return 0, fmt.Errorf("wav data chunk not found: %w", err)
		}
		chunkID := string(hdr[0:4])
		chunkSize := binary.LittleEndian.Uint32(hdr[4:8])

		switch chunkID {
		case "fmt ":
			// A PCM fmt chunk carries at least 16 bytes; some encoders write
			// truncated variants that would otherwise index past the buffer
			if chunkSize < 16 {
				return 0, fmt.Errorf("fmt chunk too short (%d bytes)", chunkSize)
			}
			fmtChunk := make([]byte, chunkSize)
			if _, err := io.ReadFull(f, fmtChunk); err != nil {
				return 0, fmt.Errorf("short fmt chunk: %w", err)
			}
			if format := binary.LittleEndian.Uint16(fmtChunk[0:2]); format != 1 {
				return 0, fmt.Errorf("unsupported wav encoding %d", format)
			}
			channels = binary.LittleEndian.Uint16(fmtChunk[2:4])
			sampleRate = binary.LittleEndian.Uint32(fmtChunk[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(fmtChunk[14:16])

		case "data":
			if sampleRate == 0 || bitsPerSample != 16 || channels == 0 {
				return 0, fmt.Errorf("unsupported wav layout (rate=%d bits=%d channels=%d)",
					sampleRate, bitsPerSample, channels)
			}
			sampleCount := int(float64(sampleRate) * window.Seconds() * float64(channels))
			if max := int(chunkSize) / 2; sampleCount > max {
				sampleCount = max
			}
			if sampleCount == 0 {
				return 0, fmt.Errorf("wav file has no samples")
			}

			raw := make([]byte, sampleCount*2)
			n, err := io.ReadFull(f, raw)
			if err != nil && err != io.ErrUnexpectedEOF {
				return 0, err
			}

			var sumSquares float64
			samples := n / 2
			if samples == 0 {
				return 0, fmt.Errorf("wav file has no samples")
			}
			for i := 0; i < samples; i++ {
				s := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
				v := float64(s) / 32768.0
				sumSquares += v * v
			}
			rms := math.Sqrt(sumSquares / float64(samples))
			if rms == 0 {
				return -96, nil
			}
			return 20 * math.Log10(rms), nil

		default:
			// Skip unrelated chunks (LIST, fact, ...)
			if _, err := f.Seek(int64(chunkSize), io.SeekCurrent); err != nil {
				return 0, err
			}
		}
	}
}
