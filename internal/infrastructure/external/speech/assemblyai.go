package speech

import (
	"context"
	"fmt"
	"os"
)

// recognizeAssemblyAI uploads the WAV to AssemblyAI and waits for the
// finished transcript.
func (t *Transcriber) recognizeAssemblyAI(ctx context.Context, wavPath string) (string, error) {
	if t.asmClient == nil {
		return "", fmt.Errorf("assemblyai client not configured")
	}

	f, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	transcript, err := t.asmClient.Transcripts.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
