package speech

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// recognizeWhisper sends the WAV to the OpenAI Whisper transcription endpoint
func (t *Transcriber) recognizeWhisper(ctx context.Context, wavPath string) (string, error) {
	if t.oaiClient == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	resp, err := t.oaiClient.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: wavPath,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return resp.Text, nil
}
