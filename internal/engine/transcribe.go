package engine

import (
	"context"
	"fmt"
)

// Transcribe sends the audio payload to the transcription service with
// a domain hint. Single attempt; transport and service failures come
// back as errors for the caller to surface, never as transcript text.
func (e *implEngine) Transcribe(ctx context.Context, audio AudioInput, languageHint string) (string, error) {
	if len(audio.Data) == 0 {
		return "", fmt.Errorf("transcribe audio: empty audio payload")
	}

	name := audio.Name
	if name == "" {
		name = "audio.wav"
	}

	e.logger.Debug(ctx, "Transcribing %s (%d bytes)", name, len(audio.Data))

	text, err := e.transcriber.transcribeAudio(ctx, name, audio.Data, transcriptionHint(languageHint))
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return text, nil
}
