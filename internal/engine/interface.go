package engine

import (
	"context"
	"fmt"
	"io"
)

// Engine turns a spoken or typed work narrative into a professional
// profile text, enforcing the contact-detail redaction policy before
// anything leaves the process.
type Engine interface {
	// Redact replaces email addresses and South African phone numbers
	// with fixed sentinel tokens. Pure and idempotent.
	Redact(text string) string

	// Transcribe converts an audio payload to text via the
	// transcription service. languageHint is a human-readable language
	// name used only to bias the transcription.
	Transcribe(ctx context.Context, audio AudioInput, languageHint string) (string, error)

	// Generate produces an ATS-optimized profile in markdown-lite form
	// (# title, ## section headings, plain body lines). The narrative
	// is always redacted before it is embedded in the prompt.
	Generate(ctx context.Context, narrative, targetLanguage, jobDescription string) (string, error)
}

// AudioInput is one audio payload, normalized to a (name, bytes) pair
// whether it came from a raw recording buffer or an uploaded file.
type AudioInput struct {
	Name string
	Data []byte
}

// AudioFromBytes wraps a raw recording buffer under a default filename.
func AudioFromBytes(data []byte) AudioInput {
	return AudioInput{Name: "audio.wav", Data: data}
}

// AudioFromReader drains a named stream, such as an uploaded file.
func AudioFromReader(name string, r io.Reader) (AudioInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return AudioInput{}, fmt.Errorf("read audio stream: %w", err)
	}
	return AudioInput{Name: name, Data: data}, nil
}
