package pipeline

import "context"

// Pipeline processes one dropped voice note end to end: transcribe,
// generate the profile, render the PDF.
type Pipeline interface {
	Process(ctx context.Context, audioPath string) error
}
