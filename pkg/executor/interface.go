package executor

import "context"

// Executor runs external commands (ffmpeg, in practice).
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
