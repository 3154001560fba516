package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KagiiKubu/Ithuba/internal/engine"
)

// downmix converts the voice note to 16kHz mono WAV before upload.
// Speech models need no more than that, and it keeps uploads small.
// The output goes to the temp folder: writing it next to the original
// would drop a fresh .wav into the watched input folder and the
// watcher would pick it up as a new voice note.
func (p *implPipeline) downmix(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outPath := filepath.Join(p.cfg.Paths.Temp, base+"_16k.wav")

	p.logger.Info(ctx, "Downmixing audio: %s", audioPath)

	args := []string{
		"-i", audioPath,
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // mono
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Audio.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg downmix: %w", err)
	}

	p.logger.Info(ctx, "Audio downmixed: %s", outPath)
	return outPath, nil
}

func audioInputFor(name string, data []byte) (engine.AudioInput, error) {
	if len(data) == 0 {
		return engine.AudioInput{}, fmt.Errorf("voice note %s is empty", name)
	}
	return engine.AudioInput{Name: name, Data: data}, nil
}
