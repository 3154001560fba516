package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Process runs one voice note through the full flow: optional ffmpeg
// downmix, transcription, profile generation, PDF rendering. Outputs
// land in the output folder under the voice note's base name; the
// original is moved to the archived folder.
func (p *implPipeline) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing voice note: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	uploadPath := audioPath
	if p.cfg.Audio.Downmix {
		downmixed, err := p.downmix(ctx, audioPath)
		if err != nil {
			p.logger.Warn(ctx, "Downmix failed, sending original audio: %v", err)
		} else {
			uploadPath = downmixed
			defer p.cleanupTempFile(ctx, downmixed)
		}
	}

	data, err := os.ReadFile(uploadPath)
	if err != nil {
		return fmt.Errorf("read voice note: %w", err)
	}

	audio, err := audioInputFor(filepath.Base(uploadPath), data)
	if err != nil {
		return err
	}

	transcript, err := p.engine.Transcribe(ctx, audio, p.cfg.Profile.Language)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Info(ctx, "Transcription complete (%d chars)", len(transcript))

	profile, err := p.engine.Generate(ctx, transcript, p.cfg.Profile.Language, "")
	if err != nil {
		return fmt.Errorf("generate profile: %w", err)
	}
	p.logger.Info(ctx, "Profile generated (%d chars)", len(profile))

	if err := p.writeOutputs(ctx, baseName, profile); err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")
	return nil
}

func (p *implPipeline) writeOutputs(ctx context.Context, baseName, profile string) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(p.cfg.Paths.Output, baseName+".md")
	if err := os.WriteFile(mdPath, []byte(profile), 0644); err != nil {
		return fmt.Errorf("write profile text: %w", err)
	}
	p.logger.Info(ctx, "Profile text written: %s", mdPath)

	// No name is known in watch mode; the renderer falls back to its
	// placeholder and the user fills it in from the editable text.
	pdfData, err := p.renderer.RenderPDF(profile, "")
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	pdfPath := filepath.Join(p.cfg.Paths.Output, baseName+".pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	p.logger.Info(ctx, "Profile document written: %s", pdfPath)
	return nil
}

func (p *implPipeline) moveToArchived(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))
	p.logger.Info(ctx, "Archiving voice note: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
