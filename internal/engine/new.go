package engine

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/KagiiKubu/Ithuba/internal/config"
	"github.com/KagiiKubu/Ithuba/internal/groq"
	"github.com/KagiiKubu/Ithuba/internal/logger"
)

// ErrNoModelAvailable means no candidate generation model could be
// initialized. The engine cannot be constructed and the process cannot
// serve; this is the one failure that is not recovered per request.
var ErrNoModelAvailable = errors.New("no generation model available")

// textGenerator is the seam to the generation service.
type textGenerator interface {
	generateText(ctx context.Context, prompt string) (string, error)
}

// audioTranscriber is the seam to the transcription service.
type audioTranscriber interface {
	transcribeAudio(ctx context.Context, filename string, data []byte, prompt string) (string, error)
}

type implEngine struct {
	generator   textGenerator
	transcriber audioTranscriber
	logger      logger.Logger
}

// New constructs the engine. One instance should be built per process
// and reused; it holds no per-request state. Candidate generation
// models are tried in order and the first that resolves is kept.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Engine, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model, err := selectModel(ctx, client, cfg.Gemini.Models, log)
	if err != nil {
		return nil, err
	}

	return &implEngine{
		generator:   &geminiGenerator{client: client, model: model},
		transcriber: &groqTranscriber{client: groq.NewClient(cfg.Groq.APIKey), model: cfg.Groq.Model},
		logger:      log,
	}, nil
}

func selectModel(ctx context.Context, client *genai.Client, candidates []string, log logger.Logger) (string, error) {
	var lastErr error
	for _, name := range candidates {
		if _, err := client.Models.Get(ctx, name, nil); err != nil {
			log.Warn(ctx, "Failed to initialize %s: %v", name, err)
			lastErr = err
			continue
		}
		log.Info(ctx, "Successfully initialized: %s", name)
		return name, nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrNoModelAvailable, lastErr)
	}
	return "", ErrNoModelAvailable
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from %s", g.model)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from %s", g.model)
	}
	return text, nil
}

type groqTranscriber struct {
	client *groq.Client
	model  string
}

func (t *groqTranscriber) transcribeAudio(ctx context.Context, filename string, data []byte, prompt string) (string, error) {
	return t.client.Transcribe(ctx, groq.TranscriptionRequest{
		Filename: filename,
		Data:     data,
		Model:    t.model,
		Prompt:   prompt,
	})
}
