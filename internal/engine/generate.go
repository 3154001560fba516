package engine

import (
	"context"
	"fmt"
	"strings"
)

// Generate redacts the narrative, builds the recruiter prompt and
// dispatches it to the generation service. The returned text uses the
// markdown-lite vocabulary the renderer depends on: one # title line,
// ## section headings, plain body lines.
func (e *implEngine) Generate(ctx context.Context, narrative, targetLanguage, jobDescription string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = "English"
	}

	// Redaction is an internal step, never a caller-optional one. It is
	// the only safeguard against leaking contact details to the
	// generation service.
	clean := Redact(strings.TrimSpace(narrative))

	prompt := buildProfilePrompt(clean, targetLanguage, jobDescription)

	e.logger.Debug(ctx, "Generating profile (narrative %d chars, jd %d chars, language %s)",
		len(clean), len(jobDescription), targetLanguage)

	text, err := e.generator.generateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate profile: %w", err)
	}
	return text, nil
}
