// Package groq is a minimal client for the Groq audio transcription API
// (OpenAI-compatible Whisper endpoint). Only the pieces the profile
// engine needs are implemented.
package groq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	// TranscriptionEndpoint is the Groq Whisper transcription endpoint.
	TranscriptionEndpoint = "https://api.groq.com/openai/v1/audio/transcriptions"
	// DefaultModel is the transcription model used when none is configured.
	DefaultModel = "whisper-large-v3"
)

// Client talks to the Groq transcription API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Groq API client. The key is not validated here;
// a missing or wrong key surfaces as a call failure.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: TranscriptionEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// TranscriptionRequest carries one audio payload to transcribe.
type TranscriptionRequest struct {
	Filename string
	Data     []byte
	Model    string
	// Prompt is a domain hint that biases the transcription vocabulary.
	Prompt string
}

// Transcribe uploads the audio as multipart form data and returns the
// plain transcribed text. Single attempt, no retries.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", req.Filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return "", fmt.Errorf("write audio payload: %w", err)
	}

	fields := map[string]string{
		"model":           model,
		"response_format": "text",
	}
	if req.Prompt != "" {
		fields["prompt"] = req.Prompt
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription API returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return strings.TrimSpace(string(respBody)), nil
}
