package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
)

type fakeEngine struct {
	transcript    string
	transcribeErr error
	profile       string
	generateErr   error

	gotLanguage    string
	gotNarrative   string
	gotJobDesc     string
	gotTargetLang  string
	gotAudioName   string
	gotAudioLength int
}

func (f *fakeEngine) Redact(text string) string { return engine.Redact(text) }

func (f *fakeEngine) Transcribe(_ context.Context, audio engine.AudioInput, languageHint string) (string, error) {
	f.gotAudioName = audio.Name
	f.gotAudioLength = len(audio.Data)
	f.gotLanguage = languageHint
	return f.transcript, f.transcribeErr
}

func (f *fakeEngine) Generate(_ context.Context, narrative, targetLanguage, jobDescription string) (string, error) {
	f.gotNarrative = narrative
	f.gotTargetLang = targetLanguage
	f.gotJobDesc = jobDescription
	return f.profile, f.generateErr
}

type fakeRenderer struct {
	pdf  []byte
	docx []byte
	err  error

	gotText string
	gotName string
}

func (f *fakeRenderer) RenderPDF(text, displayName string) ([]byte, error) {
	f.gotText, f.gotName = text, displayName
	return f.pdf, f.err
}

func (f *fakeRenderer) RenderDOCX(text, displayName string) ([]byte, error) {
	f.gotText, f.gotName = text, displayName
	return f.docx, f.err
}

func newTestRouter(eng *fakeEngine, rnd *fakeRenderer) *gin.Engine {
	return NewRouter(eng, rnd, logger.New("error"))
}

func multipartAudio(t *testing.T, filename string, data []byte, language string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("audio", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	if language != "" {
		w.WriteField("language", language)
	}
	w.Close()
	return &body, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeEngine{}, &fakeRenderer{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestTranscribe(t *testing.T) {
	eng := &fakeEngine{transcript: "I run a catering business from home"}
	r := newTestRouter(eng, &fakeRenderer{})

	body, contentType := multipartAudio(t, "note.m4a", []byte("audio-bytes"), "isiZulu")
	req := httptest.NewRequest(http.MethodPost, "/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp transcribeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Text != eng.transcript {
		t.Errorf("text = %q", resp.Text)
	}
	if eng.gotAudioName != "note.m4a" || eng.gotAudioLength != len("audio-bytes") {
		t.Errorf("audio = %q (%d bytes)", eng.gotAudioName, eng.gotAudioLength)
	}
	if eng.gotLanguage != "isiZulu" {
		t.Errorf("language = %q", eng.gotLanguage)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	r := newTestRouter(&fakeEngine{}, &fakeRenderer{})
	req := httptest.NewRequest(http.MethodPost, "/v1/transcriptions", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestTranscribeServiceFailure(t *testing.T) {
	eng := &fakeEngine{transcribeErr: errors.New("upstream timeout")}
	r := newTestRouter(eng, &fakeRenderer{})

	body, contentType := multipartAudio(t, "note.wav", []byte("x"), "")
	req := httptest.NewRequest(http.MethodPost, "/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error transcribing audio") {
		t.Errorf("body = %s, want displayable error marker", w.Body.String())
	}
}

func TestGenerate(t *testing.T) {
	eng := &fakeEngine{profile: "# Profile\n## Summary\nVendor."}
	r := newTestRouter(eng, &fakeRenderer{})

	reqBody := `{"narrative":"I sell vegetables","target_language":"Afrikaans","job_description":"Retail role"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/profiles", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Profile != eng.profile {
		t.Errorf("profile = %q", resp.Profile)
	}
	if eng.gotTargetLang != "Afrikaans" || eng.gotJobDesc != "Retail role" {
		t.Errorf("args = (%q, %q)", eng.gotTargetLang, eng.gotJobDesc)
	}
}

func TestGenerateEmptyNarrative(t *testing.T) {
	r := newTestRouter(&fakeEngine{}, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/v1/profiles", strings.NewReader(`{"narrative":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestGenerateServiceFailure(t *testing.T) {
	eng := &fakeEngine{generateErr: errors.New("quota exceeded")}
	r := newTestRouter(eng, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/v1/profiles", strings.NewReader(`{"narrative":"story"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error generating profile") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRenderPDF(t *testing.T) {
	rnd := &fakeRenderer{pdf: []byte("%PDF-fake")}
	r := newTestRouter(&fakeEngine{}, rnd)

	reqBody := `{"profile":"# X\nbody","display_name":"Thandi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("content type = %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), pdfFilename) {
		t.Errorf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
	if w.Body.String() != "%PDF-fake" {
		t.Errorf("body = %q", w.Body.String())
	}
	if rnd.gotName != "Thandi" {
		t.Errorf("display name = %q", rnd.gotName)
	}
}

func TestRenderDOCX(t *testing.T) {
	rnd := &fakeRenderer{docx: []byte("PKfake")}
	r := newTestRouter(&fakeEngine{}, rnd)

	reqBody := `{"profile":"# X","format":"docx"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), docxFilename) {
		t.Errorf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
}

func TestRenderFailure(t *testing.T) {
	rnd := &fakeRenderer{err: errors.New("layout failed")}
	r := newTestRouter(&fakeEngine{}, rnd)

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", strings.NewReader(`{"profile":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PDF creation failed") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r := newTestRouter(&fakeEngine{}, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", strings.NewReader(`{"profile":"x","format":"odt"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}
