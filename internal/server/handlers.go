package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
)

const (
	pdfFilename  = "Ithuba_Professional_Profile.pdf"
	docxFilename = "Ithuba_Professional_Profile.docx"
)

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// transcribe accepts a multipart voice note upload (field "audio") and
// an optional "language" field naming the spoken language.
func (h *handler) transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a voice note (mp3, wav, m4a)."})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Voice note is too large."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error reading upload: %v", err)})
		return
	}
	defer file.Close()

	audio, err := engine.AudioFromReader(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error reading upload: %v", err)})
		return
	}

	text, err := h.engine.Transcribe(c.Request.Context(), audio, c.PostForm("language"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "Transcription failed: %s", logger.FormatError(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Error transcribing audio: %v", err)})
		return
	}

	c.JSON(http.StatusOK, transcribeResponse{Text: text})
}

type generateRequest struct {
	Narrative      string `json:"narrative"`
	TargetLanguage string `json:"target_language"`
	JobDescription string `json:"job_description"`
}

type generateResponse struct {
	Profile string `json:"profile"`
}

func (h *handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	if req.Narrative == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a description or upload audio first!"})
		return
	}

	profile, err := h.engine.Generate(c.Request.Context(), req.Narrative, req.TargetLanguage, req.JobDescription)
	if err != nil {
		h.logger.Error(c.Request.Context(), "Generation failed: %s", logger.FormatError(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Error generating profile: %v", err)})
		return
	}

	c.JSON(http.StatusOK, generateResponse{Profile: profile})
}

type renderRequest struct {
	Profile     string `json:"profile"`
	DisplayName string `json:"display_name"`
	Format      string `json:"format"`
}

func (h *handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	switch req.Format {
	case "", "pdf":
		data, err := h.renderer.RenderPDF(req.Profile, req.DisplayName)
		if err != nil {
			h.logger.Error(c.Request.Context(), "PDF rendering failed: %s", logger.FormatError(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF creation failed"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename))
		c.Data(http.StatusOK, "application/pdf", data)

	case "docx":
		data, err := h.renderer.RenderDOCX(req.Profile, req.DisplayName)
		if err != nil {
			h.logger.Error(c.Request.Context(), "DOCX rendering failed: %s", logger.FormatError(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Document creation failed"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", docxFilename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown format %q (want pdf or docx)", req.Format)})
	}
}
