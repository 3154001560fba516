package renderer

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0 // mm, left/right/top

	titleFontSize   = 20.0
	headingFontSize = 14.0
	bodyFontSize    = 11.0

	titleLineHeight   = 10.0
	headingLineHeight = 8.0
	bodyLineHeight    = 6.0
	gapHeight         = 4.0
)

// RenderPDF lays the profile out on A4 portrait pages. Page breaks are
// automatic; every line starts back at the left margin so wrapped
// paragraphs cannot drift. On any failure the result is nil, never a
// partial document.
func (r *implRenderer) RenderPDF(text, displayName string) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("render pdf: %v", rec)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	// Keep content streams uncompressed so the page text stays greppable.
	pdf.SetCompression(false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, ln := range layoutLines(text, displayName) {
		pdf.SetX(pageMargin)

		switch ln.role {
		case roleGap:
			pdf.Ln(gapHeight)
		case roleTitle:
			pdf.SetFont("Helvetica", "B", titleFontSize)
			pdf.MultiCell(0, titleLineHeight, tr(normalizeLatin(ln.text)), "", "L", false)
		case roleHeading:
			pdf.SetFont("Helvetica", "B", headingFontSize)
			pdf.MultiCell(0, headingLineHeight, tr(normalizeLatin(ln.text)), "", "L", false)
		case roleBody:
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.MultiCell(0, bodyLineHeight, tr(normalizeLatin(ln.text)), "", "L", false)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
