package renderer

import (
	"fmt"
	"os"

	"github.com/gomutex/godocx"
)

const (
	docxFontName    = "Arial"
	docxTitleSize   = 18
	docxHeadingSize = 14
	docxBodySize    = 11
)

// RenderDOCX writes the same layout as RenderPDF into an editable
// Word document. Full Unicode survives here; the transliteration
// limitation is specific to the PDF core fonts.
func (r *implRenderer) RenderDOCX(text, displayName string) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("render docx: %v", rec)
		}
	}()

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	for _, ln := range layoutLines(text, displayName) {
		p := doc.AddParagraph("")

		switch ln.role {
		case roleGap:
			// empty paragraph is the gap
		case roleTitle:
			p.AddText(ln.text).Font(docxFontName).Size(docxTitleSize).Color("000000").Bold(true)
		case roleHeading:
			p.AddText(ln.text).Font(docxFontName).Size(docxHeadingSize).Color("000000").Bold(true)
		case roleBody:
			p.AddText(ln.text).Font(docxFontName).Size(docxBodySize).Color("000000")
		}
	}

	tmp, err := os.CreateTemp("", "ithuba-*.docx")
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := doc.SaveTo(tmpPath); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return data, nil
}
