package renderer

// Renderer lays out a markdown-lite profile text (one # title line,
// ## or ** section headings, plain body lines) into a downloadable
// document, substituting the caller-supplied display name for the
// title line. A failed render returns no partial document.
type Renderer interface {
	RenderPDF(text, displayName string) ([]byte, error)
	RenderDOCX(text, displayName string) ([]byte, error)
}
