package renderer

type implRenderer struct{}

// New creates a Renderer. It is stateless; one instance can serve all
// requests.
func New() Renderer {
	return &implRenderer{}
}
