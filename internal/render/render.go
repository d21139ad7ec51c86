// Package render turns a comparison result into terminal output. The data
// and ordering contract lives in the diff package; only styling lives here.
package render

import (
	"io"

	"github.com/rios0rios0/reqdiff/application"
)

// Renderer writes a comparison result to a writer.
type Renderer interface {
	Render(w io.Writer, result *application.CompareResult)
}

// New returns the pretty (colored, categorized) renderer or the plain
// signed-line renderer.
func New(pretty bool) Renderer {
	if pretty {
		return &PrettyRenderer{}
	}
	return &PlainRenderer{}
}
