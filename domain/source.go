package domain

import (
	"context"
	"errors"
)

// ErrDescriptorNotFound signals that a descriptor does not exist at the
// requested revision. Sources return it so callers can skip the descriptor
// instead of failing the whole comparison.
var ErrDescriptorNotFound = errors.New("descriptor not found at revision")

// ContentSource abstracts where manifest content is read from (GitHub API,
// raw HTTP, a local clone). Implementations handle their own transport
// concerns; the comparison core never performs I/O itself.
type ContentSource interface {
	// Name returns the source identifier (e.g. "github", "raw", "local").
	Name() string

	// FetchLines returns the content of a descriptor at a revision as an
	// ordered sequence of lines. A missing file is reported as
	// ErrDescriptorNotFound, possibly wrapped.
	FetchLines(ctx context.Context, revision string, desc Descriptor) ([]string, error)

	// Location describes where a descriptor's content was read from, for
	// display at the end of a report.
	Location(revision string, desc Descriptor) string
}
