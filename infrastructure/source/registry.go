// Package source manages the content sources a comparison can read from.
package source

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

// Options carries the settings a source factory may need. Each source uses
// the subset relevant to it.
type Options struct {
	Repo  string // "owner/name" for remote sources
	Path  string // local clone path for the local source
	Token string // optional auth token for the GitHub API
}

// Factory is a constructor that creates a ContentSource from options.
type Factory func(opts Options) (domain.ContentSource, error)

// Registry manages all registered content source implementations.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a source factory under the given name (e.g. "raw").
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Get returns a configured source instance for the given name and options.
func (r *Registry) Get(name string, opts Options) (domain.ContentSource, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %q", name)
	}
	return factory(opts)
}

// Names returns the list of registered source names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// SplitLines turns fetched content into the ordered line sequence the core
// consumes. A trailing newline does not produce a phantom empty line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// SplitRepo splits an "owner/name" repository reference.
func SplitRepo(repo string) (owner, name string, err error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository reference %q, expected owner/name", repo)
	}
	return parts[0], parts[1], nil
}
