// Package local reads manifest content from a local git clone, letting
// comparisons run without any network access.
package local

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
)

const sourceName = "local"

// Source implements domain.ContentSource against a repository on disk.
// Revisions are resolved with git's own rules, so tags, branches and commit
// hashes all work.
type Source struct {
	path string
	repo *gogit.Repository
}

// New opens the clone at opts.Path.
func New(opts source.Options) (domain.ContentSource, error) {
	repo, err := gogit.PlainOpen(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", opts.Path, err)
	}
	return &Source{path: opts.Path, repo: repo}, nil
}

func (s *Source) Name() string { return sourceName }

// FetchLines reads one descriptor from the tree of the resolved revision.
func (s *Source) FetchLines(
	_ context.Context,
	revision string,
	desc domain.Descriptor,
) ([]string, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	file, err := commit.File(desc.Path())
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s at %s: %w", desc.Path(), revision, domain.ErrDescriptorNotFound)
		}
		return nil, fmt.Errorf("failed to read %s at %s: %w", desc.Path(), revision, err)
	}

	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", desc.Path(), revision, err)
	}

	return source.SplitLines(content), nil
}

func (s *Source) Location(revision string, desc domain.Descriptor) string {
	return fmt.Sprintf("%s@%s:%s", s.path, revision, desc.Path())
}
