// Package github reads manifest content through the GitHub contents API.
package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
)

const sourceName = "github"

// Source implements domain.ContentSource over the GitHub API. An auth token
// is optional; without one, rate limits are the anonymous ones.
type Source struct {
	owner  string
	repo   string
	client *gh.Client
}

// New creates a GitHub API source for the repository in opts.Repo.
func New(opts source.Options) (domain.ContentSource, error) {
	owner, name, err := source.SplitRepo(opts.Repo)
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(nil)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}

	return &Source{owner: owner, repo: name, client: client}, nil
}

func (s *Source) Name() string { return sourceName }

// FetchLines reads one descriptor at a revision via the contents API.
func (s *Source) FetchLines(
	ctx context.Context,
	revision string,
	desc domain.Descriptor,
) ([]string, error) {
	fileContent, _, resp, err := s.client.Repositories.GetContents(
		ctx, s.owner, s.repo, desc.Path(),
		&gh.RepositoryContentGetOptions{Ref: revision},
	)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s at %s: %w", desc.Path(), revision, domain.ErrDescriptorNotFound)
		}
		return nil, fmt.Errorf("failed to fetch %s at %s: %w", desc.Path(), revision, err)
	}
	if fileContent == nil {
		// The path resolved to a directory listing.
		return nil, fmt.Errorf("%s at %s is not a file: %w", desc.Path(), revision, domain.ErrDescriptorNotFound)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s at %s: %w", desc.Path(), revision, err)
	}

	return source.SplitLines(content), nil
}

func (s *Source) Location(revision string, desc domain.Descriptor) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/%s", s.owner, s.repo, revision, desc.Path())
}
