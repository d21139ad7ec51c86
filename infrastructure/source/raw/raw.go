// Package raw reads manifest content from raw.githubusercontent.com with
// retrying HTTP requests. It needs no authentication for public repositories.
package raw

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"

	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
)

const (
	sourceName   = "raw"
	baseURL      = "https://raw.githubusercontent.com"
	retryMax     = 3
	fetchTimeout = 10 * time.Second
)

// Source implements domain.ContentSource over plain raw-content URLs.
type Source struct {
	repo   string
	client *retryablehttp.Client
}

// New creates a raw-content source for the repository in opts.Repo.
func New(opts source.Options) (domain.ContentSource, error) {
	if _, _, err := source.SplitRepo(opts.Repo); err != nil {
		return nil, err
	}

	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.HTTPClient.Timeout = fetchTimeout
	client.Logger = nil

	return &Source{repo: opts.Repo, client: client}, nil
}

func (s *Source) Name() string { return sourceName }

// FetchLines downloads one descriptor at a revision.
func (s *Source) FetchLines(
	ctx context.Context,
	revision string,
	desc domain.Descriptor,
) ([]string, error) {
	url := s.Location(revision, desc)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s at %s: %w", desc.Path(), revision, domain.ErrDescriptorNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	return source.SplitLines(string(data)), nil
}

func (s *Source) Location(revision string, desc domain.Descriptor) string {
	return fmt.Sprintf("%s/%s/%s/%s", baseURL, s.repo, revision, desc.Path())
}
