// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/reqdiff/domain"
)

// Key builds the lookup key used by SpySource content maps.
func Key(revision, path string) string {
	return revision + ":" + path
}

// ---------------------------------------------------------------------------
// SpySource
// ---------------------------------------------------------------------------

// SpySource implements domain.ContentSource as a configurable spy.
// Configure Contents (and optionally Missing/Err) for the paths your test
// exercises, then inspect Fetched to verify behavior.
type SpySource struct {
	// --- identity ---
	SourceName string

	// --- FetchLines ---
	// Contents maps Key(revision, path) to the lines returned.
	Contents map[string][]string
	// Missing marks Key(revision, path) entries as explicitly not found.
	Missing map[string]bool
	// Err, when set, is returned by every fetch regardless of Contents.
	Err error

	// spy: every fetch performed, as Key(revision, path).
	Fetched []string
}

func (s *SpySource) Name() string {
	if s.SourceName != "" {
		return s.SourceName
	}
	return "spy"
}

func (s *SpySource) FetchLines(
	_ context.Context,
	revision string,
	desc domain.Descriptor,
) ([]string, error) {
	k := Key(revision, desc.Path())
	s.Fetched = append(s.Fetched, k)

	if s.Err != nil {
		return nil, s.Err
	}
	if s.Missing[k] {
		return nil, fmt.Errorf("%s: %w", k, domain.ErrDescriptorNotFound)
	}

	lines, ok := s.Contents[k]
	if !ok {
		return nil, fmt.Errorf("%s: %w", k, domain.ErrDescriptorNotFound)
	}
	return lines, nil
}

func (s *SpySource) Location(revision string, desc domain.Descriptor) string {
	return "spy://" + Key(revision, desc.Path())
}

// ---------------------------------------------------------------------------
// DummySource
// ---------------------------------------------------------------------------

// DummySource is a no-op domain.ContentSource for interface compliance tests.
type DummySource struct{}

func (d *DummySource) Name() string { return "dummy" }

func (d *DummySource) FetchLines(
	_ context.Context,
	_ string,
	_ domain.Descriptor,
) ([]string, error) {
	return nil, nil
}

func (d *DummySource) Location(_ string, _ domain.Descriptor) string { return "" }
