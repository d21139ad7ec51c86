// Package application orchestrates a comparison run: selector resolution,
// content fetching, per-descriptor classification and report assembly.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/reqdiff/config"
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/internal/diff"
)

// ErrNothingCompared is returned when no descriptor could be fetched for
// both revisions. It is the only user-visible failure of a run and is
// distinct from a successful comparison that found zero differences.
var ErrNothingCompared = errors.New("no descriptors could be fetched")

// CompareService runs manifest comparisons against a single content source.
// It holds no mutable state; every call owns its data exclusively.
type CompareService struct {
	source   domain.ContentSource
	variants *config.VariantTable
}

// NewCompareService creates a service bound to a content source and a
// variant table.
func NewCompareService(source domain.ContentSource, variants *config.VariantTable) *CompareService {
	return &CompareService{source: source, variants: variants}
}

// Location records where one compared descriptor was read from, per revision.
type Location struct {
	Descriptor domain.Descriptor
	Old        string
	New        string
}

// CompareResult is the outcome of one run: the assembled report, the
// descriptors skipped because one side was unavailable, and the fetch
// locations for display.
type CompareResult struct {
	OldRevision string
	NewRevision string
	Selector    string
	IsVariant   bool
	Report      diff.Report
	Skipped     []string
	Locations   []Location
}

// Compare resolves the selector into descriptors, fetches both revisions of
// each, classifies and aggregates. Unavailable descriptors are skipped with
// a warning; only a run where every descriptor was skipped fails.
func (s *CompareService) Compare(
	ctx context.Context,
	oldRevision, newRevision, selector string,
) (*CompareResult, error) {
	warnOnDowngrade(oldRevision, newRevision)

	descriptors := s.variants.Resolve(selector)

	result := &CompareResult{
		OldRevision: oldRevision,
		NewRevision: newRevision,
		Selector:    selector,
		IsVariant:   s.variants.IsVariant(selector),
	}

	var sections []diff.Section
	for _, desc := range descriptors {
		oldLines, err := s.source.FetchLines(ctx, oldRevision, desc)
		if err != nil {
			logger.Warnf("Could not fetch %s for %s: %v", desc.Name, oldRevision, err)
			result.Skipped = append(result.Skipped, desc.Name)
			continue
		}

		newLines, err := s.source.FetchLines(ctx, newRevision, desc)
		if err != nil {
			logger.Warnf("Could not fetch %s for %s: %v", desc.Name, newRevision, err)
			result.Skipped = append(result.Skipped, desc.Name)
			continue
		}

		logger.Debugf("Comparing %s (%d -> %d lines)", desc.Name, len(oldLines), len(newLines))

		sections = append(sections, diff.Section{
			Descriptor: desc,
			Changes:    diff.CompareDescriptor(desc.Kind, oldLines, newLines),
		})
		result.Locations = append(result.Locations, Location{
			Descriptor: desc,
			Old:        s.source.Location(oldRevision, desc),
			New:        s.source.Location(newRevision, desc),
		})
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w for selector %q", ErrNothingCompared, selector)
	}

	result.Report = diff.BuildReport(sections)
	return result, nil
}

// warnOnDowngrade logs when both revision labels parse as semantic versions
// and the old one is newer. The comparison itself is purely textual; this is
// informational only.
func warnOnDowngrade(oldRevision, newRevision string) {
	oldVer := normalizeVersion(oldRevision)
	newVer := normalizeVersion(newRevision)
	if !semver.IsValid(oldVer) || !semver.IsValid(newVer) {
		return
	}
	if semver.Compare(oldVer, newVer) > 0 {
		logger.Warnf(
			"Old revision %s is newer than %s; the report reads as a downgrade",
			oldRevision, newRevision,
		)
	}
}

// normalizeVersion ensures a version label has the 'v' prefix expected by
// the semver package.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
