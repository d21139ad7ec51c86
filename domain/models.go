package domain

import "strings"

// DescriptorKind identifies how a manifest's lines are parsed and re-split.
type DescriptorKind string

const (
	// RequirementFile is a pip-style requirements manifest.
	RequirementFile DescriptorKind = "requirement-file"
	// BuildFile is a container build file compared by its ARG declarations.
	BuildFile DescriptorKind = "build-file"
)

const (
	// buildFilePrefix distinguishes build-file paths from requirement file
	// names when a selector is treated as a literal descriptor.
	buildFilePrefix = "docker/"

	// requirementDir is where requirement files live in the repository tree.
	requirementDir = "requirements"
)

// Descriptor identifies one comparable manifest artifact within a repository.
type Descriptor struct {
	Kind DescriptorKind
	Name string // relative path or bare file name, as configured
}

// NewDescriptor builds a descriptor from a literal name, inferring the kind
// from the path-prefix convention.
func NewDescriptor(name string) Descriptor {
	kind := RequirementFile
	if IsBuildFilePath(name) {
		kind = BuildFile
	}
	return Descriptor{Kind: kind, Name: name}
}

// IsBuildFilePath reports whether a literal descriptor name denotes a build file.
func IsBuildFilePath(name string) bool {
	return strings.HasPrefix(name, buildFilePrefix)
}

// Path returns the repository-relative path of the descriptor's content.
// Requirement files are addressed by bare name under the requirements
// directory; build files are already repository-relative.
func (d Descriptor) Path() string {
	if d.Kind == BuildFile {
		return d.Name
	}
	return requirementDir + "/" + d.Name
}

// ChangePair couples the old and new full text of one changed entry.
type ChangePair struct {
	Old string
	New string
}

// ChangeSet is the four-way categorization of one descriptor comparison.
// Named entries are diffed by identifier; special lines by list membership.
type ChangeSet struct {
	Changed []ChangePair
	Added   []string
	Removed []string
	Special []string
}

// Empty reports whether the comparison found no differences at all.
func (c ChangeSet) Empty() bool {
	return len(c.Changed) == 0 && len(c.Added) == 0 &&
		len(c.Removed) == 0 && len(c.Special) == 0
}

// ChangeKind labels a row in the aggregate table.
type ChangeKind string

const (
	KindChanged ChangeKind = "Changed"
	KindAdded   ChangeKind = "Added"
	KindRemoved ChangeKind = "Removed"
)

// NoValue is the placeholder for the missing side of an added or removed row.
const NoValue = "-"

// AggregateRow is one normalized entry of the cross-file change table.
type AggregateRow struct {
	Descriptor string
	Name       string
	OldValue   string
	NewValue   string
	Kind       ChangeKind
}
