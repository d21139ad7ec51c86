//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqdiff/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DescriptorBuilder helps create test descriptors with a fluent interface.
type DescriptorBuilder struct {
	*testkit.BaseBuilder
	kind domain.DescriptorKind
	name string
}

// NewDescriptorBuilder creates a new descriptor builder with sensible defaults.
func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		kind:        domain.RequirementFile,
		name:        "common.txt",
	}
}

// WithKind sets the descriptor kind.
func (b *DescriptorBuilder) WithKind(kind domain.DescriptorKind) *DescriptorBuilder {
	b.kind = kind
	return b
}

// WithName sets the descriptor name.
func (b *DescriptorBuilder) WithName(name string) *DescriptorBuilder {
	b.name = name
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *DescriptorBuilder) Build() interface{} {
	return b.BuildDescriptor()
}

// BuildDescriptor creates the descriptor with a concrete return type.
func (b *DescriptorBuilder) BuildDescriptor() domain.Descriptor {
	return domain.Descriptor{
		Kind: b.kind,
		Name: b.name,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DescriptorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.kind = domain.RequirementFile
	b.name = "common.txt"
	return b
}

// Clone creates a deep copy of the DescriptorBuilder.
func (b *DescriptorBuilder) Clone() testkit.Builder {
	return &DescriptorBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		kind:        b.kind,
		name:        b.name,
	}
}
