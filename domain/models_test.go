package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/reqdiff/domain"
	testdoubles "github.com/rios0rios0/reqdiff/test"
)

func TestInterfaceCompliance(t *testing.T) {
	t.Parallel()

	t.Run("should satisfy ContentSource interface with a dummy", func(t *testing.T) {
		t.Parallel()

		// given
		var source domain.ContentSource = &testdoubles.DummySource{}

		// then
		assert.NotNil(t, source)
		assert.Implements(t, (*domain.ContentSource)(nil), source)
	})

	t.Run("should satisfy ContentSource interface with a spy", func(t *testing.T) {
		t.Parallel()

		// given
		var source domain.ContentSource = &testdoubles.SpySource{SourceName: "github"}

		// then
		assert.Equal(t, "github", source.Name())
	})
}

func TestDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("should infer the requirement kind for bare file names", func(t *testing.T) {
		t.Parallel()

		// when
		desc := domain.NewDescriptor("rocm-build.txt")

		// then
		assert.Equal(t, domain.RequirementFile, desc.Kind)
		assert.Equal(t, "requirements/rocm-build.txt", desc.Path())
	})

	t.Run("should infer the build kind from the docker path prefix", func(t *testing.T) {
		t.Parallel()

		// when
		desc := domain.NewDescriptor("docker/Dockerfile.rocm")

		// then
		assert.Equal(t, domain.BuildFile, desc.Kind)
		assert.Equal(t, "docker/Dockerfile.rocm", desc.Path())
	})
}

func TestChangeSet_Empty(t *testing.T) {
	t.Parallel()

	t.Run("should be empty with no categorized changes", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.True(t, domain.ChangeSet{}.Empty())
	})

	t.Run("should not be empty with only special lines", func(t *testing.T) {
		t.Parallel()

		// given
		changes := domain.ChangeSet{Special: []string{"+ -r extra.txt"}}

		// then
		assert.False(t, changes.Empty())
	})
}
