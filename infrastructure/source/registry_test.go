package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
	testdoubles "github.com/rios0rios0/reqdiff/test"
)

func TestSourceRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a source by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := source.NewRegistry()
		reg.Register("spy", func(_ source.Options) (domain.ContentSource, error) {
			return &testdoubles.SpySource{SourceName: "spy"}, nil
		})

		// when
		s, err := reg.Get("spy", source.Options{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "spy", s.Name())
	})

	t.Run("should fail for an unknown source", func(t *testing.T) {
		t.Parallel()

		// given
		reg := source.NewRegistry()

		// when
		_, err := reg.Get("nonexistent", source.Options{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown source type")
	})

	t.Run("should list all registered source names", func(t *testing.T) {
		t.Parallel()

		// given
		reg := source.NewRegistry()
		factory := func(_ source.Options) (domain.ContentSource, error) {
			return &testdoubles.DummySource{}, nil
		}
		reg.Register("raw", factory)
		reg.Register("local", factory)

		// when
		names := reg.Names()

		// then
		assert.ElementsMatch(t, []string{"raw", "local"}, names)
	})
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	t.Run("should split content into lines without a phantom trailing line", func(t *testing.T) {
		t.Parallel()

		// when
		lines := source.SplitLines("a\nb\n")

		// then
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("should normalize CRLF line endings", func(t *testing.T) {
		t.Parallel()

		// when
		lines := source.SplitLines("a\r\nb\r\n")

		// then
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("should preserve interior blank lines", func(t *testing.T) {
		t.Parallel()

		// when
		lines := source.SplitLines("a\n\nb")

		// then
		assert.Equal(t, []string{"a", "", "b"}, lines)
	})
}

func TestSplitRepo(t *testing.T) {
	t.Parallel()

	t.Run("should split an owner/name reference", func(t *testing.T) {
		t.Parallel()

		// when
		owner, name, err := source.SplitRepo("vllm-project/vllm")

		// then
		require.NoError(t, err)
		assert.Equal(t, "vllm-project", owner)
		assert.Equal(t, "vllm", name)
	})

	t.Run("should fail on a reference without a slash", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := source.SplitRepo("vllm")

		// then
		require.Error(t, err)
	})

	t.Run("should fail on empty components", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := source.SplitRepo("/vllm")

		// then
		require.Error(t, err)
	})
}
