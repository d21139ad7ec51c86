package render_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/reqdiff/application"
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/internal/diff"
	"github.com/rios0rios0/reqdiff/internal/render"
)

//nolint:gochecknoinits // color output must be stable regardless of the test terminal
func init() {
	color.NoColor = true
}

func sampleResult() *application.CompareResult {
	sections := []diff.Section{
		{
			Descriptor: domain.Descriptor{Kind: domain.RequirementFile, Name: "common.txt"},
			Changes: domain.ChangeSet{
				Changed: []domain.ChangePair{{Old: "torch==2.0.0", New: "torch==2.1.0"}},
				Added:   []string{"numpy>=1.24"},
				Special: []string{"- -r cpu.txt"},
			},
		},
		{
			Descriptor: domain.Descriptor{Kind: domain.BuildFile, Name: "docker/Dockerfile"},
			Changes:    domain.ChangeSet{},
		},
	}
	return &application.CompareResult{
		OldRevision: "v1",
		NewRevision: "v2",
		Selector:    "cuda",
		IsVariant:   true,
		Report:      diff.BuildReport(sections),
		Locations: []application.Location{
			{
				Descriptor: sections[0].Descriptor,
				Old:        "spy://v1:requirements/common.txt",
				New:        "spy://v2:requirements/common.txt",
			},
		},
	}
}

func TestPrettyRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should print the summary table before the detail sections", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		render.New(true).Render(&buf, sampleResult())
		out := buf.String()

		// then
		assert.Contains(t, out, "Change Summary Table")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Change Summary Table")),
			bytes.Index(buf.Bytes(), []byte("📄 common.txt")))
		assert.Contains(t, out, "torch")
		assert.Contains(t, out, "==2.0.0")
		assert.Contains(t, out, "==2.1.0")
	})

	t.Run("should list all four categories in a detail section", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		render.New(true).Render(&buf, sampleResult())
		out := buf.String()

		// then
		assert.Contains(t, out, "📦 Changed:")
		assert.Contains(t, out, "torch==2.0.0 → torch==2.1.0")
		assert.Contains(t, out, "➕ Added:")
		assert.Contains(t, out, "numpy>=1.24")
		assert.Contains(t, out, "🔧 Infrastructure/Special:")
		assert.Contains(t, out, "- -r cpu.txt")
	})

	t.Run("should mark a descriptor without differences", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		render.New(true).Render(&buf, sampleResult())
		out := buf.String()

		// then
		assert.Contains(t, out, "🐳 docker/Dockerfile")
		assert.Contains(t, out, "No changes detected between versions.")
	})

	t.Run("should print the compared locations", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		render.New(true).Render(&buf, sampleResult())

		// then
		assert.Contains(t, buf.String(), "spy://v1:requirements/common.txt")
		assert.Contains(t, buf.String(), "spy://v2:requirements/common.txt")
	})
}

func TestPlainRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should print signed lines per descriptor", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		render.New(false).Render(&buf, sampleResult())
		out := buf.String()

		// then
		assert.Contains(t, out, "=== common.txt ===")
		assert.Contains(t, out, "+ numpy>=1.24")
		assert.Contains(t, out, "~ torch==2.0.0 → torch==2.1.0")
		assert.Contains(t, out, "No changes detected")
	})
}
