package render

import (
	"fmt"
	"io"

	"github.com/rios0rios0/reqdiff/application"
)

// PlainRenderer prints one signed line per change, suitable for piping.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(w io.Writer, result *application.CompareResult) {
	fmt.Fprintf(w, "\n=== Comparing %s: %s -> %s ===\n",
		result.Selector, result.OldRevision, result.NewRevision)

	for _, section := range result.Report.Sections {
		fmt.Fprintf(w, "\n=== %s ===\n\n", section.Descriptor.Name)

		changes := section.Changes
		if changes.Empty() {
			fmt.Fprintln(w, "No changes detected")
			continue
		}

		for _, line := range changes.Removed {
			fmt.Fprintf(w, "- %s\n", line)
		}
		for _, line := range changes.Added {
			fmt.Fprintf(w, "+ %s\n", line)
		}
		for _, pair := range changes.Changed {
			fmt.Fprintf(w, "~ %s → %s\n", pair.Old, pair.New)
		}
		for _, line := range changes.Special {
			fmt.Fprintf(w, "%s\n", line)
		}
	}

	renderLocations(w, result.Locations)
}
