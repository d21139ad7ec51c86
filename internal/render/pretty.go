package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/reqdiff/application"
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/internal/diff"
)

// Column widths of the summary table. Values longer than a column are
// truncated with an ellipsis so the table stays aligned.
const (
	fileColWidth    = 20
	packageColWidth = 35
	versionColWidth = 25
)

var (
	bold   = color.New(color.Bold)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	blue   = color.New(color.FgBlue)
)

// PrettyRenderer prints the colored, emoji-labeled report: header, summary
// table, one detail section per descriptor, and the compared locations.
type PrettyRenderer struct{}

func (r *PrettyRenderer) Render(w io.Writer, result *application.CompareResult) {
	r.renderHeader(w, result)
	r.renderTable(w, result.Report.Rows)
	for _, section := range result.Report.Sections {
		r.renderSection(w, section)
	}
	renderLocations(w, result.Locations)
}

func (r *PrettyRenderer) renderHeader(w io.Writer, result *application.CompareResult) {
	if result.IsVariant {
		bold.Fprintf(w, "\n=== Comparing %s variant (runtime + build files): %s -> %s ===\n\n",
			result.Selector, result.OldRevision, result.NewRevision)
		return
	}
	bold.Fprintf(w, "\n=== Comparing %s: %s -> %s ===\n\n",
		result.Selector, result.OldRevision, result.NewRevision)
}

func (r *PrettyRenderer) renderTable(w io.Writer, rows []domain.AggregateRow) {
	if len(rows) == 0 {
		return
	}

	bold.Fprintf(w, "\n📊 Change Summary Table:\n\n")
	fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %s\n",
		fileColWidth, "File",
		packageColWidth, "Package",
		versionColWidth, "Old Version",
		versionColWidth, "New Version",
		"Type")
	fmt.Fprintln(w, strings.Repeat("─", 120))

	for _, row := range rows {
		fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %s\n",
			fileColWidth, truncate(row.Descriptor, fileColWidth-1),
			packageColWidth, truncate(row.Name, packageColWidth-1),
			versionColWidth, truncate(row.OldValue, versionColWidth-1),
			versionColWidth, truncate(row.NewValue, versionColWidth-1),
			colorKind(row.Kind))
	}
	fmt.Fprintln(w)
}

func (r *PrettyRenderer) renderSection(w io.Writer, section diff.Section) {
	emoji := "📄"
	if section.Descriptor.Kind == domain.BuildFile {
		emoji = "🐳"
	}

	rule := strings.Repeat("━", 52)
	bold.Fprintf(w, "\n%s\n", rule)
	bold.Fprintf(w, "%s %s\n", emoji, section.Descriptor.Name)
	bold.Fprintf(w, "%s\n\n", rule)

	changes := section.Changes
	if changes.Empty() {
		fmt.Fprintf(w, "No changes detected between versions.\n\n")
		return
	}

	if len(changes.Changed) > 0 {
		yellow.Fprintf(w, "📦 Changed:\n")
		for _, pair := range changes.Changed {
			fmt.Fprintf(w, "  %s → %s\n", pair.Old, pair.New)
		}
		fmt.Fprintln(w)
	}

	if len(changes.Added) > 0 {
		green.Fprintf(w, "➕ Added:\n")
		for _, line := range changes.Added {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}

	if len(changes.Removed) > 0 {
		red.Fprintf(w, "➖ Removed:\n")
		for _, line := range changes.Removed {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}

	if len(changes.Special) > 0 {
		blue.Fprintf(w, "🔧 Infrastructure/Special:\n")
		for _, line := range changes.Special {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}
}

func renderLocations(w io.Writer, locations []application.Location) {
	if len(locations) == 0 {
		return
	}

	bold.Fprintf(w, "\nLocations compared:\n")
	for _, loc := range locations {
		fmt.Fprintf(w, "  %s:\n", loc.Descriptor.Name)
		fmt.Fprintf(w, "    %s\n", loc.Old)
		fmt.Fprintf(w, "    %s\n", loc.New)
	}
}

func colorKind(kind domain.ChangeKind) string {
	switch kind {
	case domain.KindChanged:
		return yellow.Sprint(string(kind))
	case domain.KindAdded:
		return green.Sprint(string(kind))
	default:
		return red.Sprint(string(kind))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
