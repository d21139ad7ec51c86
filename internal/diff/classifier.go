// Package diff computes the categorized change sets between two revisions
// of a manifest and flattens them into the cross-file summary table.
package diff

import (
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/internal/parser"
)

// Classify compares two parsed line collections and produces the four-way
// categorization. Named entries are diffed through an identifier map with
// last-write-wins override semantics; special lines are diffed by full-line
// list membership with duplicates preserved. The two algorithms are
// intentionally different and must stay that way: unifying them would change
// the output on inputs with duplicated special lines.
//
// All four output lists are ordered solely by input order, so repeated runs
// over the same content produce byte-identical results.
func Classify(oldEntries, newEntries []parser.Entry) domain.ChangeSet {
	oldNames, oldByName := indexNamed(oldEntries)
	newNames, newByName := indexNamed(newEntries)

	var changes domain.ChangeSet

	for _, name := range oldNames {
		oldText := oldByName[name]
		newText, ok := newByName[name]
		switch {
		case !ok:
			changes.Removed = append(changes.Removed, oldText)
		case oldText != newText:
			changes.Changed = append(changes.Changed, domain.ChangePair{Old: oldText, New: newText})
		}
	}

	for _, name := range newNames {
		if _, ok := oldByName[name]; !ok {
			changes.Added = append(changes.Added, newByName[name])
		}
	}

	oldSpecial := specialLines(oldEntries)
	newSpecial := specialLines(newEntries)

	for _, line := range oldSpecial {
		if !containsLine(newSpecial, line) {
			changes.Special = append(changes.Special, "- "+line)
		}
	}
	for _, line := range newSpecial {
		if !containsLine(oldSpecial, line) {
			changes.Special = append(changes.Special, "+ "+line)
		}
	}

	return changes
}

// CompareDescriptor parses both revisions' raw lines with the descriptor
// kind's rule and classifies the result. It never fails: malformed lines
// degrade inside the parser, never into an error.
func CompareDescriptor(kind domain.DescriptorKind, oldLines, newLines []string) domain.ChangeSet {
	return Classify(parser.ParseLines(kind, oldLines), parser.ParseLines(kind, newLines))
}

// indexNamed builds an identifier lookup over the named entries. Iteration
// order is the order of each identifier's first occurrence, while the mapped
// text is the last occurrence's: a manifest declaring the same identifier
// twice only exposes the later line to comparison.
func indexNamed(entries []Entry) ([]string, map[string]string) {
	names := make([]string, 0, len(entries))
	byName := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Special || e.Name == "" {
			continue
		}
		if _, seen := byName[e.Name]; !seen {
			names = append(names, e.Name)
		}
		byName[e.Name] = e.Text
	}
	return names, byName
}

// Entry aliases the parser's entry type so callers holding change sets do
// not need to import both packages.
type Entry = parser.Entry

func specialLines(entries []Entry) []string {
	var lines []string
	for _, e := range entries {
		if e.Special {
			lines = append(lines, e.Text)
		}
	}
	return lines
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}
