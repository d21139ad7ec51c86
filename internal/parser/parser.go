// Package parser classifies manifest lines into named entries and special
// lines. Two rules exist, selected by the descriptor kind: pip requirement
// lines and container build-file ARG declarations.
package parser

import (
	"strings"

	"github.com/rios0rios0/reqdiff/domain"
)

// Entry is one parsed manifest line relevant to comparison. Blank lines,
// comments and (on the build path) non-ARG content never become entries.
type Entry struct {
	Name    string // extractable identifier; empty for special lines
	Text    string // full text used for comparison and display
	Special bool   // true for flag/directive lines without an identifier
}

// requirementSeparators is the fixed priority list used to extract a package
// name from a requirement line. The FIRST separator in this list that occurs
// anywhere in the line wins, even when a lower-priority separator appears
// earlier in the string. Manifests in the wild rely on this exact behavior;
// do not reorder or switch to a leftmost-position scan.
var requirementSeparators = []string{"==", ">=", "<=", ">", "<", "!=", "~=", ";"}

const argPrefix = "ARG "

// ParseLines parses raw manifest lines according to the descriptor kind.
// It never fails: unrecognized content degrades to a special entry or is
// dropped, per the rules of each kind.
func ParseLines(kind domain.DescriptorKind, lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		var (
			entry Entry
			ok    bool
		)
		if kind == domain.BuildFile {
			entry, ok = parseBuildArgLine(line)
		} else {
			entry, ok = parseRequirementLine(line)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseRequirementLine classifies one requirement line. Empty lines and
// comments are dropped; flag-style lines (--extra-index-url, -r, ...) become
// special entries; everything else is a named entry whose identifier is the
// text before the first occurrence of the highest-priority separator.
func parseRequirementLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Entry{}, false
	}

	if strings.HasPrefix(trimmed, "-") {
		return Entry{Text: trimmed, Special: true}, true
	}

	name, _ := SplitRequirement(trimmed)
	return Entry{Name: name, Text: trimmed}, true
}

// parseBuildArgLine extracts an ARG declaration with a default value.
// Non-ARG lines and ARGs without '=' produce no entry at all: the build-file
// comparison only looks at defaulted ARG declarations.
func parseBuildArgLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)

	if !strings.HasPrefix(trimmed, argPrefix) {
		return Entry{}, false
	}

	content := strings.TrimSpace(trimmed[len(argPrefix):])
	idx := strings.Index(content, "=")
	if idx < 0 {
		return Entry{}, false
	}

	key := strings.TrimSpace(content[:idx])
	return Entry{Name: key, Text: trimmed}, true
}

// SplitRequirement splits an already-categorized requirement text into
// identifier and version suffix using the same priority-ordered separator
// scan as parsing. Lines without any separator carry no version.
func SplitRequirement(text string) (name, version string) {
	for _, sep := range requirementSeparators {
		if idx := strings.Index(text, sep); idx >= 0 {
			return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx:])
		}
	}
	return strings.TrimSpace(text), ""
}

// SplitBuildArg re-applies the ARG rule to an already-categorized build
// line: the prefix is stripped, the remainder splits on the first '=', and
// the value loses its enclosing double quotes.
func SplitBuildArg(text string) (name, value string) {
	content := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), argPrefix))
	idx := strings.Index(content, "=")
	if idx < 0 {
		return content, ""
	}
	name = strings.TrimSpace(content[:idx])
	value = strings.Trim(strings.TrimSpace(content[idx+1:]), `"`)
	return name, value
}

// SplitEntry dispatches to the kind-appropriate split rule.
func SplitEntry(kind domain.DescriptorKind, text string) (name, value string) {
	if kind == domain.BuildFile {
		return SplitBuildArg(text)
	}
	return SplitRequirement(text)
}
