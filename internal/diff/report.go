package diff

import "github.com/rios0rios0/reqdiff/domain"

// Section holds one descriptor's comparison for the per-file detail output.
type Section struct {
	Descriptor domain.Descriptor
	Changes    domain.ChangeSet
}

// Report is the assembled comparison outcome: the per-descriptor detail
// sections in variant order plus the flattened aggregate table. It carries
// data and order only; styling is the renderer's concern.
type Report struct {
	Sections []Section
	Rows     []domain.AggregateRow
}

// BuildReport assembles a report from per-descriptor sections, deriving the
// aggregate table in section order.
func BuildReport(sections []Section) Report {
	report := Report{Sections: sections}
	for _, section := range sections {
		report.Rows = append(report.Rows, Aggregate(section.Descriptor, section.Changes)...)
	}
	return report
}

// Empty reports whether no section found any difference.
func (r Report) Empty() bool {
	for _, section := range r.Sections {
		if !section.Changes.Empty() {
			return false
		}
	}
	return true
}
