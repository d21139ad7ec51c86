package diff

import (
	"github.com/rios0rios0/reqdiff/domain"
	"github.com/rios0rios0/reqdiff/internal/parser"
)

// Aggregate flattens one descriptor's change set into normalized table rows.
// Identifier and value are re-derived from the categorized full texts with
// the descriptor kind's split rule. Rows come out changed-first, then added,
// then removed; special lines never reach the table, they are detail-only.
func Aggregate(desc domain.Descriptor, changes domain.ChangeSet) []domain.AggregateRow {
	rows := make([]domain.AggregateRow, 0,
		len(changes.Changed)+len(changes.Added)+len(changes.Removed))

	for _, pair := range changes.Changed {
		name, oldValue := parser.SplitEntry(desc.Kind, pair.Old)
		_, newValue := parser.SplitEntry(desc.Kind, pair.New)
		rows = append(rows, domain.AggregateRow{
			Descriptor: desc.Name,
			Name:       name,
			OldValue:   oldValue,
			NewValue:   newValue,
			Kind:       domain.KindChanged,
		})
	}

	for _, text := range changes.Added {
		name, value := parser.SplitEntry(desc.Kind, text)
		rows = append(rows, domain.AggregateRow{
			Descriptor: desc.Name,
			Name:       name,
			OldValue:   domain.NoValue,
			NewValue:   value,
			Kind:       domain.KindAdded,
		})
	}

	for _, text := range changes.Removed {
		name, value := parser.SplitEntry(desc.Kind, text)
		rows = append(rows, domain.AggregateRow{
			Descriptor: desc.Name,
			Name:       name,
			OldValue:   value,
			NewValue:   domain.NoValue,
			Kind:       domain.KindRemoved,
		})
	}

	return rows
}
