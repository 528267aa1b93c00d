// Package navigator tracks the browsing position inside a dictionary Table.
//
// The only mutable value is the position index. Day and word number are always
// derived from it, so callers redraw from the Snapshot returned by each
// operation instead of keeping their own copies.
package navigator

import (
	"slices"

	"github.com/faizmokh/kamus/internal/dictionary"
)

// State owns the current position within an immutable Table.
type State struct {
	table    *dictionary.Table
	position int
}

// Snapshot is the derived, read-only view of the current position.
type Snapshot struct {
	Position   int
	Day        int
	WordNumber int
	GroupSize  int
	Total      int
	Entry      dictionary.Entry
}

// New starts navigation at the first entry. The table must be non-empty.
func New(table *dictionary.Table) *State {
	if table.Len() == 0 {
		panic("navigator: empty table")
	}
	return &State{table: table}
}

// Table returns the table being browsed.
func (s *State) Table() *dictionary.Table {
	return s.table
}

// Position returns the current index into the table.
func (s *State) Position() int {
	return s.position
}

// Days lists the distinct days in ascending order.
func (s *State) Days() []int {
	return s.table.Days()
}

// GroupSize reports how many entries belong to day.
func (s *State) GroupSize(day int) int {
	return len(s.table.Group(day))
}

// Coordinates returns the day of the current entry and its 1-based word number
// within that day.
func (s *State) Coordinates() (day, wordNumber int) {
	day = s.table.At(s.position).Day
	idx := slices.Index(s.table.Group(day), s.position)
	if idx < 0 {
		// Unreachable while the table is immutable.
		return day, 1
	}
	return day, idx + 1
}

// View derives the current Snapshot.
func (s *State) View() Snapshot {
	day, word := s.Coordinates()
	return Snapshot{
		Position:   s.position,
		Day:        day,
		WordNumber: word,
		GroupSize:  s.GroupSize(day),
		Total:      s.table.Len(),
		Entry:      s.table.At(s.position),
	}
}

// Previous moves one entry back, wrapping from the first entry to the last.
func (s *State) Previous() Snapshot {
	if s.position > 0 {
		s.position--
	} else {
		s.position = s.table.Len() - 1
	}
	return s.View()
}

// Next moves one entry forward, wrapping from the last entry to the first.
func (s *State) Next() Snapshot {
	if s.position < s.table.Len()-1 {
		s.position++
	} else {
		s.position = 0
	}
	return s.View()
}

// SelectDay jumps to the first word of day. Unknown days leave the position unchanged.
func (s *State) SelectDay(day int) Snapshot {
	if idx, ok := s.table.First(day); ok {
		s.position = idx
	}
	return s.View()
}

// SelectWordNumber jumps to the num-th word (1-based) of day. Out-of-range
// numbers are clamped to the day's bounds; unknown days leave the position unchanged.
func (s *State) SelectWordNumber(day, num int) Snapshot {
	group := s.table.Group(day)
	if len(group) == 0 {
		return s.View()
	}
	safe := max(1, min(num, len(group)))
	s.position = group[safe-1]
	return s.View()
}
