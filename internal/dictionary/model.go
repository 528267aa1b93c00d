package dictionary

// DefaultDay is assigned to records that carry no day_index.
const DefaultDay = 1

// Entry is a single dictionary word and the day it is studied on.
type Entry struct {
	Content string
	Day     int
}

// Table is the ordered, read-only collection of entries for a session.
// Entries are sorted by Day ascending and keep their source order within a day.
type Table struct {
	entries []Entry
}

// NewTable stable-sorts a copy of entries by day and wraps it in a Table.
func NewTable(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sortByDay(sorted)
	return &Table{entries: sorted}
}

// Len reports the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// At returns the entry at index i. It panics when i is out of range, like a slice.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the ordered entries.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Days lists the distinct day values in ascending order.
func (t *Table) Days() []int {
	var days []int
	for i, entry := range t.entries {
		// Entries are sorted, so a new day always differs from its predecessor.
		if i == 0 || entry.Day != t.entries[i-1].Day {
			days = append(days, entry.Day)
		}
	}
	return days
}

// Group returns the ascending table indexes of every entry on day.
func (t *Table) Group(day int) []int {
	var indexes []int
	for i, entry := range t.entries {
		if entry.Day == day {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// First returns the index of the first entry on day.
func (t *Table) First(day int) (int, bool) {
	for i, entry := range t.entries {
		if entry.Day == day {
			return i, true
		}
	}
	return 0, false
}
