package dictionary

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
)

// record mirrors one object of the source JSON array. Older exports store the
// entry body under "responses" instead of "content".
type record struct {
	Content   *string      `json:"content"`
	Responses *string      `json:"responses"`
	DayIndex  *json.Number `json:"day_index"`
}

// Decode parses a JSON array of entry objects from r and returns the sorted Table.
func Decode(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: reading JSON file: %w", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		entry, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, i, err)
		}
		entries = append(entries, entry)
	}

	return NewTable(entries), nil
}

func parseRecord(rec record) (Entry, error) {
	var content string
	switch {
	case rec.Content != nil:
		content = *rec.Content
	case rec.Responses != nil:
		content = *rec.Responses
	default:
		return Entry{}, fmt.Errorf("missing content field")
	}

	day := DefaultDay
	if rec.DayIndex != nil {
		parsed, err := parseDay(*rec.DayIndex)
		if err != nil {
			return Entry{}, err
		}
		day = parsed
	}

	return Entry{Content: content, Day: day}, nil
}

// parseDay accepts integral numbers, including the 2.0 style some exporters emit.
func parseDay(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		if v < math.MinInt || v > math.MaxInt {
			return 0, fmt.Errorf("day_index %s is out of range", n.String())
		}
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("day_index %q is not an integer", n.String())
	}
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, fmt.Errorf("day_index %s is out of range", n.String())
	}
	return int(f), nil
}

func sortByDay(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Day, b.Day)
	})
}
