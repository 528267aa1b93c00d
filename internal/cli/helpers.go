package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kamus/internal/navigator"
	"github.com/faizmokh/kamus/internal/render"
)

var errUnknownDay = errors.New("unknown day")

// locate moves state to the given coordinates. Without hasDay the day of the
// current entry is used; a zero word means the first word of that day. Word
// numbers are clamped to the day's group.
func locate(state *navigator.State, day int, hasDay bool, word int) (navigator.Snapshot, error) {
	if !hasDay {
		day, _ = state.Coordinates()
	}
	if state.GroupSize(day) == 0 {
		return navigator.Snapshot{}, fmt.Errorf("%w %d (available: %s)", errUnknownDay, day, formatDays(state.Days()))
	}
	if word == 0 {
		return state.SelectDay(day), nil
	}
	return state.SelectWordNumber(day, word), nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (expected a whole number)", name, value)
	}
	return n, nil
}

func parsePositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q (expected a positive whole number)", name, value)
	}
	return n, nil
}

func formatDays(days []int) string {
	parts := make([]string, len(days))
	for i, day := range days {
		parts[i] = strconv.Itoa(day)
	}
	return strings.Join(parts, ", ")
}

func formatHeader(view navigator.Snapshot) string {
	return fmt.Sprintf("Day %d · Word %d of %d (entry %d of %d)",
		view.Day, view.WordNumber, view.GroupSize, view.Position+1, view.Total)
}

func printEntry(cmd *cobra.Command, renderer render.Renderer, view navigator.Snapshot) error {
	body, err := renderer.Render(view.Entry.Content)
	if err != nil {
		return err
	}
	if _, ok := renderer.(render.HTML); ok {
		body = render.Card(body)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatHeader(view))
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.TrimRight(body, "\n"))
	return nil
}
