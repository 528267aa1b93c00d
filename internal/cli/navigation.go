package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/faizmokh/kamus/internal/navigator"
)

type positionFlags struct {
	day    int
	hasDay bool
	word   int
	format string
}

func (f *positionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.day, "day", 0, "Day to start from (default: first day)")
	cmd.Flags().IntVar(&f.word, "word", 0, "Word number within the day, clamped to the day's size (default: 1)")
	cmd.Flags().StringVar(&f.format, "format", "", "Renderer: terminal|html|plain|markdown (default: config ui.renderer)")
}

// step resolves the starting position, applies move and prints the result.
func step(ctx context.Context, cmd *cobra.Command, env *environment, flags *positionFlags, move func(*navigator.State) navigator.Snapshot) error {
	tbl, err := env.openTable(ctx, cmd)
	if err != nil {
		return err
	}
	renderer, err := env.renderer(flags.format)
	if err != nil {
		return err
	}

	state := navigator.New(tbl)
	hasDay := flags.hasDay || cmd.Flags().Changed("day")
	view, err := locate(state, flags.day, hasDay, flags.word)
	if err != nil {
		return err
	}
	if move != nil {
		view = move(state)
	}
	return printEntry(cmd, renderer, view)
}

func newShowCommand(ctx context.Context, env *environment) *cobra.Command {
	var flags positionFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one dictionary entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return step(ctx, cmd, env, &flags, nil)
		},
	}
	flags.bind(cmd)

	return cmd
}

func newPrevCommand(ctx context.Context, env *environment) *cobra.Command {
	var flags positionFlags

	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Show the entry before the given position, wrapping to the last.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return step(ctx, cmd, env, &flags, (*navigator.State).Previous)
		},
	}
	flags.bind(cmd)

	return cmd
}

func newNextCommand(ctx context.Context, env *environment) *cobra.Command {
	var flags positionFlags

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the entry after the given position, wrapping to the first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return step(ctx, cmd, env, &flags, (*navigator.State).Next)
		},
	}
	flags.bind(cmd)

	return cmd
}

func newJumpCommand(ctx context.Context, env *environment) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "jump <day> [word]",
		Short: "Show the entry at a day and optional word number.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseInt("day", args[0])
			if err != nil {
				return err
			}
			word := 0
			if len(args) == 2 {
				if word, err = parsePositiveInt("word number", args[1]); err != nil {
					return err
				}
			}
			flags := positionFlags{day: day, hasDay: true, word: word, format: format}
			return step(ctx, cmd, env, &flags, nil)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Renderer: terminal|html|plain|markdown (default: config ui.renderer)")

	return cmd
}

func newDaysCommand(ctx context.Context, env *environment) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the days in the dictionary and how many words each holds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := env.openTable(ctx, cmd)
			if err != nil {
				return err
			}
			state := navigator.New(tbl)

			if outputJSON {
				return printDaysJSON(cmd, state)
			}
			return printDaysTable(cmd, state)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit days as JSON objects")

	return cmd
}

func printDaysTable(cmd *cobra.Command, state *navigator.State) error {
	out := table.New("Day", "Words").WithWriter(cmd.OutOrStdout())
	for _, day := range state.Days() {
		out.AddRow(day, state.GroupSize(day))
	}
	out.Print()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries across %d days\n", state.Table().Len(), len(state.Days()))
	return nil
}

func printDaysJSON(cmd *cobra.Command, state *navigator.State) error {
	type dto struct {
		Day   int `json:"day"`
		Words int `json:"words"`
	}

	days := state.Days()
	list := make([]dto, 0, len(days))
	for _, day := range days {
		list = append(list, dto{Day: day, Words: state.GroupSize(day)})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
