package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"statbook/internal/cli"
	"statbook/internal/history"
)

func newHistoryCommand(ctx *cli.Context) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded tally runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := cli.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := ctx.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.History.ListLimit
			}

			store, err := history.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printRuns(cmd, outFormat, runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum runs to list, 0 for all (default history.list_limit)")
	cli.AddFormatFlag(cmd, &format, cli.FormatTable)

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *cli.Context) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full results of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := cli.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := ctx.Config()
			if err != nil {
				return err
			}

			store, err := history.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outFormat == cli.FormatJSON {
				return cli.WriteJSON(cmd, run)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:       %s\n", run.ID)
			fmt.Fprintf(out, "Recorded:  %s\n", run.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Directory: %s\n", run.Directory)
			if run.ResultsFile != "" {
				fmt.Fprintf(out, "Output:    %s\n", run.ResultsFile)
			}
			fmt.Fprintln(out)
			return printResult(cmd, outFormat, run.Result())
		},
	}
	cli.AddFormatFlag(cmd, &format, cli.FormatText)
	return cmd
}

func printRuns(cmd *cobra.Command, format cli.Format, runs []history.Run) error {
	if format == cli.FormatJSON {
		if runs == nil {
			runs = []history.Run{}
		}
		return cli.WriteJSON(cmd, runs)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs")
		return nil
	}
	if format == cli.FormatText {
		for _, run := range runs {
			fmt.Fprintf(out, "%s  %s  %s  %s votes  winner %s\n",
				shortID(run.ID),
				run.CreatedAt.Local().Format(time.DateTime),
				run.Directory,
				cli.FormatCount(run.TotalVotes),
				run.Winner,
			)
		}
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			humanize.Time(run.CreatedAt),
			run.Directory,
			cli.FormatCount(run.FileCount),
			cli.FormatCount(run.TotalVotes),
			run.Winner,
		})
	}
	fmt.Fprintln(out, cli.RenderTable(
		[]string{"ID", "Recorded", "Directory", "Files", "Votes", "Winner"},
		rows,
		[]cli.ColumnAlignment{cli.AlignLeft, cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignRight, cli.AlignLeft},
	))
	return nil
}

// shortID trims a run UUID to its first group; history show accepts prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
