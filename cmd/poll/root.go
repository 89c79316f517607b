package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"statbook/internal/cli"
	"statbook/internal/config"
	"statbook/internal/election"
	"statbook/internal/history"
	"statbook/internal/logging"
)

// noVotesMessage is printed, with a zero exit, when no ballots were found.
const noVotesMessage = "Please enter a valid directory where we can find CSV files"

type tallyOptions struct {
	output string
	format string
	record bool
	watch  bool
}

func newRootCommand() *cobra.Command {
	var opts tallyOptions

	rootCmd, ctx := cli.NewRootCommand("poll <directory>", "Tally ballot CSV files and report the winner")
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := cli.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		cfg, err := ctx.Config()
		if err != nil {
			return err
		}
		if opts.watch {
			return watchTally(cmd, cfg, ctx.Logger(), args[0], format, opts)
		}
		return runTally(cmd, cfg, ctx.Logger(), args[0], format, opts)
	}
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Results file path (default from poll.results_file)")
	rootCmd.Flags().BoolVar(&opts.record, "record", false, "Record the run in history")
	rootCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-tally whenever ballot files in the directory change")
	cli.AddFormatFlag(rootCmd, &opts.format, cli.FormatText)

	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}

func runTally(cmd *cobra.Command, cfg *config.Config, base *slog.Logger, dir string, format cli.Format, opts tallyOptions) error {
	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	logger := logging.WithContext(runCtx, logging.NewComponentLogger(base, "poll"))

	readOpts := readOptions(cfg, base)
	ballots, err := election.CollectVotes(runCtx, dir, readOpts)
	if errors.Is(err, election.ErrNoVotes) {
		logger.Warn("no votes found", logging.String(logging.FieldPath, dir), logging.Int("files", len(ballots.Files)))
		fmt.Fprintln(cmd.OutOrStdout(), noVotesMessage)
		return nil
	}
	if err != nil {
		return err
	}

	result, err := election.Tally(ballots.Names)
	if err != nil {
		return err
	}
	if err := printResult(cmd, format, result); err != nil {
		return err
	}

	resultsFile := strings.TrimSpace(opts.output)
	if resultsFile == "" {
		resultsFile = cfg.Poll.ResultsFile
	}
	if err := election.WriteReport(resultsFile, result); err != nil {
		return err
	}
	logger.Info("election results written",
		logging.String(logging.FieldPath, resultsFile),
		logging.Int("total_votes", result.TotalVotes),
		logging.String("winner", result.Winner),
	)

	if opts.record || cfg.History.Enabled {
		if err := recordRun(runCtx, cfg, runID, dir, resultsFile, len(ballots.Files), result); err != nil {
			return err
		}
		logger.Debug("run recorded in history")
	}
	return nil
}

// watchTally tallies once, then again after every batch of ballot file
// changes until the command context is cancelled. Errors from individual
// tallies are logged and do not stop the watch.
func watchTally(cmd *cobra.Command, cfg *config.Config, base *slog.Logger, dir string, format cli.Format, opts tallyOptions) error {
	logger := logging.NewComponentLogger(base, "poll")
	readOpts := readOptions(cfg, base)
	changes, err := election.Watch(cmd.Context(), dir, readOpts)
	if err != nil {
		return err
	}

	tally := func() {
		err := runTally(cmd, cfg, base, dir, format, opts)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("tally failed", logging.String(logging.FieldPath, dir), logging.Error(err))
		}
	}
	tally()
	for range changes {
		tally()
	}
	return nil
}

func recordRun(ctx context.Context, cfg *config.Config, runID, dir, resultsFile string, fileCount int, result election.Result) error {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if abs, err := filepath.Abs(resultsFile); err == nil {
		resultsFile = abs
	}

	store, err := history.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.NewRun(dir, resultsFile, fileCount, result)
	run.ID = runID
	if _, err := store.Record(ctx, run); err != nil {
		return err
	}
	return nil
}

func readOptions(cfg *config.Config, base *slog.Logger) election.ReadOptions {
	return election.ReadOptions{
		CandidateColumn: cfg.Poll.CandidateColumn,
		Pattern:         cfg.Poll.FilePattern,
		Logger:          base,
	}
}

func printResult(cmd *cobra.Command, format cli.Format, result election.Result) error {
	out := cmd.OutOrStdout()
	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd, result)
	case cli.FormatTable:
		rows := make([][]string, 0, len(result.Candidates))
		for _, c := range result.Candidates {
			rows = append(rows, []string{
				c.Name,
				cli.FormatCount(c.Votes),
				cli.FormatPercent(c.RoundedPercent()),
			})
		}
		fmt.Fprintln(out, cli.RenderTable(
			[]string{"Candidate", "Votes", "Percent"},
			rows,
			[]cli.ColumnAlignment{cli.AlignLeft, cli.AlignRight, cli.AlignRight},
		))
		fmt.Fprintf(out, "Total Votes: %s\nWinner: %s\n", cli.FormatCount(result.TotalVotes), result.Winner)
		return nil
	default:
		_, err := fmt.Fprint(out, result.Report())
		return err
	}
}
