package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"statbook/internal/cli"
	"statbook/internal/logging"
	"statbook/internal/paragraph"
)

func newRootCommand() *cobra.Command {
	var formatFlag string

	rootCmd, ctx := cli.NewRootCommand("paragraph <file>", "Approximate word and sentence statistics for a paragraph")
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := cli.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		cfg, err := ctx.Config()
		if err != nil {
			return err
		}
		logger := logging.NewComponentLogger(ctx.Logger(), "paragraph")

		text, err := paragraph.ReadFirstLine(args[0])
		if err != nil {
			return err
		}
		opts := paragraph.Options{
			SentenceDelimiter:      cfg.Paragraph.SentenceDelimiter,
			KeepDuplicateSentences: cfg.Paragraph.KeepDuplicateSentences,
		}
		analysis, err := opts.Analyze(text)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", args[0], err)
		}
		logger.Debug("paragraph analyzed",
			logging.String(logging.FieldPath, args[0]),
			logging.Int("words", analysis.WordCount),
			logging.Int("sentences", analysis.SentenceCount),
			logging.Int("unique_sentences", analysis.UniqueSegments),
		)

		return printAnalysis(cmd, format, analysis)
	}
	cli.AddFormatFlag(rootCmd, &formatFlag, cli.FormatText)

	return rootCmd
}

func printAnalysis(cmd *cobra.Command, format cli.Format, analysis paragraph.Analysis) error {
	out := cmd.OutOrStdout()
	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd, analysis)
	case cli.FormatTable:
		rows := make([][]string, 0, 4)
		for _, row := range analysis.Rows() {
			rows = append(rows, []string{row[0], row[1]})
		}
		fmt.Fprintln(out, cli.RenderTable([]string{"Metric", "Value"}, rows, []cli.ColumnAlignment{cli.AlignLeft, cli.AlignRight}))
		return nil
	default:
		_, err := fmt.Fprint(out, analysis.Report())
		return err
	}
}
