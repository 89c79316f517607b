package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"statbook/internal/textutil"
)

// Format selects how a command prints its report.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --format value. Empty selects text.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, table, or json)", value)
	}
}

// AddFormatFlag registers the --format flag on cmd.
func AddFormatFlag(cmd *cobra.Command, target *string, fallback Format) {
	cmd.Flags().StringVarP(target, "format", "f", string(fallback), "Output format: text, table, or json")
}

// WriteJSON encodes v as indented JSON to the command's stdout.
func WriteJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var numberPrinter = message.NewPrinter(language.English)

// FormatCount renders n with English digit grouping, e.g. 620100 as "620,100".
func FormatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// FormatPercent renders an already rounded percentage such as "50.0%".
func FormatPercent(v float64) string {
	return textutil.FormatDecimal(v) + "%"
}
