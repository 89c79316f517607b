package paragraph

import (
	"fmt"
	"strings"

	"statbook/internal/textutil"
)

// Report labels, in print order.
const (
	LabelWordCount      = "Approximate Word Count"
	LabelLetterAverage  = "Average Letter Count"
	LabelSentenceCount  = "Approximate Sentence Count"
	LabelSentenceLength = "Average Sentence Length"
)

const reportTitle = "Paragraph Analysis"

// Rows returns the labelled report values in print order.
func (a Analysis) Rows() [][2]string {
	return [][2]string{
		{LabelWordCount, fmt.Sprint(a.WordCount)},
		{LabelLetterAverage, textutil.FormatDecimal(a.AverageLetters)},
		{LabelSentenceCount, fmt.Sprint(a.SentenceCount)},
		{LabelSentenceLength, textutil.FormatDecimal(a.AverageLength)},
	}
}

// Report renders the plain-text summary.
func (a Analysis) Report() string {
	var b strings.Builder
	b.WriteString(reportTitle)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(reportTitle)))
	b.WriteByte('\n')
	for _, row := range a.Rows() {
		fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
	}
	return b.String()
}
