package paragraph

import (
	"strings"
	"unicode/utf8"

	"statbook/internal/textutil"
)

const defaultSentenceDelimiter = ". "

// Options tunes sentence splitting.
type Options struct {
	// SentenceDelimiter separates sentences. Empty means ". ".
	SentenceDelimiter string
	// KeepDuplicateSentences averages every segment instead of unique ones.
	KeepDuplicateSentences bool
}

func (o Options) delimiter() string {
	if o.SentenceDelimiter == "" {
		return defaultSentenceDelimiter
	}
	return o.SentenceDelimiter
}

// WordStats summarizes the words in a text.
type WordStats struct {
	// WordCount includes empty tokens left behind by punctuation removal.
	WordCount int `json:"approximate_word_count"`
	// AverageLetters is the mean rune length of non-empty tokens.
	AverageLetters float64 `json:"average_letter_count"`
}

// SentenceStats summarizes the sentences in a text.
type SentenceStats struct {
	SentenceCount  int     `json:"approximate_sentence_count"`
	AverageLength  float64 `json:"average_sentence_length"`
	UniqueSegments int     `json:"unique_sentences"`
}

// Analysis combines word and sentence statistics for one text.
type Analysis struct {
	WordStats
	SentenceStats
}

// WordStatistics strips punctuation from text, splits it on single spaces,
// and measures the resulting tokens.
func WordStatistics(text string) (WordStats, error) {
	tokens := textutil.SplitSpaces(textutil.StripPunctuation(text))

	var letters, measured int
	for _, token := range tokens {
		if token == "" {
			continue
		}
		letters += utf8.RuneCountInString(token)
		measured++
	}
	if measured == 0 {
		return WordStats{}, ErrNoWords
	}
	return WordStats{
		WordCount:      len(tokens),
		AverageLetters: float64(letters) / float64(measured),
	}, nil
}

// SentenceStatistics splits the raw text into sentences with the default
// options.
func SentenceStatistics(text string) SentenceStats {
	return Options{}.SentenceStatistics(text)
}

// SentenceStatistics splits the raw text on the configured delimiter and
// averages the single-space word count of each segment.
func (o Options) SentenceStatistics(text string) SentenceStats {
	segments := strings.Split(text, o.delimiter())

	lengths := make([]int, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))
	for _, segment := range segments {
		if !o.KeepDuplicateSentences {
			if _, dup := seen[segment]; dup {
				continue
			}
			seen[segment] = struct{}{}
		}
		lengths = append(lengths, len(textutil.SplitSpaces(segment)))
	}

	// strings.Split never returns an empty slice, so lengths has at least
	// one entry.
	total := 0
	for _, n := range lengths {
		total += n
	}
	return SentenceStats{
		SentenceCount:  len(segments),
		AverageLength:  float64(total) / float64(len(lengths)),
		UniqueSegments: len(lengths),
	}
}

// Analyze runs word and sentence statistics over text with default options.
func Analyze(text string) (Analysis, error) {
	return Options{}.Analyze(text)
}

// Analyze runs word and sentence statistics over text.
func (o Options) Analyze(text string) (Analysis, error) {
	words, err := WordStatistics(text)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{WordStats: words, SentenceStats: o.SentenceStatistics(text)}, nil
}
