package textutil

import "strings"

// ASCIIPunctuation is the set of characters StripPunctuation removes.
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// punctuationRemover deletes every ASCIIPunctuation character.
var punctuationRemover = newPunctuationRemover()

func newPunctuationRemover() *strings.Replacer {
	pairs := make([]string, 0, len(ASCIIPunctuation)*2)
	for _, r := range ASCIIPunctuation {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}

// StripPunctuation removes ASCII punctuation from text. Whitespace and
// non-ASCII characters are kept as-is.
func StripPunctuation(text string) string {
	return punctuationRemover.Replace(text)
}

// SplitSpaces splits text on every single space. Consecutive spaces and
// leading or trailing spaces produce empty tokens, unlike strings.Fields.
func SplitSpaces(text string) []string {
	return strings.Split(text, " ")
}

// TrimLineEnding removes one trailing "\n" or "\r\n".
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
