// Package textutil provides the small text helpers shared by the analyzers:
// ASCII punctuation stripping, literal single-space splitting, and decimal
// formatting for report values.
//
// Splitting deliberately differs from strings.Fields: runs of spaces yield
// empty tokens, which the paragraph statistics count as words.
package textutil
