// Package paragraph computes word and sentence statistics for a single line
// of prose.
//
// Words come from stripping ASCII punctuation and splitting on single spaces;
// sentences come from splitting the raw text on ". ". Both counts are
// approximations by construction and the reports label them that way.
//
// Identical sentences collapse to one entry before the average sentence
// length is computed, while the sentence count still includes every segment.
// Options.KeepDuplicateSentences turns the collapse off.
package paragraph
