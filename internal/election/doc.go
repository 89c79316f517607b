// Package election tallies votes from a directory of CSV ballot exports.
//
// Each CSV has a header row followed by one vote per row; the candidate name
// sits in a fixed column (index 2 by default). CollectVotes gathers every
// matching file directly under a directory into the master candidate list,
// Tally counts it, and Result.Report renders the plain-text summary written to
// election_results.txt.
//
// Candidates are reported in first-seen order and ties go to the candidate
// seen first, so repeated runs over the same input print identical reports.
//
// Watch reports later changes to the ballot files so callers can re-tally.
package election
