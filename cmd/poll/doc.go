// Command poll tallies ballot CSV exports in a directory, prints the election
// results and writes them to election_results.txt.
//
//	poll [--output FILE] [--format text|table|json] [--record] [--watch] <directory>
//	poll history [--limit N]
//	poll history show <id>
package main
