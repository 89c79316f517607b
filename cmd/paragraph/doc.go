// Command paragraph prints approximate word and sentence statistics for the
// first line of a text file.
//
//	paragraph [--format text|table|json] <file>
package main
