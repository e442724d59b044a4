// Package mask implements the word-masking transform and the parsers that
// feed it.
//
// Text is split on single spaces; every token whose lowercase form is in the
// banned set has its characters replaced through a Mapping, everything else
// passes through untouched. Mappings are parsed from "letter:replacement"
// pairs separated by commas, and malformed pairs are skipped rather than
// rejected.
//
// The package holds no state and performs no I/O. Persistence of the banned
// list and mapping string belongs to the store package; session wires the two
// together.
package mask
