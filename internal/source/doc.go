// Package source reads the three CSV inputs of a generation run and writes
// the header-only CSV templates users fill in.
//
// Inputs are validated for column presence only. Header names are matched
// case-insensitively, a UTF-8 byte order mark is ignored, and rows whose url
// column is blank are skipped. Any other malformed input (unbalanced quotes,
// undecodable bytes) is returned as an error.
package source
