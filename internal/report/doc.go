// Package report writes the outputs of a generation run.
//
// This package contains:
//   - JSONWriter: the migration document
//   - SimpleWriter: a plain text run summary for the terminal
//   - MarkdownWriter: the run summary as Markdown
//   - EmailWriter: the email template that accompanies the document
//
// SimpleWriter and MarkdownWriter implement the Writer interface.
package report
