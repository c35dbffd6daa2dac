package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/seobooster/internal/model"
)

// maxListed caps the URL lists of a non verbose summary.
const maxListed = 10

// SimpleWriter writes a plain text summary for the terminal.
type SimpleWriter struct {
	baseWriter

	// verbose lists every excluded and foreign URL.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose lists every URL instead of the first few.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteSummary outputs the summary in human-readable format.
func (w *SimpleWriter) WriteSummary(s *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, s)
	w.writePages(&sb, s)
	w.writeBoosters(&sb, s)
	w.writeExcluded(&sb, s)
	w.writeForeign(&sb, s)

	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, s *model.Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      SEO BOOSTER MIGRATION\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Document ID:  %s\n", s.DocumentID)
	fmt.Fprintf(sb, "Locale:       %s\n", s.Locale)
	fmt.Fprintf(sb, "Generated:    %s\n", s.GeneratedAt.Format(timeLayout))
	if s.OutputPath != "" {
		fmt.Fprintf(sb, "Output:       %s\n", s.OutputPath)
	}
	if s.Digest != "" {
		digest := s.Digest
		if !w.verbose {
			digest = ShortDigest(digest)
		}
		fmt.Fprintf(sb, "SHA3-256:     %s\n", digest)
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writePages(sb *strings.Builder, s *model.Summary) {
	sb.WriteString("PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  Input pages:  %d\n", s.InputPages)
	fmt.Fprintf(sb, "  Migrations:   %d\n", s.Migrations)
	fmt.Fprintf(sb, "  Excluded:     %d\n", len(s.Excluded))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeBoosters(sb *strings.Builder, s *model.Summary) {
	sb.WriteString("BOOSTERS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	short := make(map[int]bool)
	for _, i := range s.ShortBoosters() {
		short[i] = true
	}
	for i, title := range s.Titles {
		fmt.Fprintf(sb, "  [%d] %q, %d link(s)", i, title, s.LinkCounts[i])
		if short[i] {
			fmt.Fprintf(sb, "  [!] fewer than %d", model.RecommendedBoosterLinks)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeExcluded(sb *strings.Builder, s *model.Summary) {
	if len(s.Excluded) == 0 {
		return
	}
	sb.WriteString("EXCLUDED PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	for i, e := range s.Excluded {
		if !w.verbose && i == maxListed {
			fmt.Fprintf(sb, "  ... and %d more (use --verbose)\n", len(s.Excluded)-maxListed)
			break
		}
		fmt.Fprintf(sb, "  - %s (%s)\n", e.URL, e.Reason)
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeForeign(sb *strings.Builder, s *model.Summary) {
	if len(s.ForeignURLs) == 0 {
		return
	}
	sb.WriteString("URLS LEFT ABSOLUTE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	for i, u := range s.ForeignURLs {
		if !w.verbose && i == maxListed {
			fmt.Fprintf(sb, "  ... and %d more (use --verbose)\n", len(s.ForeignURLs)-maxListed)
			break
		}
		fmt.Fprintf(sb, "  - %s\n", u)
	}
	sb.WriteString("\n")
}
