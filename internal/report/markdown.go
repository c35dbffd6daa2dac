package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/seobooster/internal/model"
)

// MarkdownWriter writes the run summary as GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteSummary outputs the summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(s *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, s)
	w.writePages(md, s)
	w.writeBoosters(md, s)
	w.writeExcluded(md, s)
	w.writeForeign(md, s)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *model.Summary) {
	md.H1("SEO Booster Migration")
	md.PlainText("")

	rows := [][]string{
		{"Document ID", "`" + s.DocumentID + "`"},
		{"Locale", s.Locale},
		{"Generated", s.GeneratedAt.Format(timeLayout)},
	}
	if s.OutputPath != "" {
		rows = append(rows, []string{"Output", "`" + s.OutputPath + "`"})
	}
	if s.Digest != "" {
		rows = append(rows, []string{"SHA3-256", "`" + s.Digest + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writePages(md *markdown.Markdown, s *model.Summary) {
	md.H2("Pages")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Input pages", "Migrations", "Excluded"},
		Rows: [][]string{{
			strconv.Itoa(s.InputPages),
			strconv.Itoa(s.Migrations),
			strconv.Itoa(len(s.Excluded)),
		}},
	})
	md.PlainText("")

	if len(s.Excluded) > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Liveness check"),
			piechart.WithShowData(true),
		)
		chart.LabelAndIntValue("Live", uint64(s.Migrations))        //nolint:gosec // counts are never negative
		chart.LabelAndIntValue("Excluded", uint64(len(s.Excluded))) //nolint:gosec // counts are never negative
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	if s.Migrations == 0 {
		md.Warningf("No migration block was generated for %s.", s.Locale)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeBoosters(md *markdown.Markdown, s *model.Summary) {
	md.H2("Boosters")
	md.PlainText("")

	rows := make([][]string, 0, len(s.Titles))
	for i, title := range s.Titles {
		rows = append(rows, []string{strconv.Itoa(i), title, strconv.Itoa(s.LinkCounts[i])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Slot", "Title", "Links"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, i := range s.ShortBoosters() {
		md.Importantf("Booster %d has %d link(s); %d are recommended.",
			i, s.LinkCounts[i], model.RecommendedBoosterLinks)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeExcluded(md *markdown.Markdown, s *model.Summary) {
	if len(s.Excluded) == 0 {
		return
	}
	md.H2("Excluded Pages")
	md.PlainText("")

	rows := make([][]string, 0, len(s.Excluded))
	for _, e := range s.Excluded {
		status := "-"
		if e.StatusCode != 0 {
			status = strconv.Itoa(e.StatusCode)
		}
		rows = append(rows, []string{"`" + e.URL + "`", status, e.Reason})
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Status", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeForeign(md *markdown.Markdown, s *model.Summary) {
	if len(s.ForeignURLs) == 0 {
		return
	}
	md.H2("URLs Left Absolute")
	md.PlainText("")
	md.Note("These URLs kept their scheme and host after normalization and will not match a CMS page.")
	md.PlainText("")
	md.BulletList(s.ForeignURLs...)
	md.PlainText("")
}
