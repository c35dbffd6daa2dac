package report

import (
	"io"

	"github.com/nao1215/seobooster/internal/model"
)

// Writer writes a run summary.
type Writer interface {
	// WriteSummary outputs the summary and returns the number of bytes
	// written.
	WriteSummary(s *model.Summary) (int, error)
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// dateLayout and timeLayout format dates in summaries and emails.
const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05 MST"
)
