package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/seobooster/internal/model"
)

// JSONWriter writes the migration document. Compact by default.
// URLs are written as-is: '&', '<' and '>' are not escaped.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint indents with two spaces, the layout of migration documents.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteDocument writes the migration document.
func (w *JSONWriter) WriteDocument(doc *model.Document) (int, error) {
	data, err := w.marshal(doc)
	if err != nil {
		return 0, err
	}
	return w.output.Write(data)
}

// marshal encodes v with a trailing newline.
func (w *JSONWriter) marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeDocument returns the bytes of doc exactly as written to
// seo_boosters_<locale>.json.
func EncodeDocument(doc *model.Document) ([]byte, error) {
	w := &JSONWriter{}
	WithPrettyPrint()(w)
	return w.marshal(doc)
}
