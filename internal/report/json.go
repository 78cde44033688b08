package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/addralias/internal/model"
)

// JSONWriter outputs reports in JSON format.
// Keys follow the field order of model.Report, and non-ASCII characters
// such as the identicon block glyph are written as is.
//
// Design decision: the writer relies on encoding/json struct tags and the
// model.Score marshaler instead of building a map. Field order then stays
// fixed, and the entropy score always carries one decimal ("100.0").
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one report as a JSON object.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(report)
}

// WriteBatch outputs the reports as a JSON array.
func (w *JSONWriter) WriteBatch(reports []*model.Report) (int, error) {
	if reports == nil {
		reports = []*model.Report{}
	}
	return w.writeJSON(reports)
}

// writeJSON encodes v and writes it followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}

	// Encode appends the trailing newline.
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
