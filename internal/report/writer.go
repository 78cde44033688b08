package report

import (
	"io"

	"github.com/nao1215/addralias/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)

	// WriteBatch outputs several reports as one document, in order.
	WriteBatch(reports []*model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// New returns the writer for the given format name ("text", "json" or
// "markdown"). Unknown names fall back to text.
func New(format string, output io.Writer) Writer {
	switch format {
	case "json":
		return NewJSONWriter(output, WithPrettyPrint())
	case "markdown":
		return NewMarkdownWriter(output)
	default:
		return NewTextWriter(output)
	}
}
