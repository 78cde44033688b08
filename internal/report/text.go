package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/addralias/internal/model"
)

// TextWriter outputs the human-readable report.
//
// The layout is fixed: input, short id, alias, entropy score, identicon
// lines, fingerprint. Advisories are not part of it; callers report them on
// stderr so that the stdout text stays stable for scripts that parse it.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs one report.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder
	w.writeReport(&sb, report)
	return io.WriteString(w.output, sb.String())
}

// WriteBatch outputs reports separated by a blank line.
func (w *TextWriter) WriteBatch(reports []*model.Report) (int, error) {
	var sb strings.Builder
	for i, r := range reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		w.writeReport(&sb, r)
	}
	return io.WriteString(w.output, sb.String())
}

// writeReport renders a single report into sb.
func (w *TextWriter) writeReport(sb *strings.Builder, report *model.Report) {
	fmt.Fprintf(sb, "Address: %s\n", report.Input)
	fmt.Fprintf(sb, "Short id: %s\n", report.ShortID)
	fmt.Fprintf(sb, "Alias: %s\n", report.Alias)
	fmt.Fprintf(sb, "Entropy score (0..100): %s\n", report.Entropy)

	sb.WriteString("\nIdenticon:\n")
	for _, line := range report.Identicon {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "\nFingerprint (sha256): %s\n", report.Fingerprint)
}
