package report

import (
	"io"
	"strings"

	"github.com/nao1215/addralias/internal/model"
	"github.com/nao1215/markdown"
	"gonum.org/v1/gonum/stat"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// The identicon is placed in a plain code block so that its spacing survives
// rendering.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs one report.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Address Alias: " + report.Alias)
	md.PlainText("")
	w.writeReport(md, report)
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteBatch outputs an overview table followed by one section per report.
func (w *MarkdownWriter) WriteBatch(reports []*model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Address Aliases")
	md.PlainText("")

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{code(r.Input), r.Alias, code(r.ShortID), r.Entropy.String()}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Address", "Alias", "Short ID", "Entropy"},
		Rows:   rows,
	})
	md.PlainText("")
	if summary := entropySummary(reports); summary != "" {
		md.PlainText(summary)
		md.PlainText("")
	}

	for _, r := range reports {
		md.H2(r.Alias)
		md.PlainText("")
		w.writeReport(md, r)
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeReport writes the property table, identicon and advisories.
func (w *MarkdownWriter) writeReport(md *markdown.Markdown, report *model.Report) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Address", code(report.Input)},
			{"Normalized", code(report.Normalized)},
			{"Short ID", code(report.ShortID)},
			{"Alias", "**" + report.Alias + "**"},
			{"Entropy score (0..100)", report.Entropy.String()},
			{"Fingerprint (sha256)", code(report.Fingerprint)},
		},
	})
	md.PlainText("")

	md.CodeBlocks(markdown.SyntaxHighlight("text"), strings.Join(report.Identicon, "\n"))
	md.PlainText("")

	for _, a := range report.Advisories {
		md.Warningf("%s", a.Message)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated offline by [addralias](https://github.com/nao1215/addralias)*")
}

// entropySummary describes the spread of entropy scores across a batch.
// The standard deviation needs at least two reports.
func entropySummary(reports []*model.Report) string {
	if len(reports) == 0 {
		return ""
	}
	scores := make([]float64, len(reports))
	for i, r := range reports {
		scores[i] = float64(r.Entropy)
	}
	if len(scores) == 1 {
		return "Mean entropy score: " + model.Score(stat.Mean(scores, nil)).String()
	}
	mean, std := stat.MeanStdDev(scores, nil)
	return "Mean entropy score: " + model.Score(mean).String() +
		" (std dev " + model.Score(std).String() + ")"
}

// code wraps s in backticks. An empty value is shown as a dash so the
// table cell is not left blank.
func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}
