// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: The human-readable line format for terminal display
//   - JSONWriter: Key-ordered JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//
// Design decision: We separate report writing from the report data
// structure (in the model package) so that new output formats can be added
// without touching the derivation core.
package report
