package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/addralias/internal/config"
	"github.com/nao1215/addralias/internal/history"
	"github.com/nao1215/addralias/internal/model"
	"github.com/nao1215/addralias/internal/report"
)

// historyTimeLayout is the timestamp layout of the history listing.
const historyTimeLayout = "2006-01-02 15:04:05"

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List reports saved with derive --save",
		Long: `History lists the reports recorded by 'addralias derive --save', newest first.

Only derived values are stored. A star in the listing marks aliases that
were derived with a seed; the seed itself is never saved.

Examples:
  # List the 20 most recent reports
  addralias history

  # List every report as JSON
  addralias history --limit 0 --json

  # Show a saved report by alias or short id
  addralias history show Jugmugqugnob
  addralias history show 2baf1f40`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.PersistentFlags().String("db-dir", "",
		"History database directory (default: XDG data directory)")
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of entries to list (0 lists all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output the listing as JSON")

	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <alias|short-id>",
		Short: "Show a saved report",
		Long: `Show prints the saved report whose alias (case-insensitive) or short id
matches the argument. When several reports match, all of them are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runHistoryShowCmd,
	}

	cmd.Flags().StringP("format", "f", string(config.FormatText),
		"Output format: text, json or markdown")

	return cmd
}

// openHistory opens the history database selected by --db-dir.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	store, err := history.Open(dbDir, history.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

// runHistoryCmd lists saved reports.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeHistoryJSON(cmd.OutOrStdout(), entries)
	}
	return writeHistoryTable(cmd.OutOrStdout(), entries)
}

// historyEntryJSON is the JSON form of one listed entry.
type historyEntryJSON struct {
	ID        int64         `json:"id"`
	CreatedAt string        `json:"created_at"`
	Seeded    bool          `json:"seeded"`
	Report    *model.Report `json:"report"`
}

func writeHistoryJSON(w io.Writer, entries []history.Entry) error {
	out := make([]historyEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryJSON{
			ID:        e.ID,
			CreatedAt: e.CreatedAt.Format(historyTimeLayout),
			Seeded:    e.Seeded,
			Report:    e.Report,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(out)
}

func writeHistoryTable(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprint(w, "No saved reports found.\n\nUse 'addralias derive --save <address>' to record one.\n")
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Saved reports (%d):\n\n", len(entries))
	fmt.Fprintf(&sb, "  %-6s  %-19s  %-13s  %-8s  %s\n", "ID", "Date", "Alias", "Short id", "Address")
	sb.WriteString("  " + strings.Repeat("-", 72) + "\n")

	for _, e := range entries {
		alias := e.Report.Alias
		if e.Seeded {
			alias += "*"
		}
		fmt.Fprintf(&sb, "  %-6d  %-19s  %-13s  %-8s  %s\n",
			e.ID,
			e.CreatedAt.Format(historyTimeLayout),
			alias,
			e.Report.ShortID,
			e.Report.Normalized,
		)
	}

	sb.WriteString("\n* derived with a seed\n")
	sb.WriteString("Use 'addralias history show <alias|short-id>' to see a full report.\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// runHistoryShowCmd prints the saved reports matching an alias or short id.
func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := config.ParseFormat(name)
	if err != nil {
		return fmt.Errorf("--format %q: %w", name, err)
	}

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return showHistory(cmd.Context(), store, args[0], format, cmd.OutOrStdout())
}

func showHistory(ctx context.Context, store *history.Store, key string, format config.Format, w io.Writer) error {
	entries, err := store.Find(ctx, key)
	if err != nil {
		return err
	}

	reports := make([]*model.Report, 0, len(entries))
	for _, e := range entries {
		reports = append(reports, e.Report)
	}

	writer := report.New(string(format), w)
	if len(reports) == 1 {
		_, err = writer.Write(reports[0])
		return err
	}
	_, err = writer.WriteBatch(reports)
	return err
}
