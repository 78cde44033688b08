package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/addralias/internal/config"
	"github.com/nao1215/addralias/internal/extract"
	"github.com/nao1215/addralias/internal/fingerprint"
	"github.com/nao1215/addralias/internal/history"
	"github.com/nao1215/addralias/internal/log"
	"github.com/nao1215/addralias/internal/model"
	"github.com/nao1215/addralias/internal/pipeline"
	"github.com/nao1215/addralias/internal/report"
)

// NewDeriveCmd creates the derive command.
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [address...]",
		Short: "Derive alias, identicon and entropy score for addresses",
		Long: `Derive computes a deterministic fingerprint for each address.

The address is trimmed, an optional 0x prefix is removed and the rest is
lowercased. Non-hex characters are accepted with a warning. A mixed-case
40 character address is also checked against its EIP-55 checksum.

The seed changes the alias only; the identicon, short id and entropy score
always describe the address itself.

Examples:
  # Derive a single address
  addralias derive 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045

  # Use a seed to get a different alias for the same address
  addralias derive --seed personal 0xdeadbeef

  # Use a named seed from the configuration file
  addralias derive --seed @work 0xdeadbeef

  # Read addresses from a file, one per line, and print JSON
  addralias derive --list wallets.txt --json

  # Read addresses from standard input
  cat wallets.txt | addralias derive

  # Derive every address mentioned in a document
  addralias derive --extract --list invoice.txt

  # Record the result in the local history
  addralias derive --save 0xdeadbeef

Configuration file (.addralias) example:
  seed: ""
  format: text
  size: 7
  seeds:
    work: "team-wallets"`,
		Args: cobra.ArbitraryArgs,
		RunE: runDeriveCmd,
	}

	cmd.Flags().StringP("seed", "s", "",
		"Seed mixed into the alias (@name selects a preset from the configuration file)")
	cmd.Flags().IntP("size", "n", config.DefaultGridSize,
		"Identicon width and height")

	cmd.Flags().StringP("format", "f", string(config.FormatText),
		"Output format: text, json or markdown")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (same as --format json)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (same as --format markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	cmd.Flags().StringP("list", "l", "",
		"File with one address per line")
	cmd.Flags().BoolP("extract", "x", false,
		"Find addresses anywhere in the list file or standard input")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent derivations")

	cmd.Flags().Bool("save", false,
		"Record the reports in the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .addralias in current or home directory)")

	return cmd
}

// runDeriveCmd executes the derive command.
func runDeriveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runDerive(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the masking logger for cmd. Logs go to the command's
// stderr, as text unless --log-json is set.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		asJSON = false
	}
	if asJSON {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra flags, in that order of precedence (flags win).
func buildConfig(cmd *cobra.Command, args []string, stdin io.Reader) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly requested file must exist; a missing default file is fine.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.ApplyFile(file); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetString("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("size") {
		if cfg.GridSize, err = flags.GetInt("size"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("save") {
		if cfg.SaveHistory, err = flags.GetBool("save"); err != nil {
			return nil, err
		}
	}
	if dbDir, err := flags.GetString("db-dir"); err != nil {
		return nil, err
	} else if dbDir != "" {
		cfg.DBDir = dbDir
	}

	if err := applyFormatFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.ListFile, err = flags.GetString("list")
	if err != nil {
		return nil, err
	}
	cfg.Extract, err = flags.GetBool("extract")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	cfg.Targets, err = collectTargets(cmd.Context(), args, cfg.ListFile, cfg.Extract, stdin)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFormatFlags sets cfg.Format from --format, --json and --markdown.
// At most one of them may be given.
func applyFormatFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	jsonReport, err := flags.GetBool("json")
	if err != nil {
		return err
	}
	markdownReport, err := flags.GetBool("markdown")
	if err != nil {
		return err
	}

	requested := 0
	for _, set := range []bool{flags.Changed("format"), jsonReport, markdownReport} {
		if set {
			requested++
		}
	}
	if requested > 1 {
		return fmt.Errorf("configuration error: %w", config.ErrConflictingReportFormats)
	}

	switch {
	case jsonReport:
		cfg.Format = config.FormatJSON
	case markdownReport:
		cfg.Format = config.FormatMarkdown
	case flags.Changed("format"):
		name, err := flags.GetString("format")
		if err != nil {
			return err
		}
		format, err := config.ParseFormat(name)
		if err != nil {
			return fmt.Errorf("--format %q: %w", name, err)
		}
		cfg.Format = format
	}
	return nil
}

// collectTargets gathers addresses from positional arguments and the list
// file. Standard input is read only when neither supplies an address.
// Empty arguments count as missing. With extractMode set, the list file and
// standard input are searched for addresses instead of read line by line.
func collectTargets(ctx context.Context, args []string, listFile string, extractMode bool, stdin io.Reader) ([]string, error) {
	read := readLines
	if extractMode {
		read = func(r io.Reader) ([]string, error) {
			return extractAddresses(ctx, r)
		}
	}

	targets := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "" {
			targets = append(targets, arg)
		}
	}

	if listFile != "" {
		f, err := os.Open(listFile) //nolint:gosec // User-provided list path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open address list: %w", err)
		}
		defer f.Close()

		lines, err := read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read address list %s: %w", listFile, err)
		}
		targets = append(targets, lines...)
	}

	if len(targets) == 0 && listFile == "" && stdin != nil {
		lines, err := read(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		targets = append(targets, lines...)
	}

	return targets, nil
}

// readLines returns the trimmed non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// extractAddresses returns every distinct address found in r.
func extractAddresses(ctx context.Context, r io.Reader) ([]string, error) {
	matches, err := extract.New().Find(ctx, r)
	if err != nil {
		return nil, err
	}
	return extract.Addresses(matches), nil
}

// runDerive derives every target and writes the reports.
func runDerive(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) error {
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger.Debug("starting derivation",
		"targets", len(cfg.Targets),
		"seed", seed,
		"size", cfg.GridSize,
		"format", string(cfg.Format),
		"batch", cfg.BatchSize,
	)

	stages := []pipeline.Step{
		pipeline.NewAdvisoryStep(
			pipeline.WithAdvisoryWriter(stderr),
			pipeline.WithAdvisoryLogger(logger),
		),
	}

	if cfg.SaveHistory {
		store, err := history.Open(cfg.DBDir, history.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()
		logger.Debug("history opened", "path", store.Path())

		stages = append(stages, pipeline.NewHistoryStep(store,
			pipeline.WithSeeded(seed != ""),
			pipeline.WithHistoryLogger(logger),
		))
	}

	// A failed warning print must not keep a report out of history, so
	// every step runs. The first error still stops the batch.
	steps := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)
	steps.AddSteps(stages...)

	logger.Debug("pipeline ready",
		"steps", steps.StepCount(),
		"names", strings.Join(steps.StepNames(), ","),
	)

	bp := pipeline.NewBatchProcessor(
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithDeriveOptions(
			fingerprint.WithSeed(seed),
			fingerprint.WithGridSize(cfg.GridSize),
		),
		pipeline.WithPipeline(steps),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.Process(ctx, cfg.Targets)
	if err != nil {
		return fmt.Errorf("derivation failed: %w", err)
	}

	return outputReports(cfg, reports, stdout)
}

// outputReports writes reports in the configured format to the report
// file, or to stdout when no file is set. A single report is written on its
// own, several reports as one batch document.
func outputReports(cfg *config.Config, reports []*model.Report, stdout io.Writer) error {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	w := report.New(string(cfg.Format), output)
	if len(reports) == 1 {
		_, err := w.Write(reports[0])
		return err
	}
	_, err := w.WriteBatch(reports)
	return err
}
