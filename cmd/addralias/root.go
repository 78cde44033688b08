package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/addralias/internal/config"
)

// Exit statuses.
const (
	exitFailure = 1
	// exitUsage is returned when no address was supplied.
	exitUsage = 2
)

// NewRootCmd creates the root command for addralias.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addralias",
		Short: "Derive an alias, identicon and entropy score from a hex address",
		Long: `addralias derives a deterministic, human-friendly fingerprint from a
hexadecimal string such as a cryptocurrency address.

For every address it prints a pronounceable alias, a short id, a small
symmetric identicon and an entropy score between 0 and 100. Nothing leaves
the machine: all values come from the SHA-256 digest of the address.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewDeriveCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, config.ErrNoTarget) {
		return exitUsage
	}
	return exitFailure
}
