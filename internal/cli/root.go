// Package cli implements ledgerctl, which builds supplier statements and
// balance lists from JSON exports without a database.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/supplier_ledger/internal/middleware"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// NewRootCommand builds the ledgerctl command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Supplier statements and balances from JSON exports",
		Long: `ledgerctl computes supplier statements and balance lists from JSON exports
of suppliers, purchase invoices and payment vouchers.

Records may use any of the field spellings the upstream screens produce,
for example supplier_id, supplierId or supplierID.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(newStatementCommand(), newBalancesCommand(), newSchemaCommand())
	return rootCmd
}

// Execute runs ledgerctl and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// commandContext returns the command context carrying a stderr logger, so the
// services log the same way they do behind the HTTP middleware.
func commandContext(cmd *cobra.Command) (context.Context, *slog.Logger) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("command", cmd.Name()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return middleware.WithLogger(ctx, logger), logger
}

func readInput(path, what string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file: %w", what, err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
