package cli

import (
	"log/slog"

	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/spf13/cobra"
)

func newBalancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "balances",
		Short:   "Print the current balance of every supplier as JSON",
		Example: `  ledgerctl balances --suppliers suppliers.json --purchases purchases.json --vouchers vouchers.json --branch north`,
		Args:    cobra.NoArgs,
		RunE:    runBalances,
	}

	cmd.Flags().String("suppliers", "", "Suppliers JSON array file")
	cmd.Flags().String("purchases", "", "Purchase invoices JSON array file")
	cmd.Flags().String("vouchers", "", "Payment vouchers JSON array file")
	cmd.Flags().String("branch", "", "Only count transactions of this branch")
	_ = cmd.MarkFlagRequired("suppliers")

	return cmd
}

func runBalances(cmd *cobra.Command, _ []string) error {
	_, logger := commandContext(cmd)

	suppliersPath, _ := cmd.Flags().GetString("suppliers")
	purchasesPath, _ := cmd.Flags().GetString("purchases")
	vouchersPath, _ := cmd.Flags().GetString("vouchers")
	branchID, _ := cmd.Flags().GetString("branch")

	raw, err := readInput(suppliersPath, "suppliers")
	if err != nil {
		return err
	}
	suppliers, err := ledger.DecodeSuppliers(raw)
	if err != nil {
		return err
	}
	purchases, vouchers, err := loadTransactions(purchasesPath, vouchersPath)
	if err != nil {
		return err
	}

	balances := ledger.ProjectBalances(suppliers, purchases, vouchers, ledger.ProjectOptions{BranchID: branchID})
	rows := ledger.OrderedBalances(suppliers, balances)
	logger.Debug("Supplier balances projected",
		slog.Int("supplier_count", len(suppliers)),
		slog.Int("row_count", len(rows)))

	return writeJSON(cmd.OutOrStdout(), dto.ToSupplierBalancesResponse(rows, branchID))
}
