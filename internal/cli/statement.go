package cli

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/SscSPs/supplier_ledger/internal/core/services"
	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/spf13/cobra"
)

func newStatementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the statement of one supplier as JSON",
		Example: `  # Full history
  ledgerctl statement --suppliers suppliers.json --supplier-id S1 --purchases purchases.json --vouchers vouchers.json

  # March only, opening balance carried forward to March 1st
  ledgerctl statement --suppliers suppliers.json --supplier-id S1 --purchases purchases.json \
    --vouchers vouchers.json --from 2024-03-01 --to 2024-03-31 --rebase`,
		Args: cobra.NoArgs,
		RunE: runStatement,
	}

	cmd.Flags().String("suppliers", "", "Supplier JSON file: an array of suppliers or a single supplier object")
	cmd.Flags().String("supplier-id", "", "Supplier to report on (optional when the file holds one supplier)")
	cmd.Flags().String("purchases", "", "Purchase invoices JSON array file")
	cmd.Flags().String("vouchers", "", "Payment vouchers JSON array file")
	cmd.Flags().String("from", "", "First date of the statement (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last date of the statement (YYYY-MM-DD)")
	cmd.Flags().Bool("rebase", false, "Carry the balance accumulated before --from into the opening row")
	cmd.Flags().String("branch", "", "Only include transactions of this branch")
	_ = cmd.MarkFlagRequired("suppliers")

	return cmd
}

func runStatement(cmd *cobra.Command, _ []string) error {
	ctx, logger := commandContext(cmd)

	suppliersPath, _ := cmd.Flags().GetString("suppliers")
	supplierID, _ := cmd.Flags().GetString("supplier-id")
	purchasesPath, _ := cmd.Flags().GetString("purchases")
	vouchersPath, _ := cmd.Flags().GetString("vouchers")
	fromDate, _ := cmd.Flags().GetString("from")
	toDate, _ := cmd.Flags().GetString("to")
	rebase, _ := cmd.Flags().GetBool("rebase")
	branchID, _ := cmd.Flags().GetString("branch")

	period, err := dto.ParseDateRange(fromDate, toDate)
	if err != nil {
		return err
	}
	if period.IsInverted() {
		logger.Warn("Statement period is inverted, no transactions will be listed",
			slog.String("from", fromDate), slog.String("to", toDate))
	}

	supplier, err := loadSupplier(suppliersPath, supplierID)
	if err != nil {
		return err
	}
	purchases, vouchers, err := loadTransactions(purchasesPath, vouchersPath)
	if err != nil {
		return err
	}

	svc := services.NewSupplierAccountService(nil, nil, nil)
	stmt, err := svc.ComputeStatement(ctx, supplier, purchases, vouchers, ledger.StatementOptions{
		Period:             period,
		RebaseToRangeStart: rebase,
		BranchID:           branchID,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), dto.ToStatementResponse(*stmt))
}

// loadSupplier picks supplierID out of the suppliers file. Without an id the
// file must hold exactly one supplier.
func loadSupplier(path, supplierID string) (domain.Supplier, error) {
	raw, err := readInput(path, "suppliers")
	if err != nil {
		return domain.Supplier{}, err
	}

	suppliers, err := ledger.DecodeSuppliers(raw)
	if err != nil {
		single, singleErr := ledger.DecodeSupplier(raw)
		if singleErr != nil {
			return domain.Supplier{}, err
		}
		suppliers = []domain.Supplier{single}
	}

	if supplierID == "" {
		if len(suppliers) != 1 {
			return domain.Supplier{}, fmt.Errorf("%w: --supplier-id is required when the file holds %d suppliers",
				apperrors.ErrValidation, len(suppliers))
		}
		return suppliers[0], nil
	}

	for _, s := range suppliers {
		if s.SupplierID == supplierID {
			return s, nil
		}
	}
	return domain.Supplier{}, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
}

func loadTransactions(purchasesPath, vouchersPath string) ([]domain.RawPurchase, []domain.RawPaymentVoucher, error) {
	raw, err := readInput(purchasesPath, "purchases")
	if err != nil {
		return nil, nil, err
	}
	purchases, err := ledger.DecodePurchases(raw)
	if err != nil {
		return nil, nil, err
	}

	raw, err = readInput(vouchersPath, "vouchers")
	if err != nil {
		return nil, nil, err
	}
	vouchers, err := ledger.DecodePaymentVouchers(raw)
	if err != nil {
		return nil, nil, err
	}
	return purchases, vouchers, nil
}
