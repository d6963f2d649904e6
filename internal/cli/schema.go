package cli

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var schemaDocuments = map[string]any{
	"statement": dto.StatementResponse{},
	"balances":  dto.SupplierBalancesResponse{},
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "schema statement|balances",
		Short:     "Print the JSON Schema of a ledgerctl output document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"statement", "balances"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, ok := schemaDocuments[args[0]]
			if !ok {
				return fmt.Errorf("unknown document %q, expected statement or balances", args[0])
			}
			return writeJSON(cmd.OutOrStdout(), reflectSchema(doc))
		},
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// reflectSchema describes v, with decimals as the quoted strings they marshal to.
func reflectSchema(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == decimalType {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     `^-?[0-9]+(\.[0-9]+)?$`,
					Description: "Decimal amount",
				}
			}
			return nil
		},
	}
	return reflector.Reflect(v)
}
