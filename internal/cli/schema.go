package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/chartform/pkg/formfile"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of form files",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			if err := formfile.WriteSchema(cc.OutOrStdout()); err != nil {
				return fmt.Errorf("schema failed: %w", err)
			}

			return nil
		},
	}
}
