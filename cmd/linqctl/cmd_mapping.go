package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linq/acme-integration/internal/domain/contact"
)

// mappingCmd groups field mapping commands
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Print or verify the Linq/AcmeCRM field mapping",
}

var mappingSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the field mapping as JSON",
	Args:  cobra.NoArgs,
	RunE:  runMappingSchema,
}

var mappingCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify both mapping directions are exact inverses",
	Args:  cobra.NoArgs,
	RunE:  runMappingCheck,
}

func runMappingSchema(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(contact.Schema())
}

func runMappingCheck(cmd *cobra.Command, args []string) error {
	if err := contact.ValidateMapping(); err != nil {
		return fmt.Errorf("mapping check failed: %w", err)
	}
	schema := contact.Schema()
	fmt.Fprintf(cmd.OutOrStdout(), "mapping OK: %d fields, bijective\n", len(schema.LinqToAcme))
	return nil
}
