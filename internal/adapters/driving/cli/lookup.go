package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
)

var lookupField string

var lookupCmd = &cobra.Command{
	Use:   "lookup [domain]",
	Short: "Fetch and parse WHOIS data for a domain",
	Long: `Queries the WHOIS server for the domain's TLD (cache permitting) and
prints the parsed record, one "field: [values]" line per known field.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupField, "field", "f", "", "print only this field's values")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	record, err := lookupService.Lookup(context.Background(), args[0])
	if err != nil {
		if domain.IsDomainNotFound(err) {
			return fmt.Errorf("no registration data for %s: %w", args[0], err)
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	return printRecord(cmd, record, lookupField)
}

// printRecord renders either the whole record or a single field.
func printRecord(cmd *cobra.Command, record *domain.Record, field string) error {
	if field == "" {
		cmd.Println(record.String())
		return nil
	}

	values, err := record.Get(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		cmd.Println(v)
	}
	return nil
}
