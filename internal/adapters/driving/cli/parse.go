package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
)

var parseField string

var parseCmd = &cobra.Command{
	Use:   "parse [domain] [file]",
	Short: "Parse a captured WHOIS response offline",
	Long: `Parses raw WHOIS text for the given domain without any network access.
The text is read from the named file, or from stdin when the file is
omitted or "-".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseField, "field", "f", "", "print only this field's values")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	record, err := lookupService.Parse(args[0], raw)
	if err != nil {
		if domain.IsDomainNotFound(err) {
			return fmt.Errorf("no registration data for %s: %w", args[0], err)
		}
		return err
	}

	return printRecord(cmd, record, parseField)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) < 2 || args[1] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[1], err)
	}
	return string(data), nil
}
