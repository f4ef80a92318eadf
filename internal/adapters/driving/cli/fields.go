package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/whois-cli/internal/registries"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [domain-or-suffix]",
	Short: "List the field names parsed for a domain's TLD",
	Long: `Shows which fields the registry selected for the given domain (or bare
suffix like ".cz") can extract. Domains without a dedicated registry use
the generic default set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry := registries.ForDomain(args[0])
		cmd.Printf("registry: %s\n", registry.Name())
		for _, field := range registry.Fields() {
			cmd.Println(field)
		}
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
