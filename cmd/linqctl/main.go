// Command linqctl is the operator tool for the integration service. It
// shares the server configuration so tokens it issues are accepted by the
// running API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linq/acme-integration/internal/infrastructure/config"
	"github.com/linq/acme-integration/internal/infrastructure/logger"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger
	log = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "linqctl",
	Short: "Operate the Linq-AcmeCRM integration service",
	Long: `linqctl issues and inspects bearer tokens and checks the contact field
mapping, using the same configuration as the API server.

Available commands:
  token   - Issue and resolve bearer tokens
  mapping - Print or verify the Linq/AcmeCRM field mapping`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console", Output: "stderr"})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config.toml or ./config/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	tokenIssueCmd.Flags().StringVar(&issueSubject, "sub", "", "Subject (username) carried by the token (required)")
	tokenIssueCmd.Flags().DurationVar(&issueTTL, "ttl", 0, "Token lifetime (default: auth.token_ttl)")
	tokenIssueCmd.Flags().StringArrayVar(&issueClaims, "claim", nil, "Extra string claim as key=value (repeatable)")
	_ = tokenIssueCmd.MarkFlagRequired("sub")

	tokenCmd.AddCommand(tokenIssueCmd)
	tokenCmd.AddCommand(tokenResolveCmd)

	mappingCmd.AddCommand(mappingSchemaCmd)
	mappingCmd.AddCommand(mappingCheckCmd)

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(mappingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given, otherwise the server's default lookup.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
