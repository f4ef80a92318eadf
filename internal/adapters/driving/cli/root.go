// Package cli is the cobra command tree driving the lookup service.
package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/whois-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whois-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/whois-cli/internal/adapters/driven/whois"
	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whois-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whois-cli/internal/core/services"
	"github.com/custodia-labs/whois-cli/internal/logger"
	"github.com/custodia-labs/whois-cli/internal/registries"
)

var (
	verboseFlag bool
	configDir   string
	noCache     bool
)

// lookupService is wired once per invocation by the root pre-run.
// Tests may inject a fake before calling a command.
var lookupService driving.LookupService

// responseCache is retained so the post-run can close it.
var responseCache driven.ResponseCache

var rootCmd = &cobra.Command{
	Use:   "whois-cli",
	Short: "Look up and parse WHOIS registration data",
	Long: `Fetches raw WHOIS responses and parses them into named fields using
per-TLD pattern registries. Raw responses are cached locally so repeat
queries stay off the registry servers.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if responseCache != nil {
			return responseCache.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.whois-cli)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "skip the local response cache")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// setup wires adapters into the lookup service. Skipped when a service
// was injected (tests).
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if lookupService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	logger.Debug("config loaded from %s", cfg.Path())

	if !noCache {
		cache, err := sqlite.NewResponseCache(dataDir())
		if err != nil {
			return err
		}
		responseCache = cache
		logger.Debug("response cache at %s", cache.Path())
	}

	client := whois.NewClient(clientConfig(cfg))

	ttl := time.Duration(cfg.GetInt("cache.ttl_hours")) * time.Hour
	lookupService = services.NewLookupService(client, responseCache, ttl)
	return nil
}

// dataDir places cache data under the configured directory, or lets the
// adapter fall back to its own default when none is set.
func dataDir() string {
	if configDir == "" {
		return ""
	}
	return configDir + "/data"
}

// clientConfig translates config keys into client tuning, including any
// per-TLD server overrides.
func clientConfig(cfg driven.ConfigStore) whois.Config {
	overrides := make(map[string]string)
	for _, suffix := range registries.Suffixes() {
		tld := strings.TrimPrefix(suffix, ".")
		if server := cfg.GetString("servers." + tld); server != "" {
			overrides[tld] = server
		}
	}

	return whois.Config{
		Timeout:           time.Duration(cfg.GetInt("query.timeout_seconds")) * time.Second,
		RequestsPerSecond: configFloat(cfg, "query.requests_per_second"),
		BurstSize:         cfg.GetInt("query.burst"),
		ServerOverrides:   overrides,
	}
}

// configFloat reads a numeric key that users may write with or without a
// decimal point.
func configFloat(cfg driven.ConfigStore, key string) float64 {
	v, ok := cfg.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
