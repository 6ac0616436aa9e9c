package main

import (
	"fmt"
	"os"

	"github.com/pg-sharding/nullscan/pkg"
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/optimizer/nullscan"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	outputFormat string
	outDir       string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "nullscan rewrite --config `path-to-config` plan.yaml...",
	Short: "nullscan",
	Long:  "nullscan moves scans answerable from partition metadata onto a one null row input",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		planlog.Zero.Error().Err(err).Msg("")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to optimizer config file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "overrides log_level of the config")

	rewriteCmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format: yaml or json")
	rewriteCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "write rewritten plans here instead of stdout")

	rootCmd.AddCommand(rewriteCmd, rulesCmd, versionCmd)
}

// loadConfig reads the optimizer config and sets the logger up from it.
func loadConfig() (*config.OptimizerCfg, error) {
	cfg := config.DefaultOptimizerCfg()
	if cfgPath != "" {
		loaded, err := config.LoadOptimizerCfg(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	planlog.ReloadLogger(cfg.LogFile, cfg.LogLevel, cfg.PrettyLogging)
	return &cfg, nil
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "list null scan rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opt, err := nullscan.NewNullScanOptimizer(&cfg.NullScan)
		if err != nil {
			return err
		}
		enabled := map[string]bool{}
		for _, r := range opt.Rules() {
			enabled[r] = true
		}
		for _, r := range nullscan.KnownRules() {
			mark := " "
			if enabled[r] && cfg.NullScan.Enabled {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, r)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print nullscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nullscan %s\n", pkg.VersionRevision())
	},
}

func main() {
	Execute()
}
