package config

import (
	"encoding/json"
	"os"

	"github.com/pg-sharding/nullscan/pkg/planlog"
)

const (
	RuleMetadataOnly = "metadata-only"
	RuleWhereFalse   = "where-false"
	RuleLimitZero    = "limit-zero"
)

type NullScanCfg struct {
	Enabled bool     `json:"enabled" toml:"enabled" yaml:"enabled"`
	Rules   []string `json:"rules" toml:"rules" yaml:"rules"`
}

type JaegerCfg struct {
	Disabled    bool   `json:"disabled" toml:"disabled" yaml:"disabled"`
	ServiceName string `json:"service_name" toml:"service_name" yaml:"service_name"`
	// JaegerUrl is the sampling server url.
	JaegerUrl     string `json:"jaeger_url" toml:"jaeger_url" yaml:"jaeger_url"`
	AgentHostPort string `json:"agent_host_port" toml:"agent_host_port" yaml:"agent_host_port"`
}

type OptimizerCfg struct {
	LogLevel      string `json:"log_level" toml:"log_level" yaml:"log_level"`
	LogFile       string `json:"log_file" toml:"log_file" yaml:"log_file"`
	PrettyLogging bool   `json:"pretty_logging" toml:"pretty_logging" yaml:"pretty_logging"`

	// ScratchDir is the root of the per-query temp namespace placeholder paths are fabricated in.
	ScratchDir string `json:"scratch_dir" toml:"scratch_dir" yaml:"scratch_dir"`

	NullScan     NullScanCfg `json:"null_scan" toml:"null_scan" yaml:"null_scan"`
	JaegerConfig JaegerCfg   `json:"jaeger" toml:"jaeger" yaml:"jaeger"`
}

func DefaultOptimizerCfg() OptimizerCfg {
	return OptimizerCfg{
		LogLevel:   "info",
		ScratchDir: "/tmp/nullscan",
		NullScan: NullScanCfg{
			Enabled: true,
			Rules:   []string{RuleMetadataOnly},
		},
		JaegerConfig: JaegerCfg{
			ServiceName:   "nullscan",
			JaegerUrl:     "localhost:5778",
			AgentHostPort: "localhost:6831",
		},
	}
}

// LoadOptimizerCfg reads the optimizer configuration. Keys missing from the
// file keep their DefaultOptimizerCfg values.
func LoadOptimizerCfg(cfgPath string) (*OptimizerCfg, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			planlog.Zero.Error().Err(err).Str("path", cfgPath).Msg("failed to close config file")
		}
	}(file)

	cfg := DefaultOptimizerCfg()
	if err := initConfig(file, &cfg); err != nil {
		return nil, err
	}

	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	planlog.Zero.Debug().RawJSON("config", configBytes).Msg("running optimizer config")
	return &cfg, nil
}
