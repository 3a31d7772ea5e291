package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mholweger/dualmeet/core/metrics"
)

// Config is the service configuration.
type Config struct {
	Meet    MeetConfig     `json:"meet"`
	Teams   TeamsConfig    `json:"teams"`
	RunLog  RunLogConfig   `json:"runlog"`
	Metrics metrics.Config `json:"metrics"`
}

// TeamsConfig points at the roster files for both sides of the meet.
// Away is optional; without it only a single-team lineup is built.
type TeamsConfig struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Validate checks that the home roster is configured.
func (c TeamsConfig) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("teams.home roster file is required")
	}
	return nil
}

// Load reads the configuration file, applies environment overrides with
// the DM_ prefix and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DM_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dm_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Meet.SetDefaults()
	cfg.RunLog.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Meet.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Teams.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.RunLog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
