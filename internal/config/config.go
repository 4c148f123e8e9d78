// Package config loads run profiles for the predictor CLI from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete CLI configuration
type Config struct {
	Profiles []Profile `hcl:"profile,block"`
}

// Profile bundles the knobs for one analysis run
type Profile struct {
	Name           string `hcl:"name,label"`
	MultiwayTrials int    `hcl:"multiway_trials,optional"`
	StrengthTrials int    `hcl:"strength_trials,optional"`
	Opponents      int    `hcl:"opponents,optional"`
	Seed           int64  `hcl:"seed,optional"`
	LogLevel       string `hcl:"log_level,optional"`
}

// DefaultProfile returns the profile used when no config file exists
func DefaultProfile() Profile {
	return Profile{
		Name:           "default",
		MultiwayTrials: 3000,
		StrengthTrials: 300,
		Opponents:      2,
		LogLevel:       "warn",
	}
}

// Load reads configuration from an HCL file. A missing file yields a
// config holding only the default profile.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &Config{Profiles: []Profile{DefaultProfile()}}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultProfile()
	for i := range cfg.Profiles {
		if cfg.Profiles[i].MultiwayTrials == 0 {
			cfg.Profiles[i].MultiwayTrials = defaults.MultiwayTrials
		}
		if cfg.Profiles[i].StrengthTrials == 0 {
			cfg.Profiles[i].StrengthTrials = defaults.StrengthTrials
		}
		if cfg.Profiles[i].Opponents == 0 {
			cfg.Profiles[i].Opponents = defaults.Opponents
		}
		if cfg.Profiles[i].LogLevel == "" {
			cfg.Profiles[i].LogLevel = defaults.LogLevel
		}
	}

	if len(cfg.Profiles) == 0 {
		cfg.Profiles = []Profile{defaults}
	}

	return &cfg, nil
}

// Profile returns the named profile, or the default profile for ""
func (c *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = "default"
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	if name == "default" {
		return DefaultProfile(), nil
	}
	return Profile{}, fmt.Errorf("config: no profile named %q", name)
}

// Validate checks every profile for usable values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	for _, p := range c.Profiles {
		if p.MultiwayTrials < 1 {
			return fmt.Errorf("profile %s: multiway_trials must be positive", p.Name)
		}
		if p.StrengthTrials < 1 {
			return fmt.Errorf("profile %s: strength_trials must be positive", p.Name)
		}
		if p.Opponents < 1 || p.Opponents > 8 {
			return fmt.Errorf("profile %s: opponents must be between 1 and 8", p.Name)
		}
		if !validLevels[p.LogLevel] {
			return fmt.Errorf("profile %s: invalid log level %q", p.Name, p.LogLevel)
		}
	}
	return nil
}
