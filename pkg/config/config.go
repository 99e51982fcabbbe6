package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

// Config is the process-wide storefront configuration. The reward-engine
// constants are fixed at startup and never mutated by normal flow.
type Config struct {
	Addr              string `toml:"addr"`
	MilestoneInterval int    `toml:"milestone_interval"`
	RewardPercentage  int    `toml:"reward_percentage"`
	Quiet             bool   `toml:"quiet"`
}

// Default returns the built-in configuration: listen on :8080, reward every
// 2nd order with a 10% code.
func Default() Config {
	return Config{
		Addr:              ":8080",
		MilestoneInterval: 2,
		RewardPercentage:  10,
	}
}

// Load builds the configuration from defaults, an optional TOML file, then
// env overrides (STOREFRONT_ADDR, STOREFRONT_MILESTONE_INTERVAL,
// STOREFRONT_REWARD_PERCENTAGE, STOREFRONT_QUIET).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, errors.Wrap(err, "decode config file")
			}
		}
	}

	if v := os.Getenv("STOREFRONT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STOREFRONT_MILESTONE_INTERVAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse STOREFRONT_MILESTONE_INTERVAL")
		}
		cfg.MilestoneInterval = n
	}
	if v := os.Getenv("STOREFRONT_REWARD_PERCENTAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse STOREFRONT_REWARD_PERCENTAGE")
		}
		cfg.RewardPercentage = n
	}
	if v := os.Getenv("STOREFRONT_QUIET"); v != "" {
		cfg.Quiet = v == "1" || v == "true"
	}

	if cfg.MilestoneInterval < 1 {
		return Config{}, errors.New("milestone_interval must be at least 1")
	}
	if cfg.RewardPercentage < 0 || cfg.RewardPercentage > 100 {
		return Config{}, errors.New("reward_percentage must be between 0 and 100")
	}
	return cfg, nil
}
