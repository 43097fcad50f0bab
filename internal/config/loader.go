package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// searchPaths are tried in order when CONFIG_PATH is unset.
var searchPaths = []string{"./config.yaml", "./configs/moodverse.yaml"}

// Load reads configuration with priority ENV > YAML > env-default tags and
// validates it. An explicit CONFIG_PATH must exist; otherwise the first
// existing search path is used, or ENV and defaults alone.
func Load() (*Config, error) {
	var cfg Config

	path, err := resolvePath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath() (string, error) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
		return p, nil
	}
	for _, p := range searchPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
	}
	return "", nil
}
