package ratelimit

import (
	"fmt"
	"os"
	"time"

	"qr-loyalty-service/internal/domain/scan"

	"gopkg.in/yaml.v3"
)

// Config is the attempt budget applied to one composite key.
type Config struct {
	MaxAttempts int
	Window      time.Duration
	Block       time.Duration
}

// Promo codes attract brute-force guessing, so they get a tighter budget
// and a longer block than card scans.
func builtinOverrides() map[scan.Type]Config {
	return map[scan.Type]Config{
		scan.TypePromoCode: {
			MaxAttempts: 5,
			Window:      time.Minute,
			Block:       15 * time.Minute,
		},
	}
}

type overridesFile struct {
	Types map[string]overrideEntry `yaml:"types"`
}

type overrideEntry struct {
	MaxAttempts   int `yaml:"max_attempts"`
	WindowSeconds int `yaml:"window_seconds"`
	BlockSeconds  int `yaml:"block_seconds"`
}

// LoadOverrides reads per-scan-type budget overrides from a YAML file.
// An empty path returns the compiled-in overrides.
func LoadOverrides(path string, defaults Config) (map[scan.Type]Config, error) {
	overrides := builtinOverrides()
	if path == "" {
		return overrides, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate limit overrides: %w", err)
	}

	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rate limit overrides: %w", err)
	}

	for name, entry := range file.Types {
		scanType := scan.Type(name)
		if !scanType.Valid() {
			return nil, fmt.Errorf("rate limit override for unknown scan type: %q", name)
		}
		cfg := defaults
		if existing, ok := overrides[scanType]; ok {
			cfg = existing
		}
		if entry.MaxAttempts > 0 {
			cfg.MaxAttempts = entry.MaxAttempts
		}
		if entry.WindowSeconds > 0 {
			cfg.Window = time.Duration(entry.WindowSeconds) * time.Second
		}
		if entry.BlockSeconds > 0 {
			cfg.Block = time.Duration(entry.BlockSeconds) * time.Second
		}
		overrides[scanType] = cfg
	}

	return overrides, nil
}
