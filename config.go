package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Built-in defaults, written to disk when no config file exists yet.
const (
	defaultMinWidth  = 800
	defaultMinHeight = 600
)

// SortAlgorithm selects the field the image list is ordered by.
type SortAlgorithm string

const (
	SortFileName     SortAlgorithm = "FileName"
	SortCreatedTime  SortAlgorithm = "CreatedTime"
	SortModifiedTime SortAlgorithm = "ModifiedTime"
)

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (s *SortAlgorithm) UnmarshalText(text []byte) error {
	switch v := SortAlgorithm(text); v {
	case SortFileName, SortCreatedTime, SortModifiedTime:
		*s = v
		return nil
	default:
		return fmt.Errorf("unknown sort algorithm %q", string(text))
	}
}

// ConfigError reports an unusable persisted configuration. It is fatal at
// startup; the viewer never falls back to defaults silently.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type Config struct {
	MinWindowSize [2]int        `toml:"min_window_size"`
	SortAlgorithm SortAlgorithm `toml:"sort_algorithm"`
}

func defaultConfig() Config {
	return Config{
		MinWindowSize: [2]int{defaultMinWidth, defaultMinHeight},
		SortAlgorithm: SortFileName,
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "fiv.toml"
	}
	return filepath.Join(homeDir, ".fiv.toml")
}

func loadConfig() (Config, error) {
	return loadConfigFromPath(getConfigPath())
}

// loadConfigFromPath reads and validates the configuration. A missing file
// is the one forgiving case: defaults are written to disk and returned.
func loadConfigFromPath(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaultConfig()
			if err := saveConfigToPath(cfg, configPath); err != nil {
				log.Warnf("failed to write default config to %s: %v", configPath, err)
			} else {
				log.Infof("wrote default config to %s", configPath)
			}
			return cfg, nil
		}
		return Config{}, &ConfigError{Path: configPath, Err: err}
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, &ConfigError{Path: configPath, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, &ConfigError{
			Path: configPath,
			Err:  fmt.Errorf("unrecognized key %q", undecoded[0].String()),
		}
	}
	if cfg.MinWindowSize[0] <= 0 || cfg.MinWindowSize[1] <= 0 {
		return Config{}, &ConfigError{
			Path: configPath,
			Err:  fmt.Errorf("min_window_size must be a pair of positive integers, got %v", cfg.MinWindowSize),
		}
	}
	if cfg.SortAlgorithm == "" {
		return Config{}, &ConfigError{Path: configPath, Err: fmt.Errorf("sort_algorithm is required")}
	}
	return cfg, nil
}

func saveConfigToPath(cfg Config, configPath string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}
