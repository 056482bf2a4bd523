// Package gdbmiconf loads the configuration for the gdbmi-repl reference
// driver: which debugger binary to launch, how to launch it, and how
// verbosely to log the session.
package gdbmiconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the settings the reference CLI needs to start a Session.
type Config struct {
	DebuggerPath string   `yaml:"debugger_path"`
	DebuggerArgs []string `yaml:"debugger_args"`
	Dialect      string   `yaml:"dialect"` // "gdb" or "lldb"
	LogLevel     string   `yaml:"log_level"`
	LogFile      string   `yaml:"log_file"`
	InferiorTTY  bool     `yaml:"inferior_tty"`
}

// DefaultConfig returns the configuration used when no file and no
// overriding environment variables are present.
func DefaultConfig() Config {
	return Config{
		DebuggerPath: "gdb",
		DebuggerArgs: []string{"--interpreter=mi2", "--quiet"},
		Dialect:      "gdb",
		LogLevel:     "info",
		LogFile:      "",
		InferiorTTY:  true,
	}
}

// ConfigDir returns the directory gdbmi-repl's config file lives in.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("gdbmiconf: get home dir: %w", err)
	}
	return filepath.Join(home, ".gdbmi"), nil
}

// ConfigPath returns the full path to gdbmi-repl's config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML config file, if present, then overlays any
// GDBMI_-prefixed environment variables on top via viper, so a CI
// environment can override a checked-in file without editing it.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, readErr := os.ReadFile(path); readErr == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("gdbmiconf: parse config: %w", err)
		}
	} else if !os.IsNotExist(readErr) {
		return cfg, fmt.Errorf("gdbmiconf: read config: %w", readErr)
	}

	v := viper.New()
	v.SetEnvPrefix("GDBMI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{"debugger_path", "dialect", "log_level", "log_file"} {
		if v.IsSet(key) {
			setField(&cfg, key, v.GetString(key))
		}
	}
	if v.IsSet("inferior_tty") {
		cfg.InferiorTTY = v.GetBool("inferior_tty")
	}
	return cfg, nil
}

func setField(cfg *Config, key, val string) {
	switch key {
	case "debugger_path":
		cfg.DebuggerPath = val
	case "dialect":
		cfg.Dialect = val
	case "log_level":
		cfg.LogLevel = val
	case "log_file":
		cfg.LogFile = val
	}
}

// Save writes cfg to the config file, creating its directory if needed.
func (c Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gdbmiconf: create config dir: %w", err)
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("gdbmiconf: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gdbmiconf: write config: %w", err)
	}
	return nil
}
