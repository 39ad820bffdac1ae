package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tiwariParth/clean-todo-cli/internal/logger"
)

// Config holds the settings that can come from a config file. Command-line
// flags override them.
type Config struct {
	DataFile string `yaml:"data_file"`
	Prompt   string `yaml:"prompt"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}

// New returns the default configuration.
func New() Config {
	return Config{
		DataFile: "tasks.json",
		Prompt:   "todo> ",
		LogLevel: "error",
		NoColor:  false,
	}
}

// Load reads a YAML config file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted sensibly.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file cannot be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
