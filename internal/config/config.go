package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the analyzer settings
type Config struct {
	SourceExt   string `toml:"source_ext" yaml:"source_ext"`
	OutputExt   string `toml:"output_ext" yaml:"output_ext"`
	OutputDir   string `toml:"output_dir" yaml:"output_dir"`
	EmitTokens  bool   `toml:"emit_tokens" yaml:"emit_tokens"`
	TokenSuffix string `toml:"token_suffix" yaml:"token_suffix"`
	Workers     int    `toml:"workers" yaml:"workers"`
	Indent      string `toml:"indent" yaml:"indent"`
	Verify      bool   `toml:"verify" yaml:"verify"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
	Color       bool   `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		SourceExt:   ".jack",
		OutputExt:   ".xml",
		TokenSuffix: "T",
		Workers:     runtime.NumCPU(),
		Indent:      "  ",
		Verify:      true,
		LogLevel:    "info",
		LogFormat:   "text",
		Color:       true,
	}
}

// Load reads a TOML or YAML file on top of the defaults
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TokenSuffix == "" {
		c.TokenSuffix = "T"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) expandEnvVars() {
	c.OutputDir = os.ExpandEnv(c.OutputDir)
}

// Validate checks every setting
func (c *Config) Validate() error {
	for name, ext := range map[string]string{"source_ext": c.SourceExt, "output_ext": c.OutputExt} {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%s must start with '.', got %q", name, ext)
		}
	}
	if strings.EqualFold(c.SourceExt, c.OutputExt) {
		return fmt.Errorf("output_ext must differ from source_ext %q", c.SourceExt)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent may only hold spaces and tabs, got %q", c.Indent)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
