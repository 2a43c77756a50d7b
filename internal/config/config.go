// Package config resolves agent configuration from, in increasing
// precedence: built-in defaults, a YAML file, environment variables, and
// CLI flags.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RaunakChhatwal/BashAgent/internal/agent"
)

// Config is the on-disk shape of ~/.config/bashagent/config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
}

type ProviderConfig struct {
	Anthropic   string  `yaml:"anthropic"`
	OpenAI      string  `yaml:"openai"`
	MaxTokens   int64   `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Defaults returns the built-in configuration baseline.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{Host: "localhost"},
		Provider: ProviderConfig{
			MaxTokens:   8192,
			Temperature: 1.0,
		},
	}
}

// Load reads path, if present, layering it over Defaults(). A missing file
// is not an error: the defaults stand alone. A malformed file is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, &agent.ConfigError{Message: err.Error()}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &agent.ConfigError{Message: "malformed config file: " + err.Error()}
	}
	return cfg, nil
}

// ApplyEnv layers BASHAGENT_SERVER over cfg.Server.Host, per spec's
// environment-variable precedence tier. API keys are not stored in cfg; they
// are read from the environment by APIKey.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("BASHAGENT_SERVER"); ok {
		c.Server.Host = v
	}
}

// APIKey resolves the credential for the chosen provider from the
// environment, matching spec 6's "Environment: ANTHROPIC_API_KEY or
// OPENAI_API_KEY required per chosen provider."
func APIKey(provider string) (string, error) {
	var envVar string
	switch provider {
	case "anthropic":
		envVar = "ANTHROPIC_API_KEY"
	case "openai":
		envVar = "OPENAI_API_KEY"
	default:
		return "", &agent.ConfigError{Message: "unknown provider " + provider}
	}
	key, ok := os.LookupEnv(envVar)
	if !ok || key == "" {
		return "", &agent.ConfigError{Message: envVar + " is required"}
	}
	return key, nil
}
