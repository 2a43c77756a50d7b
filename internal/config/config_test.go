package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Server.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Server.Host)
	}
	if cfg.Provider.MaxTokens != 8192 {
		t.Errorf("MaxTokens = %d, want 8192", cfg.Provider.MaxTokens)
	}
	if cfg.Provider.Temperature != 1.0 {
		t.Errorf("Temperature = %v, want 1.0", cfg.Provider.Temperature)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Server.Host)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  host: remote.example.com\nprovider:\n  max_tokens: 4096\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "remote.example.com" {
		t.Errorf("Host = %q, want remote.example.com", cfg.Server.Host)
	}
	if cfg.Provider.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", cfg.Provider.MaxTokens)
	}
	// Untouched fields keep their default.
	if cfg.Provider.Temperature != 1.0 {
		t.Errorf("Temperature = %v, want default 1.0", cfg.Provider.Temperature)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [this is not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestApplyEnvOverridesServerHost(t *testing.T) {
	t.Setenv("BASHAGENT_SERVER", "envhost:1234")
	cfg := Defaults()
	cfg.ApplyEnv()
	if cfg.Server.Host != "envhost:1234" {
		t.Errorf("Host = %q, want envhost:1234", cfg.Server.Host)
	}
}

func TestAPIKeyResolvesPerProvider(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	key, err := APIKey("anthropic")
	if err != nil {
		t.Fatalf("APIKey: %v", err)
	}
	if key != "sk-ant-test" {
		t.Errorf("key = %q, want sk-ant-test", key)
	}
}

func TestAPIKeyMissingErrors(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("OPENAI_API_KEY")
	if _, err := APIKey("openai"); err == nil {
		t.Fatal("expected error for unset OPENAI_API_KEY")
	}
}

func TestAPIKeyUnknownProviderErrors(t *testing.T) {
	if _, err := APIKey("mistral"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
