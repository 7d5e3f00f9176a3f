package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Data: DataConfig{
			Files:     []string{"data/cgu.csv"},
			Delimiter: ";",
		},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDataFiles(t *testing.T) {
	cfg := validConfig()
	cfg.Data.Files = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing data files")
	}
}

func TestValidate_MultiCharDelimiter(t *testing.T) {
	cfg := validConfig()
	cfg.Data.Delimiter = ";;"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for multi-character delimiter")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Data.Delimiter != ";" {
		t.Errorf("expected Delimiter=';', got %q", cfg.Data.Delimiter)
	}
	if cfg.Answer.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.Answer.Model)
	}
	if cfg.Answer.MaxTokens != 2048 {
		t.Errorf("expected MaxTokens=2048, got %d", cfg.Answer.MaxTokens)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Data:   DataConfig{Delimiter: ","},
		Answer: AnswerConfig{Model: "custom-model", MaxTokens: 512},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Data.Delimiter != "," {
		t.Errorf("expected Delimiter=',', got %q", cfg.Data.Delimiter)
	}
	if cfg.Answer.Model != "custom-model" {
		t.Errorf("expected Model='custom-model', got %q", cfg.Answer.Model)
	}
}

func TestDelimiterRune(t *testing.T) {
	cfg := validConfig()
	if cfg.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune = %q, want ';'", cfg.DelimiterRune())
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("AUDITDEX_TEST_KEY", "secret")

	got := string(expandEnvVars([]byte("api_key: ${AUDITDEX_TEST_KEY}\nmodel: ${AUDITDEX_TEST_MODEL:-gpt-4o-mini}")))
	want := "api_key: secret\nmodel: gpt-4o-mini"
	if got != want {
		t.Errorf("expandEnvVars = %q, want %q", got, want)
	}

	os.Unsetenv("AUDITDEX_TEST_KEY")
}
