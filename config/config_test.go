package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/reaich/cabreaich-common/errs"
)

// setValidEnv populates every required setting via the legacy variable names.
func setValidEnv(t *testing.T) {
	t.Helper()
	vars := map[string]string{
		"QLOGIC_ROUTE_URL":      "http://qlogic:8080",
		"GAME_LAUNCH_URL":       "http://game:8080",
		"INTEGRATION_API_URL":   "http://integration:8080",
		"SPEECH_API_URL":        "http://speech:8080",
		"OPENAI_API_KEY":        "sk-test",
		"AZURE_COSMOS_ENDPOINT": "https://cosmos.example.net",
		"AZURE_COSMOS_KEY":      "cosmos-key",
		"AZURE_COSMOS_DB":       "cabreaich",
		"AZURE_COSMOS_CONTAINER": "sessions",
		"AZURE_SPEECH_KEY":      "speech-key",
		"AZURE_SPEECH_REGION":   "westeurope",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
	// Keep the default dotenv path from leaking host state into tests.
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "absent.env"))
}

func TestLoad_Defaults(t *testing.T) {
	setValidEnv(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.OpenAIModel != "gpt-4-turbo" {
		t.Errorf("OpenAIModel = %q, want %q", s.OpenAIModel, "gpt-4-turbo")
	}
	if s.AzureCosmosPartitionKeyPath != "/session_id" {
		t.Errorf("AzureCosmosPartitionKeyPath = %q, want %q", s.AzureCosmosPartitionKeyPath, "/session_id")
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "info")
	}
}

func TestLoad_PrefixedOverridesApply(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CABREAICH_OPENAI_MODEL", "gpt-4o")
	t.Setenv("CABREAICH_LOG_LEVEL", "DEBUG")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %q, want %q", s.OpenAIModel, "gpt-4o")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q (case-insensitive)", s.LogLevel, "debug")
	}
}

func TestLoad_MissingFields(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AZURE_SPEECH_REGION", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load = nil error, want validation failure")
	}
	valErr, ok := errs.AsValidationError(err)
	if !ok {
		t.Fatalf("error type = %T, want *errs.ValidationError", err)
	}
	if valErr.Details["openai_key"] != "required" {
		t.Errorf("Details[openai_key] = %q, want %q", valErr.Details["openai_key"], "required")
	}
	if valErr.Details["azure_speech_region"] != "required" {
		t.Errorf("Details[azure_speech_region] = %q, want %q", valErr.Details["azure_speech_region"], "required")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		detail string
	}{
		{"relative url", "QLOGIC_ROUTE_URL", "qlogic:8080", "qlogic_route_url"},
		{"non-http scheme", "SPEECH_API_URL", "ftp://speech", "speech_api_url"},
		{"partition key path", "AZURE_COSMOS_PARTITION_KEY_PATH", "session_id", "azure_cosmos_partition_key_path"},
		{"log level", "LOG_LEVEL", "verbose", "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tt.envVar, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load = nil error, want validation failure")
			}
			valErr, ok := errs.AsValidationError(err)
			if !ok {
				t.Fatalf("error type = %T, want *errs.ValidationError", err)
			}
			if _, found := valErr.Details[tt.detail]; !found {
				t.Errorf("Details missing %q: %v", tt.detail, valErr.Details)
			}
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	setValidEnv(t)

	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "OPENAI_MODEL=gpt-4o-mini\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o644); err != nil {
		t.Fatalf("writing dotenv: %v", err)
	}
	t.Setenv("DOTENV_PATH", dotenv)
	// gotenv must not override a variable already set in the environment.
	t.Setenv("AZURE_SPEECH_REGION", "westeurope")
	// Load writes dotenv values into the process env; keep them out of
	// later tests.
	t.Cleanup(func() { os.Unsetenv("OPENAI_MODEL") })

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want dotenv value %q", s.OpenAIModel, "gpt-4o-mini")
	}
	if s.AzureSpeechRegion != "westeurope" {
		t.Errorf("AzureSpeechRegion = %q, dotenv overrode process env", s.AzureSpeechRegion)
	}
}

func TestSecret_Redaction(t *testing.T) {
	s := Secret("sk-super-secret")
	if s.String() != "[redacted]" {
		t.Errorf("String() = %q, want redacted", s.String())
	}
	if s.Reveal() != "sk-super-secret" {
		t.Errorf("Reveal() = %q", s.Reveal())
	}

	out, err := json.Marshal(struct {
		Key Secret `json:"key"`
	}{Key: s})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `{"key":"[redacted]"}` {
		t.Errorf("Marshal = %s", out)
	}

	var empty Secret
	if empty.String() != "" {
		t.Errorf("empty String() = %q, want empty", empty.String())
	}
}

func TestSettings_Redacted(t *testing.T) {
	setValidEnv(t)
	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for _, pair := range s.Redacted() {
		switch pair[0] {
		case "openai_key", "azure_cosmos_key", "azure_speech_key":
			if pair[1] != "[redacted]" {
				t.Errorf("%s = %q, want redacted", pair[0], pair[1])
			}
		}
	}
}
