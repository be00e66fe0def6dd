package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/reaich/cabreaich-common/errs"
)

const (
	// EnvPrefix is the namespaced form of the shared environment variables.
	// Each key is also readable under its bare legacy name (e.g. both
	// CABREAICH_QLOGIC_ROUTE_URL and QLOGIC_ROUTE_URL).
	EnvPrefix = "CABREAICH"

	// DefaultDotenvPath is consulted when DOTENV_PATH is not set. Containers
	// run with /app as the working directory.
	DefaultDotenvPath = "/app/.env"

	defaultOpenAIModel      = "gpt-4-turbo"
	defaultPartitionKeyPath = "/session_id"
	defaultLogLevel         = "info"
)

// Settings holds the shared configuration used by multiple cabreaich
// services. Load validates every field and fails fast.
type Settings struct {
	// Service URLs.
	QLogicRouteURL    string `json:"qlogic_route_url"`
	GameLaunchURL     string `json:"game_launch_url"`
	IntegrationAPIURL string `json:"integration_api_url"`
	SpeechAPIURL      string `json:"speech_api_url"`

	// OpenAI.
	OpenAIKey     Secret `json:"openai_key"`
	OpenAIProject string `json:"openai_project,omitempty"`
	OpenAIOrg     string `json:"openai_org,omitempty"`
	OpenAIModel   string `json:"openai_model"`

	// Azure Cosmos DB.
	AzureCosmosEndpoint         string `json:"azure_cosmos_endpoint"`
	AzureCosmosKey              Secret `json:"azure_cosmos_key"`
	AzureCosmosDB               string `json:"azure_cosmos_db"`
	AzureCosmosContainer        string `json:"azure_cosmos_container"`
	AzureCosmosPartitionKeyPath string `json:"azure_cosmos_partition_key_path"`

	// Azure Speech.
	AzureSpeechKey    Secret `json:"azure_speech_key"`
	AzureSpeechRegion string `json:"azure_speech_region"`

	// Logging.
	LogLevel string `json:"log_level"`
}

// keys maps setting keys to the environment variables that feed them. The
// second alias is the bare legacy variable name used across the services.
var keys = map[string][]string{
	"qlogic_route_url":                {"CABREAICH_QLOGIC_ROUTE_URL", "QLOGIC_ROUTE_URL"},
	"game_launch_url":                 {"CABREAICH_GAME_LAUNCH_URL", "GAME_LAUNCH_URL"},
	"integration_api_url":             {"CABREAICH_INTEGRATION_API_URL", "INTEGRATION_API_URL"},
	"speech_api_url":                  {"CABREAICH_SPEECH_API_URL", "SPEECH_API_URL"},
	"openai_key":                      {"CABREAICH_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"openai_project":                  {"CABREAICH_OPENAI_PROJECT_ID", "OPENAI_PROJECT_ID"},
	"openai_org":                      {"CABREAICH_OPENAI_ORG_ID", "OPENAI_ORG_ID"},
	"openai_model":                    {"CABREAICH_OPENAI_MODEL", "OPENAI_MODEL"},
	"azure_cosmos_endpoint":           {"CABREAICH_AZURE_COSMOS_ENDPOINT", "AZURE_COSMOS_ENDPOINT"},
	"azure_cosmos_key":                {"CABREAICH_AZURE_COSMOS_KEY", "AZURE_COSMOS_KEY"},
	"azure_cosmos_db":                 {"CABREAICH_AZURE_COSMOS_DB", "AZURE_COSMOS_DB"},
	"azure_cosmos_container":          {"CABREAICH_AZURE_COSMOS_CONTAINER", "AZURE_COSMOS_CONTAINER"},
	"azure_cosmos_partition_key_path": {"CABREAICH_AZURE_COSMOS_PARTITION_KEY_PATH", "AZURE_COSMOS_PARTITION_KEY_PATH"},
	"azure_speech_key":                {"CABREAICH_AZURE_SPEECH_KEY", "AZURE_SPEECH_KEY"},
	"azure_speech_region":             {"CABREAICH_AZURE_SPEECH_REGION", "AZURE_SPEECH_REGION"},
	"log_level":                       {"CABREAICH_LOG_LEVEL", "LOG_LEVEL"},
}

// Load reads settings from the environment (and the dotenv file at
// DOTENV_PATH, if present) and validates them. All missing or invalid
// fields are reported in a single *errs.ValidationError.
func Load() (*Settings, error) {
	loadDotenv()

	v := viper.New()
	for key, aliases := range keys {
		vars := append([]string{key}, aliases...)
		if err := v.BindEnv(vars...); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}
	v.SetDefault("openai_model", defaultOpenAIModel)
	v.SetDefault("azure_cosmos_partition_key_path", defaultPartitionKeyPath)
	v.SetDefault("log_level", defaultLogLevel)

	s := &Settings{
		QLogicRouteURL:              v.GetString("qlogic_route_url"),
		GameLaunchURL:               v.GetString("game_launch_url"),
		IntegrationAPIURL:           v.GetString("integration_api_url"),
		SpeechAPIURL:                v.GetString("speech_api_url"),
		OpenAIKey:                   Secret(v.GetString("openai_key")),
		OpenAIProject:               v.GetString("openai_project"),
		OpenAIOrg:                   v.GetString("openai_org"),
		OpenAIModel:                 v.GetString("openai_model"),
		AzureCosmosEndpoint:         v.GetString("azure_cosmos_endpoint"),
		AzureCosmosKey:              Secret(v.GetString("azure_cosmos_key")),
		AzureCosmosDB:               v.GetString("azure_cosmos_db"),
		AzureCosmosContainer:        v.GetString("azure_cosmos_container"),
		AzureCosmosPartitionKeyPath: v.GetString("azure_cosmos_partition_key_path"),
		AzureSpeechKey:              Secret(v.GetString("azure_speech_key")),
		AzureSpeechRegion:           v.GetString("azure_speech_region"),
		LogLevel:                    strings.ToLower(v.GetString("log_level")),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadDotenv loads the dotenv file named by DOTENV_PATH (default /app/.env)
// into the process environment without overriding variables already set.
// A missing file is not an error.
func loadDotenv() {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = DefaultDotenvPath
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = gotenv.Load(path)
}

// validate collects every problem into one ValidationError so operators see
// the full list instead of fixing settings one restart at a time.
func (s *Settings) validate() error {
	details := map[string]string{}

	requireURL(details, "qlogic_route_url", s.QLogicRouteURL)
	requireURL(details, "game_launch_url", s.GameLaunchURL)
	requireURL(details, "integration_api_url", s.IntegrationAPIURL)
	requireURL(details, "speech_api_url", s.SpeechAPIURL)
	requireURL(details, "azure_cosmos_endpoint", s.AzureCosmosEndpoint)

	if !s.OpenAIKey.IsSet() {
		details["openai_key"] = "required"
	}
	if !s.AzureCosmosKey.IsSet() {
		details["azure_cosmos_key"] = "required"
	}
	if s.AzureCosmosDB == "" {
		details["azure_cosmos_db"] = "required"
	}
	if s.AzureCosmosContainer == "" {
		details["azure_cosmos_container"] = "required"
	}
	if !strings.HasPrefix(s.AzureCosmosPartitionKeyPath, "/") {
		details["azure_cosmos_partition_key_path"] = fmt.Sprintf("%q must start with '/'", s.AzureCosmosPartitionKeyPath)
	}
	if !s.AzureSpeechKey.IsSet() {
		details["azure_speech_key"] = "required"
	}
	if s.AzureSpeechRegion == "" {
		details["azure_speech_region"] = "required"
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		details["log_level"] = fmt.Sprintf("%q is not one of debug, info, warn, error", s.LogLevel)
	}

	if len(details) > 0 {
		fields := make([]string, 0, len(details))
		for k := range details {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		return errs.NewValidationError(
			fmt.Sprintf("invalid shared settings: %s", strings.Join(fields, ", ")),
			details,
		)
	}
	return nil
}

// requireURL records a detail when the value is empty or not an absolute
// http(s) URL.
func requireURL(details map[string]string, key, value string) {
	if value == "" {
		details[key] = "required"
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		details[key] = fmt.Sprintf("%q is not an absolute http(s) URL", value)
	}
}

// Redacted returns the settings as sorted key/value pairs with secrets
// masked, for CLI display.
func (s *Settings) Redacted() [][2]string {
	pairs := [][2]string{
		{"qlogic_route_url", s.QLogicRouteURL},
		{"game_launch_url", s.GameLaunchURL},
		{"integration_api_url", s.IntegrationAPIURL},
		{"speech_api_url", s.SpeechAPIURL},
		{"openai_key", s.OpenAIKey.String()},
		{"openai_project", s.OpenAIProject},
		{"openai_org", s.OpenAIOrg},
		{"openai_model", s.OpenAIModel},
		{"azure_cosmos_endpoint", s.AzureCosmosEndpoint},
		{"azure_cosmos_key", s.AzureCosmosKey.String()},
		{"azure_cosmos_db", s.AzureCosmosDB},
		{"azure_cosmos_container", s.AzureCosmosContainer},
		{"azure_cosmos_partition_key_path", s.AzureCosmosPartitionKeyPath},
		{"azure_speech_key", s.AzureSpeechKey.String()},
		{"azure_speech_region", s.AzureSpeechRegion},
		{"log_level", s.LogLevel},
	}
	return pairs
}
