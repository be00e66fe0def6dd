// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with go:embed, so a fork only edits one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "cabcommon",
			DisplayName: "CabReAIch Common",
			Description: "Shared library tooling for the CabReAIch services",
			HomeDir:     ".cabreaich",
			EnvPrefix:   "CABREAICH",
			GoModule:    "github.com/reaich/cabreaich-common",
			GitHubRepo:  "reaich/cabreaich-common",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "cabcommon").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".cabreaich").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CABREAICH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g. EnvVar("LOG_LEVEL")
// yields "CABREAICH_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
