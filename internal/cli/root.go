package cli

import (
	"os"

	"github.com/reaich/cabreaich-common/config"
	"github.com/reaich/cabreaich-common/internal/branding"
	"github.com/reaich/cabreaich-common/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is the developer tooling for the shared service library:
it validates requirements manifests, inspects the resolved configuration,
and checks connectivity to the platform services.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// version --check does its own network lookup; keep it banner-free.
		if cmd.Name() == "version" {
			return
		}

		// Non-blocking banner from the cached release check.
		ch := updater.New(buildVersion)
		ch.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
