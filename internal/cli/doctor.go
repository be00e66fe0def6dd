package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/reaich/cabreaich-common/clients"
	"github.com/reaich/cabreaich-common/config"
	"github.com/reaich/cabreaich-common/errs"
	"github.com/spf13/cobra"
)

var doctorTimeout time.Duration

func init() {
	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 3*time.Second, "Per-service probe timeout")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the configured services",
	Long: `Loads the service configuration and probes each configured service URL.
A service counts as reachable if it answers any HTTP response at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			if verr, ok := errs.AsValidationError(err); ok {
				fmt.Println("Configuration is incomplete; fix it before probing services:")
				for field, reason := range verr.Details {
					fmt.Printf("  %-36s %s\n", field, reason)
				}
				return fmt.Errorf("configuration invalid")
			}
			return err
		}

		probes := []struct {
			name string
			url  string
		}{
			{"qlogic", settings.QLogicRouteURL},
			{"game-launch", settings.GameLaunchURL},
			{"integration-api", settings.IntegrationAPIURL},
			{"speech-api", settings.SpeechAPIURL},
		}

		failures := 0
		for _, p := range probes {
			client := clients.NewBaseClient(p.url, clients.WithTimeout(doctorTimeout))

			ctx, cancel := context.WithTimeout(cmd.Context(), doctorTimeout)
			err := client.Ping(ctx)
			cancel()

			if err != nil {
				failures++
				fmt.Printf("  %-18s FAIL  %s (%v)\n", p.name, p.url, err)
				continue
			}
			fmt.Printf("  %-18s OK    %s\n", p.name, p.url)
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d services unreachable", failures, len(probes))
		}
		fmt.Println("\nAll services reachable.")
		return nil
	},
}
