package cli

import (
	"encoding/json"
	"fmt"

	"github.com/reaich/cabreaich-common/config"
	"github.com/reaich/cabreaich-common/errs"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Print settings as JSON (secrets stay redacted)")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved service configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings with secrets redacted",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			if verr, ok := errs.AsValidationError(err); ok {
				fmt.Println("Configuration is incomplete:")
				for field, reason := range verr.Details {
					fmt.Printf("  %-36s %s\n", field, reason)
				}
				return fmt.Errorf("configuration invalid")
			}
			return err
		}

		if configShowJSON {
			// Secret fields marshal as "[redacted]".
			out, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, kv := range settings.Redacted() {
			fmt.Printf("%-36s %s\n", kv[0], kv[1])
		}
		return nil
	},
}
