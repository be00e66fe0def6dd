package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reaich/cabreaich-common/requirements"
	"github.com/spf13/cobra"
)

var (
	reqsValidateJSON bool
	reqsListJSON     bool
)

func init() {
	reqsValidateCmd.Flags().BoolVar(&reqsValidateJSON, "json", false, "Print lint results as JSON")
	reqsListCmd.Flags().BoolVar(&reqsListJSON, "json", false, "Print requirements as JSON")
	reqsCmd.AddCommand(reqsValidateCmd)
	reqsCmd.AddCommand(reqsListCmd)
	rootCmd.AddCommand(reqsCmd)
}

var reqsCmd = &cobra.Command{
	Use:   "reqs",
	Short: "Work with requirements.txt manifests",
}

var reqsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse and lint a requirements manifest",
	Long: `Parses the manifest, then checks each requirement for duplicate
declarations, conflicting version ranges, unsatisfiable specifier sets, and
malformed versions. Exits non-zero if any issue is found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := requirements.ParseFile(args[0])
		if err != nil {
			return err
		}

		result := requirements.Lint(manifest)

		if reqsValidateJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling lint result: %w", err)
			}
			fmt.Println(string(out))
		} else {
			printLintResult(args[0], manifest, result)
		}

		if !result.Valid {
			return fmt.Errorf("%d issue(s) found in %s", len(result.Issues), args[0])
		}
		return nil
	},
}

var reqsListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the requirements in a manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := requirements.ParseFile(args[0])
		if err != nil {
			return err
		}

		if reqsListJSON {
			out, err := json.MarshalIndent(manifest.Requirements, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling requirements: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, req := range manifest.Requirements {
			specs := make([]string, 0, len(req.Specifiers))
			for _, s := range req.Specifiers {
				specs = append(specs, s.Op+s.Version)
			}
			if len(specs) == 0 {
				fmt.Printf("%-24s (any version)\n", req.Name)
				continue
			}
			fmt.Printf("%-24s %s\n", req.Name, strings.Join(specs, ", "))
		}
		return nil
	},
}

func printLintResult(path string, manifest *requirements.Manifest, result *requirements.LintResult) {
	if result.Valid {
		fmt.Printf("%s: %d requirement(s), no issues\n", path, len(manifest.Requirements))
		return
	}

	for _, issue := range result.Issues {
		fmt.Printf("%s:%d: [%s] %s: %s\n", path, issue.Line, issue.Rule, issue.Name, issue.Message)
	}
}
