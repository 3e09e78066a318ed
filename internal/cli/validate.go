package cli

import (
	"fmt"
	"os"

	"github.com/EmanuelTinoco/backstage/internal/template"
	"github.com/spf13/cobra"
)

var (
	validateValues     []string
	validateValuesFile string
)

var validateCmd = &cobra.Command{
	Use:   "validate <template.yaml>",
	Short: "Validate a template manifest and optional values offline",
	Long: `Check a template manifest against the manifest schema without talking
to the backend. When values are supplied they are also checked against the
template's parameter schema.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringArrayVarP(&validateValues, "value", "v", nil, "Parameter key=value pairs to check")
	validateCmd.Flags().StringVarP(&validateValuesFile, "values-file", "f", "", "YAML file with parameter values to check")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template manifest %s: %w", path, err)
	}

	result, err := template.ValidateManifest(data)
	if err != nil {
		return fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		printIssues(cmd.ErrOrStderr(), result.Issues)
		return fmt.Errorf("manifest %s is invalid", path)
	}

	manifest, err := template.Parse(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest %s is valid.\n", manifest.Name)

	if validateValuesFile == "" && len(validateValues) == 0 {
		return nil
	}

	values, err := collectValues(validateValuesFile, validateValues)
	if err != nil {
		return err
	}

	valuesResult, err := template.ValidateValues(manifest, values)
	if err != nil {
		return fmt.Errorf("validating values for %s: %w", manifest.Name, err)
	}
	if !valuesResult.Valid {
		printIssues(cmd.ErrOrStderr(), valuesResult.Issues)
		return fmt.Errorf("values do not satisfy the parameter schema of %s", manifest.Name)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Values satisfy the parameter schema.")
	return nil
}
