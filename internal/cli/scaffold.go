package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EmanuelTinoco/backstage/internal/scaffolder"
	"github.com/EmanuelTinoco/backstage/internal/template"
	"github.com/EmanuelTinoco/backstage/internal/tui"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	scaffoldValues     []string
	scaffoldValuesFile string
	scaffoldWatch      bool
	scaffoldNoValidate bool
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <template.yaml>",
	Short: "Submit a scaffolder task from a template",
	Long: `Submit a new task to the backend scaffolder.

The template manifest names the template and declares the JSON Schema its
parameter values must satisfy. Values come from a YAML file (--values-file)
and/or individual --value flags, which take precedence. Values are validated
locally before submission unless --no-validate is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringArrayVarP(&scaffoldValues, "value", "v", nil, "Parameter key=value pairs (can be specified multiple times)")
	scaffoldCmd.Flags().StringVarP(&scaffoldValuesFile, "values-file", "f", "", "YAML file with parameter values")
	scaffoldCmd.Flags().BoolVarP(&scaffoldWatch, "watch", "w", false, "Follow the task's logs after submission")
	scaffoldCmd.Flags().BoolVar(&scaffoldNoValidate, "no-validate", false, "Skip local validation of values against the template's parameter schema")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	manifest, err := template.ParseFile(args[0])
	if err != nil {
		return err
	}

	values, err := collectValues(scaffoldValuesFile, scaffoldValues)
	if err != nil {
		return err
	}

	if !scaffoldNoValidate {
		result, err := template.ValidateValues(manifest, values)
		if err != nil {
			return fmt.Errorf("validating values for %s: %w", manifest.Name, err)
		}
		if !result.Valid {
			printIssues(cmd.ErrOrStderr(), result.Issues)
			return fmt.Errorf("values do not satisfy the parameter schema of %s", manifest.Name)
		}
	}

	client, err := newScaffolderClient()
	if err != nil {
		return err
	}

	taskID, err := client.Scaffold(cmd.Context(), manifest.Name, values)
	if err != nil {
		return fmt.Errorf("scaffolding from template %s: %w", manifest.Name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", taskID)

	if !scaffoldWatch {
		return nil
	}

	stream, err := client.StreamLogs(cmd.Context(), scaffolder.StreamLogsOptions{TaskID: taskID})
	if err != nil {
		return fmt.Errorf("opening log stream for task %s: %w", taskID, err)
	}
	return tui.Run(taskID, stream)
}

// collectValues merges the values file with --value overrides. Flag values
// are decoded as YAML scalars so numbers and booleans keep their types.
func collectValues(file string, pairs []string) (map[string]interface{}, error) {
	values := make(map[string]interface{})

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading values file %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing values file %s: %w", file, err)
		}
	}

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value format %q: expected key=value", pair)
		}

		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		values[key] = value
	}

	return values, nil
}

func printIssues(w io.Writer, issues []template.ValidationIssue) {
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}
