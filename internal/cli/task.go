package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/EmanuelTinoco/backstage/internal/home"
	"github.com/spf13/cobra"
)

var taskJSON bool

var taskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Show the current state of a scaffolder task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTask,
}

func init() {
	taskCmd.Flags().BoolVar(&taskJSON, "json", false, "Print the raw task representation as JSON")
	rootCmd.AddCommand(taskCmd)
}

func runTask(cmd *cobra.Command, args []string) error {
	client, err := newScaffolderClient()
	if err != nil {
		return err
	}

	task, err := client.GetTask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up task %s: %w", args[0], err)
	}

	if taskJSON {
		out, err := json.MarshalIndent(task, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling task: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Task:     %s\n", task.ID)
	fmt.Fprintf(w, "Template: %s\n", task.Spec.TemplateName)
	fmt.Fprintf(w, "Status:   %s\n", task.Status)
	fmt.Fprintf(w, "Created:  %s (%s)\n",
		task.CreatedAt.Local().Format(time.RFC1123),
		home.RelativeTime(task.CreatedAt.Format(time.RFC3339)))
	if task.Status.Terminal() {
		fmt.Fprintln(w, "The task has finished; the backend will not update it further.")
	}
	return nil
}
