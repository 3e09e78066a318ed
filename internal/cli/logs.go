package cli

import (
	"fmt"

	"github.com/EmanuelTinoco/backstage/internal/scaffolder"
	"github.com/EmanuelTinoco/backstage/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logsAfter  int
	logsFollow bool
)

var logsCmd = &cobra.Command{
	Use:   "logs <task-id>",
	Short: "Stream a task's log events",
	Long: `Stream log events for a task until its completion event arrives.

With --after N the stream resumes with the first event whose id is greater
than N. With --follow the logs render in an interactive view instead of
plain lines on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVar(&logsAfter, "after", -1, "Resume after the given event id (exclusive)")
	logsCmd.Flags().BoolVar(&logsFollow, "follow", false, "Render logs in an interactive view")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	taskID := args[0]

	client, err := newScaffolderClient()
	if err != nil {
		return err
	}

	opts := scaffolder.StreamLogsOptions{TaskID: taskID}
	if logsAfter >= 0 {
		opts.After = &logsAfter
	}

	stream, err := client.StreamLogs(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("opening log stream for task %s: %w", taskID, err)
	}

	if logsFollow {
		return tui.Run(taskID, stream)
	}

	defer stream.Close()
	w := cmd.OutOrStdout()
	for event := range stream.Events() {
		switch event.Type {
		case scaffolder.EventTypeCompletion:
			status := string(event.Body.Status)
			if status == "" {
				status = "finished"
			}
			fmt.Fprintf(w, "task %s: %s\n", taskID, status)
		default:
			if event.Body.StepID != "" {
				fmt.Fprintf(w, "[%s] %s\n", event.Body.StepID, event.Body.Message)
			} else {
				fmt.Fprintln(w, event.Body.Message)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("log stream for task %s: %w", taskID, err)
	}
	return nil
}
