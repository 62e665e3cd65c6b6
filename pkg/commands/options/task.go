// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/task"
)

// TaskOptions captures the task field flags shared by add and edit.
type TaskOptions struct {
	Description    string
	DateString     string
	TimeString     string
	DueString      string
	PriorityString string
}

// AddTaskArgs wires task field flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Free-text description.")
	cmd.Flags().StringVar(&o.DateString, "on", "",
		`Date the task is scheduled for, example: --on="2024-03-01". Defaults to today.`)
	cmd.Flags().StringVar(&o.TimeString, "at", "",
		`Clock time for the task, example: --at="09:00". Omit for an all-day task.`)
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Due date, example: --due="2024-03-05".`)
	cmd.Flags().StringVarP(&o.PriorityString, "priority", "P", "",
		"Priority: low, medium, or high. Defaults to medium.")
}

// GetDate parses the --on flag. Empty means unset.
func (o *TaskOptions) GetDate() (task.Date, error) {
	return task.ParseDate(o.DateString)
}

// GetTime parses the --at flag. Empty means no clock time.
func (o *TaskOptions) GetTime() (*task.Clock, error) {
	if o.TimeString == "" {
		return nil, nil
	}
	c, err := task.ParseClock(o.TimeString)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetDue parses the --due flag. Empty means no due date.
func (o *TaskOptions) GetDue() (*task.Date, error) {
	if o.DueString == "" {
		return nil, nil
	}
	d, err := task.ParseDate(o.DueString)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetPriority parses the --priority flag.
func (o *TaskOptions) GetPriority() (task.Priority, error) {
	return task.ParsePriority(o.PriorityString)
}
