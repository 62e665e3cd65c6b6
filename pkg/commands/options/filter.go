package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/task"
)

// FilterOptions captures search and filter flags for list-producing
// commands.
type FilterOptions struct {
	Search     string
	Statuses   []string
	Priorities []string
	OnString   string
}

// AddFilterArgs wires search/filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only tasks whose title or description contains the term (case-insensitive).")
	cmd.Flags().StringSliceVar(&o.Statuses, "status", nil,
		"Only tasks with one of these statuses: upcoming, due-soon, overdue, completed.")
	cmd.Flags().StringSliceVar(&o.Priorities, "priority", nil,
		"Only tasks with one of these priorities: low, medium, high.")
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Only tasks scheduled on the date, example: --on="2024-03-01".`)
}

// GetFilters converts the flag values into a query filter set.
func (o *FilterOptions) GetFilters() (query.Filters, error) {
	f := query.Filters{}
	for _, raw := range o.Statuses {
		s, err := task.ParseStatus(raw)
		if err != nil {
			return query.Filters{}, err
		}
		f.Status = append(f.Status, s)
	}
	for _, raw := range o.Priorities {
		p, err := task.ParsePriority(raw)
		if err != nil {
			return query.Filters{}, err
		}
		f.Priority = append(f.Priority, p)
	}
	return f, nil
}

// GetOn parses the --on flag into a day, nil when unset.
func (o *FilterOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	d, err := task.ParseDate(o.OnString)
	if err != nil {
		return nil, err
	}
	t := d.Time
	return &t, nil
}
