package options

// IDOptions holds the task id argument for commands that target one task.
type IDOptions struct {
	ID string
}
