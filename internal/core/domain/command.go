// Package domain defines the core domain models for redisgate.
package domain

// BatchMode selects how a batch of commands is submitted to the store.
type BatchMode int

const (
	// BatchPipeline sends all commands in one round trip with no atomicity
	// guarantee across commands.
	BatchPipeline BatchMode = iota

	// BatchTransaction wraps the batch in the store's MULTI/EXEC primitive
	// so the whole batch executes atomically.
	BatchTransaction
)

// String returns the mode name used in logs and error context.
func (m BatchMode) String() string {
	switch m {
	case BatchPipeline:
		return "pipeline"
	case BatchTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Command is a single store command: a name plus its positional arguments.
// Argument order is significant and preserved end-to-end.
type Command struct {
	Name string
	Args []string
}

// Validate reports whether the command carries a name.
func (c Command) Validate() error {
	if c.Name == "" {
		return ErrEmptyCommand
	}
	return nil
}

// Argv returns the command as a flat argument vector, name first, in the
// shape the store client consumes.
func (c Command) Argv() []any {
	argv := make([]any, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	for _, a := range c.Args {
		argv = append(argv, a)
	}
	return argv
}

// Batch is an ordered sequence of commands executed as one logical
// round trip. An empty batch is valid and yields an empty result set.
type Batch struct {
	Commands []Command
	Mode     BatchMode
}

// CommandResult is the outcome of one command within a batch. Exactly one
// of Err and Value is meaningful; result order matches submission order.
type CommandResult struct {
	Err   string
	Value Value
}

// Failed reports whether this result carries a per-command error.
func (r CommandResult) Failed() bool {
	return r.Err != ""
}
