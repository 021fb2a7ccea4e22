package domain

// Command describes an external process invocation.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string
	// Env overrides entries of the parent environment. A PATH entry is prepended
	// to the inherited PATH rather than replacing it.
	Env map[string]string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Stdin is written to the process's standard input.
	Stdin []byte
}

// CommandResult captures the outcome of a finished process.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}
