package exec

// CommandConfig configures a command for execution
type CommandConfig struct {
	Args []string
	Env  []string
	Name string
}

// ProcessResult is the fully captured outcome of a single command invocation. Both output streams are read to
// completion before a ProcessResult is handed to a caller; there is no streaming delivery.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
