// pkg/core/command.go
package core

// Command is a concrete argument vector ready for execution, tagged with the
// backend it came from. Argv is passed to the process-creation primitive as
// discrete tokens, never through a shell. A Command is consumed exactly once
// by the dispatcher and never mutated after construction.
type Command struct {
	Backend   string   // originating backend name
	Action    Action   // the action this command performs
	Argv      []string // argv[0] is the executable
	Privilege bool     // whether the backend requires elevation
}
