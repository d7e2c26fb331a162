package execshell

// CommandEventObserver receives lifecycle notifications for executed commands.
// Observers are invoked synchronously and must not block.
type CommandEventObserver interface {
	// CommandStarted announces that command execution is about to begin.
	CommandStarted(command ShellCommand)
	// CommandCompleted delivers the execution result, including non-zero exits.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports failures that prevented execution entirely.
	CommandExecutionFailed(command ShellCommand, failure error)
}
