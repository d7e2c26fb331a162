package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	commandStartedLogMessageConstant    = "external command started"
	commandCompletedLogMessageConstant  = "external command completed"
	commandFailedLogMessageConstant     = "external command failed"
	logFieldCommandConstant             = "command"
	logFieldWorkingDirectoryConstant    = "working_directory"
	logFieldExitCodeConstant            = "exit_code"
	logFieldRecognizedFailureConstant   = "recognized_failure"
	logFieldExecutionFailureConstant    = "failure"
	recognizedFailureLogMessageConstant = "external command reported recognized failure"
)

// CommandRunner abstracts process execution for testability.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ShellExecutor runs external commands with structured logging and typed failures.
type ShellExecutor struct {
	logger    *zap.Logger
	runner    CommandRunner
	observers []CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor from the provided logger and runner.
// Optional observers receive lifecycle notifications for every executed command.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	registeredObservers := make([]CommandEventObserver, 0, len(observers))
	for _, observer := range observers {
		if observer == nil {
			continue
		}
		registeredObservers = append(registeredObservers, observer)
	}

	return &ShellExecutor{logger: logger, runner: runner, observers: registeredObservers}, nil
}

// ExecuteGit runs git with the supplied details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(
		commandStartedLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
	for _, observer := range executor.observers {
		observer.CommandStarted(command)
	}

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Error(
			commandFailedLogMessageConstant,
			zap.String(logFieldCommandConstant, describeCommand(command)),
			zap.Error(runError),
		)
		for _, observer := range executor.observers {
			observer.CommandExecutionFailed(command, runError)
		}
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	if executionResult.ExitCode != 0 {
		failureKind := classifyGitFailure(executionResult.StandardError)
		if failureRecognized(command.Details, failureKind) {
			executionResult.GitFailure = failureKind
			for _, observer := range executor.observers {
				observer.CommandCompleted(command, executionResult)
			}
			executor.logger.Debug(
				recognizedFailureLogMessageConstant,
				zap.String(logFieldCommandConstant, describeCommand(command)),
				zap.String(logFieldRecognizedFailureConstant, string(failureKind)),
			)
			return executionResult, nil
		}

		for _, observer := range executor.observers {
			observer.CommandCompleted(command, executionResult)
		}
		executor.logger.Debug(
			commandCompletedLogMessageConstant,
			zap.String(logFieldCommandConstant, describeCommand(command)),
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	for _, observer := range executor.observers {
		observer.CommandCompleted(command, executionResult)
	}
	executor.logger.Debug(
		commandCompletedLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
	)
	return executionResult, nil
}
