package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	gitCommandNameConstant                    = "git"
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFailedErrorTemplateConstant        = "%s exited with code %d%s"
	commandExecutionErrorTemplateConstant     = "%s could not be executed: %v"
	standardErrorSuffixTemplateConstant       = ": %s"
	commandArgumentsJoinSeparatorConstant     = " "
	notARepositoryStderrFragmentConstant      = "not a git repository"
)

// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandName identifies an external executable supported by the executor.
type CommandName string

// CommandGit names the git executable.
const CommandGit CommandName = CommandName(gitCommandNameConstant)

// GitFailureKind classifies git failures the caller opted to receive as results instead of errors.
type GitFailureKind string

// Recognized git failure kinds.
const (
	// GitFailureNone marks results produced by commands that did not hit a recognized failure.
	GitFailureNone GitFailureKind = ""
	// GitFailureNotARepository marks invocations rejected because the working directory is not a git repository.
	GitFailureNotARepository GitFailureKind = "not_a_repository"
)

// CommandDetails describes a single external command invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
	// RecognizedFailures lists git failure kinds the caller handles itself; a
	// matching non-zero exit is returned as a result with GitFailure set
	// rather than as an error.
	RecognizedFailures []GitFailureKind
}

// ShellCommand couples a command name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
	GitFailure     GitFailureKind
}

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including its exit code and captured stderr.
func (failedError CommandFailedError) Error() string {
	return fmt.Sprintf(
		commandFailedErrorTemplateConstant,
		describeCommand(failedError.Command),
		failedError.Result.ExitCode,
		formatStandardErrorSuffix(failedError.Result.StandardError),
	)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, describeCommand(executionError.Command), executionError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// classifyGitFailure maps captured stderr onto a recognized failure kind.
func classifyGitFailure(standardError string) GitFailureKind {
	loweredStandardError := strings.ToLower(standardError)
	if strings.Contains(loweredStandardError, notARepositoryStderrFragmentConstant) {
		return GitFailureNotARepository
	}
	return GitFailureNone
}

func failureRecognized(details CommandDetails, failureKind GitFailureKind) bool {
	if failureKind == GitFailureNone {
		return false
	}
	for _, recognizedKind := range details.RecognizedFailures {
		if recognizedKind == failureKind {
			return true
		}
	}
	return false
}

func describeCommand(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	commandParts = append(commandParts, command.Details.Arguments...)
	return strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
}

func formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return ""
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}
