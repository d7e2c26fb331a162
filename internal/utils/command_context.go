package utils

import "context"

type commandContextKey string

const resolvedConfigurationPathKey = commandContextKey("resolvedConfigurationPath")

// CommandContextAccessor reads and writes the values branchscope commands
// stash in their execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the resolved configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, resolvedConfigurationPathKey, configurationFilePath)
}

// ConfigurationFilePath reports the configuration file path stored in the
// context, if any command attached one.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	storedPath, pathPresent := executionContext.Value(resolvedConfigurationPathKey).(string)
	return storedPath, pathPresent && len(storedPath) > 0
}
