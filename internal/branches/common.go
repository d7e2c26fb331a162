package branches

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpetrenko/branchscope/internal/repos/dependencies"
	"github.com/mpetrenko/branchscope/internal/repos/shared"
	"github.com/mpetrenko/branchscope/internal/utils"
	pathutils "github.com/mpetrenko/branchscope/internal/utils/path"
)

const (
	formatFlagNameConstant             = "format"
	formatFlagDescriptionConstant      = "Output format"
	configurationSourceMessageConstant = "configuration file applied"
	configurationFileLogFieldConstant  = "configuration_file"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// collaborators bundles the resolved dependencies used while running a branch command.
type collaborators struct {
	inspector  shared.BranchInspector
	discoverer shared.RepositoryDiscoverer
	reporter   shared.Reporter
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// logConfigurationSource records which configuration file the command ran
// under when the application attached one to the command context.
func logConfigurationSource(command *cobra.Command, logger *zap.Logger) {
	configurationFilePath, pathAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	if !pathAvailable {
		return
	}
	logger.Debug(configurationSourceMessageConstant, zap.String(configurationFileLogFieldConstant, configurationFilePath))
}

func resolveCollaborators(
	command *cobra.Command,
	logger *zap.Logger,
	existingExecutor shared.GitExecutor,
	existingInspector shared.BranchInspector,
	existingDiscoverer shared.RepositoryDiscoverer,
) (collaborators, error) {
	gitExecutor, executorError := dependencies.ResolveGitExecutor(existingExecutor, logger)
	if executorError != nil {
		return collaborators{}, executorError
	}

	branchInspector, inspectorError := dependencies.ResolveBranchInspector(existingInspector, gitExecutor)
	if inspectorError != nil {
		return collaborators{}, inspectorError
	}

	return collaborators{
		inspector:  branchInspector,
		discoverer: dependencies.ResolveRepositoryDiscoverer(existingDiscoverer),
		reporter:   shared.NewWriterReporter(utils.NewFlushingWriter(command.OutOrStdout())),
	}, nil
}

// resolveRepositoryRoots merges positional arguments, --root flags, and configured
// roots, preferring the most explicit source. Nested duplicates are pruned so a
// repository is never inspected twice.
func resolveRepositoryRoots(arguments []string, flagRoots []string, configuredRoots []string) []string {
	candidates := arguments
	if len(candidates) == 0 {
		candidates = flagRoots
	}
	if len(candidates) == 0 {
		candidates = configuredRoots
	}

	sanitizer := pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{PruneNestedPaths: true})
	sanitizedRoots := sanitizer.Sanitize(candidates)
	if len(sanitizedRoots) == 0 {
		return []string{defaultRepositoryRootConstant}
	}
	return sanitizedRoots
}

func resolveOutputFormat(command *cobra.Command, configuredFormat string) (string, error) {
	outputFormat := configuredFormat
	if len(outputFormat) == 0 {
		outputFormat = OutputFormatText
	}
	if command.Flags().Changed(formatFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(formatFlagNameConstant)
		if flagError != nil {
			return "", flagError
		}
		outputFormat = flagValue
	}
	if validationError := validateOutputFormat(outputFormat); validationError != nil {
		return "", validationError
	}
	return outputFormat, nil
}
