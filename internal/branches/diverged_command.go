package branches

import (
	"github.com/spf13/cobra"

	"github.com/mpetrenko/branchscope/internal/repos/shared"
	"github.com/mpetrenko/branchscope/internal/utils/flags"
)

const (
	divergedCommandUseConstant              = "branch-diverged"
	divergedCommandShortDescriptionConstant = "Report local branches whose tip differs from their upstream"
	divergedCommandLongDescriptionConstant  = "branch-diverged discovers repositories under the provided roots and reports every local branch pointing at a different commit than its configured upstream. The currently checked-out branch and branches without an upstream are skipped."
)

// DivergedCommandBuilder assembles the branch-diverged command.
type DivergedCommandBuilder struct {
	LoggerProvider        LoggerProvider
	GitExecutor           shared.GitExecutor
	BranchInspector       shared.BranchInspector
	RepositoryDiscoverer  shared.RepositoryDiscoverer
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the branch-diverged command.
func (builder *DivergedCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   divergedCommandUseConstant,
		Short: divergedCommandShortDescriptionConstant,
		Long:  divergedCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(
		formatFlagNameConstant,
		OutputFormatText,
		flags.FormatChoiceUsage(OutputFormatText, []string{OutputFormatText, OutputFormatYAML}, formatFlagDescriptionConstant),
	)
	flags.BindRootFlags(command, flags.RootFlagValues{}, flags.RootFlagDefinition{Enabled: true})

	return command, nil
}

func (builder *DivergedCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	outputFormat, formatError := resolveOutputFormat(command, configuration.OutputFormat)
	if formatError != nil {
		return formatError
	}

	flagRoots, rootsFlagError := command.Flags().GetStringSlice(flags.DefaultRootFlagName)
	if rootsFlagError != nil {
		return rootsFlagError
	}
	repositoryRoots := resolveRepositoryRoots(arguments, flagRoots, configuration.RepositoryRoots)

	logger := resolveLogger(builder.LoggerProvider)
	logConfigurationSource(command, logger)
	resolved, resolutionError := resolveCollaborators(command, logger, builder.GitExecutor, builder.BranchInspector, builder.RepositoryDiscoverer)
	if resolutionError != nil {
		return resolutionError
	}

	repositories, discoveryError := resolved.discoverer.DiscoverRepositories(repositoryRoots)
	if discoveryError != nil {
		return discoveryError
	}

	reports := make([]repositoryReport, 0, len(repositories))
	for _, repositoryPath := range repositories {
		knownBranches, listError := resolved.inspector.ListBranches(command.Context(), repositoryPath)
		if listError != nil {
			return listError
		}

		divergingBranches, divergenceError := resolved.inspector.BranchesDivergingFromUpstream(command.Context(), repositoryPath, knownBranches)
		if divergenceError != nil {
			return divergenceError
		}

		switch outputFormat {
		case OutputFormatYAML:
			reports = append(reports, buildRepositoryReport(repositoryPath, divergingBranches))
		default:
			renderDivergedLines(resolved.reporter, repositoryPath, divergingBranches)
		}
	}

	if outputFormat == OutputFormatYAML {
		return renderYAMLReport(command.OutOrStdout(), reports)
	}
	return nil
}

func (builder *DivergedCommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}
