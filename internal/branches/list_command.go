package branches

import (
	"github.com/spf13/cobra"

	"github.com/mpetrenko/branchscope/internal/gitrepo"
	"github.com/mpetrenko/branchscope/internal/repos/shared"
	"github.com/mpetrenko/branchscope/internal/utils/flags"
)

const (
	listCommandUseConstant              = "branch-list"
	listCommandShortDescriptionConstant = "List local and remote-tracking branches with their tip commits"
	listCommandLongDescriptionConstant  = "branch-list discovers repositories under the provided roots and lists every branch together with its tip commit, author, committer, and configured upstream."
	prefixFlagNameConstant              = "prefix"
	prefixFlagDescriptionConstant       = "Ref namespace prefixes to enumerate (repeatable)"
	includeRemotesFlagNameConstant      = "include-remotes"
	includeRemotesFlagUsageConstant     = "Include remote-tracking branches in the listing"
)

// ListCommandBuilder assembles the branch-list command.
type ListCommandBuilder struct {
	LoggerProvider        LoggerProvider
	GitExecutor           shared.GitExecutor
	BranchInspector       shared.BranchInspector
	RepositoryDiscoverer  shared.RepositoryDiscoverer
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the branch-list command.
func (builder *ListCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   listCommandUseConstant,
		Short: listCommandShortDescriptionConstant,
		Long:  listCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(
		formatFlagNameConstant,
		OutputFormatText,
		flags.FormatChoiceUsage(OutputFormatText, []string{OutputFormatText, OutputFormatYAML}, formatFlagDescriptionConstant),
	)
	command.Flags().StringSlice(prefixFlagNameConstant, nil, prefixFlagDescriptionConstant)

	var includeRemotes bool
	flags.AddToggleFlag(command.Flags(), &includeRemotes, includeRemotesFlagNameConstant, "", true, includeRemotesFlagUsageConstant)

	flags.BindRootFlags(command, flags.RootFlagValues{}, flags.RootFlagDefinition{Enabled: true})

	return command, nil
}

func (builder *ListCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	outputFormat, formatError := resolveOutputFormat(command, configuration.OutputFormat)
	if formatError != nil {
		return formatError
	}

	refPrefixes := configuration.RefPrefixes
	if command.Flags().Changed(prefixFlagNameConstant) {
		flagPrefixes, prefixFlagError := command.Flags().GetStringSlice(prefixFlagNameConstant)
		if prefixFlagError != nil {
			return prefixFlagError
		}
		refPrefixes = flagPrefixes
	}

	includeRemotes := configuration.IncludeRemotes
	if command.Flags().Changed(includeRemotesFlagNameConstant) {
		includeRemotes = flagBoolValue(command, includeRemotesFlagNameConstant)
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
		branches, listError := resolved.inspector.ListBranches(command.Context(), repositoryPath, refPrefixes...)
		if listError != nil {
			return listError
		}
		if !includeRemotes {
			branches = filterLocalBranches(branches)
		}

		switch outputFormat {
		case OutputFormatYAML:
			reports = append(reports, buildRepositoryReport(repositoryPath, branches))
		default:
			renderBranchLines(resolved.reporter, repositoryPath, branches)
		}
	}

	if outputFormat == OutputFormatYAML {
		return renderYAMLReport(command.OutOrStdout(), reports)
	}
	return nil
}

func (builder *ListCommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func filterLocalBranches(branches []gitrepo.Branch) []gitrepo.Branch {
	localBranches := make([]gitrepo.Branch, 0, len(branches))
	for _, branch := range branches {
		if branch.Kind != gitrepo.BranchKindLocal {
			continue
		}
		localBranches = append(localBranches, branch)
	}
	return localBranches
}

func flagBoolValue(command *cobra.Command, flagName string) bool {
	flag := command.Flags().Lookup(flagName)
	if flag == nil {
		return false
	}
	return flag.Value.String() == "true"
}
