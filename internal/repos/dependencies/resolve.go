// Package dependencies provides default construction for collaborator interfaces shared by commands.
package dependencies

import (
	"go.uber.org/zap"

	"github.com/mpetrenko/branchscope/internal/execshell"
	"github.com/mpetrenko/branchscope/internal/gitrepo"
	"github.com/mpetrenko/branchscope/internal/repos/discovery"
	"github.com/mpetrenko/branchscope/internal/repos/shared"
	"github.com/mpetrenko/branchscope/internal/ui"
)

// ResolveRepositoryDiscoverer returns the provided discoverer or a filesystem-backed default.
func ResolveRepositoryDiscoverer(existing shared.RepositoryDiscoverer) shared.RepositoryDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemRepositoryDiscoverer()
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed
// default whose lifecycle events are echoed to the console through the logger.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	eventLogger := ui.NewConsoleCommandEventLogger(logger)
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, eventLogger)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveBranchInspector returns the provided inspector or constructs one from the executor.
func ResolveBranchInspector(existing shared.BranchInspector, executor shared.GitExecutor) (shared.BranchInspector, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewBranchInspector(executor)
}
