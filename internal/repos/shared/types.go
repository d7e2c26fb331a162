package shared

import (
	"context"

	"github.com/mpetrenko/branchscope/internal/execshell"
	"github.com/mpetrenko/branchscope/internal/gitrepo"
)

// GitExecutor exposes the subset of shell execution used by repository commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// BranchInspector exposes branch enumeration and divergence detection for a repository.
type BranchInspector interface {
	ListBranches(executionContext context.Context, repositoryPath string, refPrefixes ...string) ([]gitrepo.Branch, error)
	BranchesDivergingFromUpstream(executionContext context.Context, repositoryPath string, knownBranches []gitrepo.Branch) ([]gitrepo.Branch, error)
}

// RepositoryDiscoverer locates Git repositories for bulk operations.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, error)
}
