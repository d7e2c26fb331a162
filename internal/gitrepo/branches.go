package gitrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpetrenko/branchscope/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant          = "git executor not configured"
	malformedRefRecordTemplateConstant         = "unexpected ref record layout: %q"
	authorIdentityErrorTemplateConstant        = "failed to decode author identity for %s: %w"
	committerIdentityErrorTemplateConstant     = "failed to decode committer identity for %s: %w"
	branchListingFieldCountConstant            = 8
	listingRefNameFieldIndexConstant           = 0
	listingShortNameFieldIndexConstant         = 1
	listingUpstreamShortNameFieldIndexConstant = 2
	listingObjectNameFieldIndexConstant        = 3
	listingShortObjectNameFieldIndexConstant   = 4
	listingAuthorFieldIndexConstant            = 5
	listingCommitterFieldIndexConstant         = 6
	listingSymrefFieldIndexConstant            = 7
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by repository inspection.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// BranchInspector lists branches and detects upstream divergence by parsing
// git ref enumeration output. Instances hold no per-call state; concurrent
// calls against the same repository are safe.
type BranchInspector struct {
	executor GitExecutor
}

// NewBranchInspector constructs a BranchInspector from the provided executor.
func NewBranchInspector(executor GitExecutor) (*BranchInspector, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &BranchInspector{executor: executor}, nil
}

// ListBranches enumerates local and remote-tracking branches in the
// repository. When refPrefixes is empty the two canonical namespaces are
// queried. Symbolic refs are excluded from the result. A repository path that
// is not a git repository yields an empty list rather than an error; identity
// fields that cannot be decoded abort the whole call.
func (inspector *BranchInspector) ListBranches(executionContext context.Context, repositoryPath string, refPrefixes ...string) ([]Branch, error) {
	queriedPrefixes := refPrefixes
	if len(queriedPrefixes) == 0 {
		queriedPrefixes = []string{LocalBranchNamespacePrefixConstant, RemoteTrackingNamespacePrefixConstant}
	}

	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, branchListingCommandDetails(repositoryPath, queriedPrefixes))
	if executionError != nil {
		return nil, executionError
	}
	if executionResult.GitFailure == execshell.GitFailureNotARepository {
		return []Branch{}, nil
	}

	refRecords := splitSentinelRecords(executionResult.StandardOutput)
	branches := make([]Branch, 0, len(refRecords))
	for _, refRecord := range refRecords {
		recordFields := splitRecordFields(refRecord)
		if len(recordFields) != branchListingFieldCountConstant {
			return nil, fmt.Errorf(malformedRefRecordTemplateConstant, refRecord)
		}

		if len(recordFields[listingSymrefFieldIndexConstant]) > 0 {
			continue
		}

		shortObjectName := recordFields[listingShortObjectNameFieldIndexConstant]

		tipAuthor, authorParseError := ParseIdentity(recordFields[listingAuthorFieldIndexConstant])
		if authorParseError != nil {
			return nil, fmt.Errorf(authorIdentityErrorTemplateConstant, shortObjectName, authorParseError)
		}
		tipCommitter, committerParseError := ParseIdentity(recordFields[listingCommitterFieldIndexConstant])
		if committerParseError != nil {
			return nil, fmt.Errorf(committerIdentityErrorTemplateConstant, shortObjectName, committerParseError)
		}

		upstreamShortName := recordFields[listingUpstreamShortNameFieldIndexConstant]
		branches = append(branches, Branch{
			Name:         recordFields[listingShortNameFieldIndexConstant],
			RefName:      recordFields[listingRefNameFieldIndexConstant],
			UpstreamName: upstreamShortName,
			HasUpstream:  len(upstreamShortName) > 0,
			TipSHA:       recordFields[listingObjectNameFieldIndexConstant],
			TipAuthor:    tipAuthor,
			TipCommitter: tipCommitter,
			Kind:         classifyBranchKind(recordFields[listingRefNameFieldIndexConstant]),
		})
	}

	return branches, nil
}
