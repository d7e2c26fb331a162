package gitrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrenko/branchscope/internal/execshell"
)

const (
	divergenceFieldCountConstant            = 6
	divergenceRefNameFieldIndexConstant     = 0
	divergenceShortNameFieldIndexConstant   = 1
	divergenceObjectNameFieldIndexConstant  = 2
	divergenceUpstreamRefFieldIndexConstant = 3
	divergenceSymrefFieldIndexConstant      = 4
	divergenceHeadMarkerFieldIndexConstant  = 5
	currentCheckoutMarkerConstant           = "*"
)

// localBranchCandidate buffers a local ref until the remote sha index is
// complete; local and remote records arrive interleaved in unspecified order,
// so comparisons cannot happen during the first pass.
type localBranchCandidate struct {
	shortName string
	tipSHA    string
	upstream  UpstreamRef
}

// BranchesDivergingFromUpstream reports which of the known local branches
// point at a different commit than their configured upstream. The currently
// checked-out branch and branches without an upstream are never reported, and
// an upstream whose remote ref no longer exists is treated as not divergent.
// The returned entries are the caller's own Branch values, filtered, never
// reconstructed.
func (inspector *BranchInspector) BranchesDivergingFromUpstream(executionContext context.Context, repositoryPath string, knownBranches []Branch) ([]Branch, error) {
	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, divergenceProbeCommandDetails(repositoryPath))
	if executionError != nil {
		return nil, executionError
	}
	if executionResult.GitFailure == execshell.GitFailureNotARepository {
		return []Branch{}, nil
	}

	var localCandidates []localBranchCandidate
	remoteShaIndex := make(map[UpstreamRef]string)

	for _, refRecord := range splitLineRecords(executionResult.StandardOutput) {
		recordFields := splitRecordFields(refRecord)
		if len(recordFields) != divergenceFieldCountConstant {
			return nil, fmt.Errorf(malformedRefRecordTemplateConstant, refRecord)
		}

		if len(recordFields[divergenceSymrefFieldIndexConstant]) > 0 {
			continue
		}
		if strings.TrimSpace(recordFields[divergenceHeadMarkerFieldIndexConstant]) == currentCheckoutMarkerConstant {
			continue
		}

		refName := recordFields[divergenceRefNameFieldIndexConstant]
		objectName := recordFields[divergenceObjectNameFieldIndexConstant]
		if strings.HasPrefix(refName, LocalBranchNamespacePrefixConstant) {
			upstreamRefName := recordFields[divergenceUpstreamRefFieldIndexConstant]
			if len(upstreamRefName) == 0 {
				continue
			}
			// An upstream outside the remote-tracking namespace can never
			// resolve against the remote index, so the candidate is dropped
			// here instead of failing the lookup later.
			upstream, upstreamParseError := ParseUpstreamRef(upstreamRefName)
			if upstreamParseError != nil {
				continue
			}
			localCandidates = append(localCandidates, localBranchCandidate{
				shortName: recordFields[divergenceShortNameFieldIndexConstant],
				tipSHA:    objectName,
				upstream:  upstream,
			})
			continue
		}

		remoteRef, remoteRefParseError := ParseUpstreamRef(refName)
		if remoteRefParseError != nil {
			continue
		}
		remoteShaIndex[remoteRef] = objectName
	}

	divergentNames := make(map[string]struct{}, len(localCandidates))
	for _, candidate := range localCandidates {
		upstreamSHA, upstreamKnown := remoteShaIndex[candidate.upstream]
		if !upstreamKnown {
			continue
		}
		if upstreamSHA != candidate.tipSHA {
			divergentNames[candidate.shortName] = struct{}{}
		}
	}

	divergingBranches := make([]Branch, 0, len(divergentNames))
	for _, knownBranch := range knownBranches {
		if knownBranch.Kind != BranchKindLocal {
			continue
		}
		if _, divergent := divergentNames[knownBranch.Name]; divergent {
			divergingBranches = append(divergingBranches, knownBranch)
		}
	}

	return divergingBranches, nil
}
