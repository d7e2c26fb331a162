package gitrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpetrenko/branchscope/internal/execshell"
)

func localBranchFixture(shortName string, tipSHA string) Branch {
	return Branch{
		Name:         shortName,
		RefName:      LocalBranchNamespacePrefixConstant + shortName,
		UpstreamName: "origin/" + shortName,
		HasUpstream:  true,
		TipSHA:       tipSHA,
		Kind:         BranchKindLocal,
	}
}

func TestBranchesDivergingFromUpstreamBuildsExpectedCommand(t *testing.T) {
	executor := &stubGitExecutor{}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	_, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, nil)
	require.NoError(t, detectionError)

	require.Len(t, executor.recordedCommands, 1)
	recordedCommand := executor.recordedCommands[0]
	require.Equal(t, []string{
		"for-each-ref",
		"--format=" + divergenceProbeFormatConstant,
		"refs/heads/",
		"refs/remotes/",
	}, recordedCommand.Arguments)
	require.Equal(t, testRepositoryPathConstant, recordedCommand.WorkingDirectory)
	require.Equal(t, []execshell.GitFailureKind{execshell.GitFailureNotARepository}, recordedCommand.RecognizedFailures)
}

func TestBranchesDivergingFromUpstreamDetectsMismatchedTips(t *testing.T) {
	payload := divergenceRecord("refs/heads/main", "main", "aaaa", "refs/remotes/origin/main", "", " ") +
		divergenceRecord("refs/heads/feature", "feature", "bbbb", "refs/remotes/origin/feature", "", " ") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "aaaa", "", "", " ") +
		divergenceRecord("refs/remotes/origin/feature", "origin/feature", "cccc", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{
		localBranchFixture("main", "aaaa"),
		localBranchFixture("feature", "bbbb"),
	}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Len(t, divergingBranches, 1)
	require.Equal(t, "feature", divergingBranches[0].Name)
	require.Equal(t, knownBranches[1], divergingBranches[0])
}

func TestBranchesDivergingFromUpstreamToleratesInterleavedRecordOrder(t *testing.T) {
	payload := divergenceRecord("refs/remotes/origin/feature", "origin/feature", "cccc", "", "", " ") +
		divergenceRecord("refs/heads/feature", "feature", "bbbb", "refs/remotes/origin/feature", "", " ") +
		divergenceRecord("refs/heads/main", "main", "aaaa", "refs/remotes/origin/main", "", " ") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "aaaa", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{
		localBranchFixture("main", "aaaa"),
		localBranchFixture("feature", "bbbb"),
	}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Len(t, divergingBranches, 1)
	require.Equal(t, "feature", divergingBranches[0].Name)
}

func TestBranchesDivergingFromUpstreamSkipsCurrentCheckout(t *testing.T) {
	payload := divergenceRecord("refs/heads/main", "main", "aaaa", "refs/remotes/origin/main", "", "*") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "dddd", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{localBranchFixture("main", "aaaa")}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Empty(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamSkipsSymbolicReferences(t *testing.T) {
	payload := divergenceRecord("refs/remotes/origin/HEAD", "origin/HEAD", "aaaa", "", "refs/remotes/origin/main", " ") +
		divergenceRecord("refs/heads/main", "main", "aaaa", "refs/remotes/origin/main", "", " ") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "eeee", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{localBranchFixture("main", "aaaa")}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Len(t, divergingBranches, 1)
	require.Equal(t, "main", divergingBranches[0].Name)
}

func TestBranchesDivergingFromUpstreamIgnoresBranchesWithoutUpstream(t *testing.T) {
	payload := divergenceRecord("refs/heads/scratch", "scratch", "aaaa", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	scratchBranch := Branch{Name: "scratch", RefName: "refs/heads/scratch", TipSHA: "aaaa", Kind: BranchKindLocal}
	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, []Branch{scratchBranch})
	require.NoError(t, detectionError)
	require.Empty(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamIgnoresDeletedUpstreams(t *testing.T) {
	payload := divergenceRecord("refs/heads/orphaned", "orphaned", "aaaa", "refs/remotes/origin/orphaned", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{localBranchFixture("orphaned", "aaaa")}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Empty(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamIgnoresNonRemoteUpstreams(t *testing.T) {
	payload := divergenceRecord("refs/heads/mirror", "mirror", "aaaa", "refs/heads/main", "", " ") +
		divergenceRecord("refs/heads/main", "main", "bbbb", "refs/remotes/origin/main", "", " ") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "bbbb", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	knownBranches := []Branch{
		localBranchFixture("mirror", "aaaa"),
		localBranchFixture("main", "bbbb"),
	}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Empty(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamFiltersRemoteTrackingEntries(t *testing.T) {
	payload := divergenceRecord("refs/heads/main", "main", "aaaa", "refs/remotes/origin/main", "", " ") +
		divergenceRecord("refs/remotes/origin/main", "origin/main", "ffff", "", "", " ")

	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{StandardOutput: payload}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	remoteEntry := Branch{Name: "main", RefName: "refs/remotes/upstream/main", Kind: BranchKindRemote}
	knownBranches := []Branch{localBranchFixture("main", "aaaa"), remoteEntry}

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, knownBranches)
	require.NoError(t, detectionError)
	require.Len(t, divergingBranches, 1)
	require.Equal(t, BranchKindLocal, divergingBranches[0].Kind)
}

func TestBranchesDivergingFromUpstreamReturnsEmptyListOutsideRepository(t *testing.T) {
	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{
		StandardError: "fatal: not a git repository (or any of the parent directories): .git",
		ExitCode:      128,
		GitFailure:    execshell.GitFailureNotARepository,
	}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, []Branch{localBranchFixture("main", "aaaa")})
	require.NoError(t, detectionError)
	require.Empty(t, divergingBranches)
	require.NotNil(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamPropagatesExecutionFailure(t *testing.T) {
	executionFailure := errors.New("git unavailable")
	executor := &stubGitExecutor{cannedErrors: []error{executionFailure}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, nil)
	require.ErrorIs(t, detectionError, executionFailure)
	require.Nil(t, divergingBranches)
}

func TestBranchesDivergingFromUpstreamRejectsMalformedRecords(t *testing.T) {
	executor := &stubGitExecutor{cannedResults: []execshell.ExecutionResult{{
		StandardOutput: "refs/heads/main\x00main\n",
	}}}
	inspector, creationError := NewBranchInspector(executor)
	require.NoError(t, creationError)

	divergingBranches, detectionError := inspector.BranchesDivergingFromUpstream(context.Background(), testRepositoryPathConstant, nil)
	require.ErrorContains(t, detectionError, "unexpected ref record layout")
	require.Nil(t, divergingBranches)
}
