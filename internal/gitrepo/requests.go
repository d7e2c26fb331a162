package gitrepo

import "github.com/mpetrenko/branchscope/internal/execshell"

const (
	gitForEachRefSubcommandConstant = "for-each-ref"
	gitFormatFlagPrefixConstant     = "--format="

	// branchListingFormatConstant encodes the eight listing fields separated by
	// NUL bytes, terminated by the unit separator sentinel. The sentinel is
	// required because author and committer names may contain raw newlines, so
	// a plain newline cannot delimit records.
	branchListingFormatConstant = "%(refname)%00" +
		"%(refname:short)%00" +
		"%(upstream:short)%00" +
		"%(objectname)%00" +
		"%(objectname:short)%00" +
		"%(authorname) %(authoremail) %(authordate:raw)%00" +
		"%(committername) %(committeremail) %(committerdate:raw)%00" +
		"%(symref)%1f"

	// divergenceProbeFormatConstant is the leaner newline-delimited layout used
	// for divergence detection; no identity fields are requested, so newlines
	// are record-safe.
	divergenceProbeFormatConstant = "%(refname)%00" +
		"%(refname:short)%00" +
		"%(objectname)%00" +
		"%(upstream)%00" +
		"%(symref)%00" +
		"%(HEAD)"
)

// branchListingCommandDetails builds the ref enumeration request used by
// ListBranches. The two request builders are kept separate on purpose: the
// listing and divergence formats are independent contracts that evolve
// separately.
func branchListingCommandDetails(repositoryPath string, refPrefixes []string) execshell.CommandDetails {
	arguments := []string{gitForEachRefSubcommandConstant, gitFormatFlagPrefixConstant + branchListingFormatConstant}
	arguments = append(arguments, refPrefixes...)
	return execshell.CommandDetails{
		Arguments:          arguments,
		WorkingDirectory:   repositoryPath,
		RecognizedFailures: []execshell.GitFailureKind{execshell.GitFailureNotARepository},
	}
}

// divergenceProbeCommandDetails builds the ref enumeration request used by
// BranchesDivergingFromUpstream.
func divergenceProbeCommandDetails(repositoryPath string) execshell.CommandDetails {
	return execshell.CommandDetails{
		Arguments: []string{
			gitForEachRefSubcommandConstant,
			gitFormatFlagPrefixConstant + divergenceProbeFormatConstant,
			LocalBranchNamespacePrefixConstant,
			RemoteTrackingNamespacePrefixConstant,
		},
		WorkingDirectory:   repositoryPath,
		RecognizedFailures: []execshell.GitFailureKind{execshell.GitFailureNotARepository},
	}
}
