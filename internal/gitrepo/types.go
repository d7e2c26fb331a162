package gitrepo

import (
	"strings"
	"time"
)

const (
	// LocalBranchNamespacePrefixConstant is the ref namespace holding local branches.
	LocalBranchNamespacePrefixConstant = "refs/heads/"
	// RemoteTrackingNamespacePrefixConstant is the ref namespace holding remote-tracking branches.
	RemoteTrackingNamespacePrefixConstant = "refs/remotes/"
)

// BranchKind distinguishes local branches from remote-tracking branches.
type BranchKind string

// Supported branch kinds.
const (
	BranchKindLocal  BranchKind = "local"
	BranchKindRemote BranchKind = "remote"
)

// Identity captures the author or committer recorded on a commit.
type Identity struct {
	Name  string
	Email string
	When  time.Time
}

// Branch describes a single branch reference and its tip commit metadata.
// Instances are immutable once returned; duplicate names from the underlying
// ref store produce duplicate entries.
type Branch struct {
	Name         string
	RefName      string
	UpstreamName string
	HasUpstream  bool
	TipSHA       string
	TipAuthor    Identity
	TipCommitter Identity
	Kind         BranchKind
}

// classifyBranchKind derives the branch kind from the full ref path.
func classifyBranchKind(refName string) BranchKind {
	if strings.HasPrefix(refName, LocalBranchNamespacePrefixConstant) {
		return BranchKindLocal
	}
	return BranchKindRemote
}
