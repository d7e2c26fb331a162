package gitrepo

import (
	"fmt"
	"strings"
)

const (
	upstreamRefEmptyInputMessageConstant       = "upstream reference is empty"
	upstreamRefOutsideNamespaceMessageConstant = "upstream reference is outside the remote-tracking namespace"
	upstreamRefMissingBranchMessageConstant    = "upstream reference does not include a branch segment"
	upstreamRefErrorTemplateConstant           = "parse upstream reference %q: %s"
	upstreamRefSegmentSeparatorConstant        = "/"
	upstreamRefExpectedSegmentCountConstant    = 2
)

// UpstreamRefParseError describes an upstream reference path that could not be decomposed.
type UpstreamRefParseError struct {
	Input   string
	Message string
}

// Error renders the parse failure with the offending input.
func (parseError UpstreamRefParseError) Error() string {
	return fmt.Sprintf(upstreamRefErrorTemplateConstant, parseError.Input, parseError.Message)
}

// UpstreamRef is the decomposed form of a remote-tracking reference path. It
// is comparable and keys the remote sha index during divergence detection.
type UpstreamRef struct {
	RemoteName string
	BranchName string
}

// ParseUpstreamRef decomposes a full remote-tracking reference path such as
// refs/remotes/origin/feature/login into its remote and branch components. The
// branch component keeps any embedded slashes.
func ParseUpstreamRef(referencePath string) (UpstreamRef, error) {
	trimmedReferencePath := strings.TrimSpace(referencePath)
	if len(trimmedReferencePath) == 0 {
		return UpstreamRef{}, UpstreamRefParseError{Input: referencePath, Message: upstreamRefEmptyInputMessageConstant}
	}
	if !strings.HasPrefix(trimmedReferencePath, RemoteTrackingNamespacePrefixConstant) {
		return UpstreamRef{}, UpstreamRefParseError{Input: referencePath, Message: upstreamRefOutsideNamespaceMessageConstant}
	}

	remoteQualifiedName := strings.TrimPrefix(trimmedReferencePath, RemoteTrackingNamespacePrefixConstant)
	nameSegments := strings.SplitN(remoteQualifiedName, upstreamRefSegmentSeparatorConstant, upstreamRefExpectedSegmentCountConstant)
	if len(nameSegments) < upstreamRefExpectedSegmentCountConstant || len(nameSegments[0]) == 0 || len(nameSegments[1]) == 0 {
		return UpstreamRef{}, UpstreamRefParseError{Input: referencePath, Message: upstreamRefMissingBranchMessageConstant}
	}

	return UpstreamRef{RemoteName: nameSegments[0], BranchName: nameSegments[1]}, nil
}
