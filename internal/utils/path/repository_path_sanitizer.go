package pathutils

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

const windowsOperatingSystemNameConstant = "windows"

var booleanLiteralValues = map[string]struct{}{
	"true":  {},
	"false": {},
}

// RepositoryPathSanitizerConfiguration controls repository path sanitization behavior.
type RepositoryPathSanitizerConfiguration struct {
	// ExcludeBooleanLiteralCandidates removes arguments that represent boolean literals.
	ExcludeBooleanLiteralCandidates bool
	// PruneNestedPaths removes repository paths that are nested within other provided paths.
	PruneNestedPaths bool
}

// RepositoryPathSanitizer normalizes repository path inputs consistently across commands.
type RepositoryPathSanitizer struct {
	homeExpander  *HomeExpander
	configuration RepositoryPathSanitizerConfiguration
}

// NewRepositoryPathSanitizer constructs a RepositoryPathSanitizer with default behavior.
func NewRepositoryPathSanitizer() *RepositoryPathSanitizer {
	return NewRepositoryPathSanitizerWithConfiguration(nil, RepositoryPathSanitizerConfiguration{})
}

// NewRepositoryPathSanitizerWithConfiguration constructs a RepositoryPathSanitizer using the
// provided expander and configuration. A nil expander falls back to the operating system lookup.
func NewRepositoryPathSanitizerWithConfiguration(homeExpander *HomeExpander, configuration RepositoryPathSanitizerConfiguration) *RepositoryPathSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}

	return &RepositoryPathSanitizer{
		homeExpander:  homeExpander,
		configuration: configuration,
	}
}

// Sanitize trims whitespace, expands home shortcuts, and drops disallowed values.
// An empty result is reported as nil rather than an empty slice.
func (sanitizer *RepositoryPathSanitizer) Sanitize(candidatePaths []string) []string {
	if sanitizer == nil {
		sanitizer = NewRepositoryPathSanitizer()
	}

	acceptedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedPath := strings.TrimSpace(candidatePath)
		if len(trimmedPath) == 0 {
			continue
		}
		if sanitizer.configuration.ExcludeBooleanLiteralCandidates && isBooleanLiteral(trimmedPath) {
			continue
		}

		expandedPath := sanitizer.homeExpander.Expand(trimmedPath)
		if len(expandedPath) == 0 {
			continue
		}
		acceptedPaths = append(acceptedPaths, expandedPath)
	}

	if len(acceptedPaths) == 0 {
		return nil
	}
	if sanitizer.configuration.PruneNestedPaths {
		return pruneNestedPaths(acceptedPaths)
	}
	return acceptedPaths
}

func isBooleanLiteral(candidate string) bool {
	_, literalRecognized := booleanLiteralValues[strings.ToLower(candidate)]
	return literalRecognized
}

type pathEntry struct {
	originalIndex int
	original      string
	canonical     string
	comparable    string
}

// pruneNestedPaths removes duplicates and any path contained inside another
// candidate, preserving the original input order of the survivors.
func pruneNestedPaths(candidatePaths []string) []string {
	entries := make([]pathEntry, len(candidatePaths))
	for index, candidatePath := range candidatePaths {
		canonicalPath := canonicalizePath(candidatePath)
		entries[index] = pathEntry{
			originalIndex: index,
			original:      candidatePath,
			canonical:     canonicalPath,
			comparable:    comparablePath(canonicalPath),
		}
	}

	// Shorter comparable paths sort first, so every potential parent is
	// examined before the paths it could contain.
	sort.SliceStable(entries, func(firstIndex int, secondIndex int) bool {
		firstComparable := entries[firstIndex].comparable
		secondComparable := entries[secondIndex].comparable
		if len(firstComparable) != len(secondComparable) {
			return len(firstComparable) < len(secondComparable)
		}
		return firstComparable < secondComparable
	})

	survivors := make([]pathEntry, 0, len(entries))
	for _, entry := range entries {
		if containedByAny(survivors, entry) {
			continue
		}
		survivors = append(survivors, entry)
	}

	sort.SliceStable(survivors, func(firstIndex int, secondIndex int) bool {
		return survivors[firstIndex].originalIndex < survivors[secondIndex].originalIndex
	})

	prunedPaths := make([]string, 0, len(survivors))
	for _, survivor := range survivors {
		prunedPaths = append(prunedPaths, survivor.original)
	}
	return prunedPaths
}

func containedByAny(survivors []pathEntry, candidate pathEntry) bool {
	for _, survivor := range survivors {
		if candidate.comparable == survivor.comparable {
			return true
		}
		if isNestedPath(survivor.canonical, candidate.canonical) {
			return true
		}
	}
	return false
}

func canonicalizePath(candidatePath string) string {
	cleanedPath := filepath.Clean(candidatePath)
	absolutePath, absoluteError := filepath.Abs(cleanedPath)
	if absoluteError != nil {
		return cleanedPath
	}
	return filepath.Clean(absolutePath)
}

// comparablePath folds case on case-insensitive filesystems.
func comparablePath(candidatePath string) string {
	comparable := filepath.Clean(candidatePath)
	if runtime.GOOS == windowsOperatingSystemNameConstant {
		comparable = strings.ToLower(comparable)
	}
	return comparable
}

func isNestedPath(parentPath string, candidatePath string) bool {
	parentComparable := comparablePath(parentPath)
	candidateComparable := comparablePath(candidatePath)

	if candidateComparable == parentComparable {
		return true
	}

	remainder, sharesPrefix := strings.CutPrefix(candidateComparable, parentComparable)
	if !sharesPrefix || len(remainder) == 0 {
		return false
	}

	// The prefix match must land on a separator boundary, otherwise
	// "/repos/alpha-two" would count as nested under "/repos/alpha".
	if parentComparable[len(parentComparable)-1] == os.PathSeparator {
		return true
	}
	return remainder[0] == os.PathSeparator
}
