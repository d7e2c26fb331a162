package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const homeShortcutConstant = "~"

var homeShortcutPrefixes = []string{
	homeShortcutConstant + "/",
	homeShortcutConstant + string(os.PathSeparator),
}

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites leading "~" shortcuts into absolute home paths. The
// home directory lookup runs once and the outcome is cached for the lifetime
// of the expander.
type HomeExpander struct {
	lookupHomeDirectory HomeDirectoryProvider
	cachedHomeDirectory string
	lookupFailure       error
	lookupOnce          sync.Once
}

// NewHomeExpander constructs a HomeExpander backed by os.UserHomeDir.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{lookupHomeDirectory: provider}
}

// Expand resolves a leading home shortcut to the user's home directory. Paths
// without the shortcut, empty paths, and lookups that fail pass through
// unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}
	if !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	homeDirectory := expander.homeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == homeShortcutConstant {
		return homeDirectory
	}

	for _, shortcutPrefix := range homeShortcutPrefixes {
		remainderPath, prefixMatched := strings.CutPrefix(candidatePath, shortcutPrefix)
		if prefixMatched {
			return filepath.Join(homeDirectory, remainderPath)
		}
	}

	return candidatePath
}

func (expander *HomeExpander) homeDirectory() string {
	expander.lookupOnce.Do(func() {
		expander.cachedHomeDirectory, expander.lookupFailure = expander.lookupHomeDirectory()
	})
	if expander.lookupFailure != nil {
		return ""
	}
	return expander.cachedHomeDirectory
}
