// Package discovery locates git repositories beneath configured root directories.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
)

const gitMetadataEntryNameConstant = ".git"

// FilesystemRepositoryDiscoverer locates git repositories on disk by walking
// directory trees and collecting every directory holding a .git entry. Both
// .git directories and .git pointer files (linked worktrees) are recognized.
type FilesystemRepositoryDiscoverer struct{}

// NewFilesystemRepositoryDiscoverer constructs a repository discoverer backed by filepath.WalkDir.
func NewFilesystemRepositoryDiscoverer() *FilesystemRepositoryDiscoverer {
	return &FilesystemRepositoryDiscoverer{}
}

// DiscoverRepositories walks the provided roots and returns the sorted,
// deduplicated set of repository directories found beneath them. Unreadable
// entries are skipped rather than failing the whole walk.
func (discoverer *FilesystemRepositoryDiscoverer) DiscoverRepositories(roots []string) ([]string, error) {
	discoveredPaths := make(map[string]struct{})
	for _, rootDirectory := range roots {
		if collectionError := discoverer.collectRepositories(rootDirectory, discoveredPaths); collectionError != nil {
			return nil, collectionError
		}
	}

	repositories := make([]string, 0, len(discoveredPaths))
	for repositoryPath := range discoveredPaths {
		repositories = append(repositories, repositoryPath)
	}
	sort.Strings(repositories)
	return repositories, nil
}

func (discoverer *FilesystemRepositoryDiscoverer) collectRepositories(rootDirectory string, discoveredPaths map[string]struct{}) error {
	return filepath.WalkDir(rootDirectory, func(entryPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return nil
		}
		if directoryEntry.Name() != gitMetadataEntryNameConstant {
			return nil
		}

		discoveredPaths[filepath.Dir(entryPath)] = struct{}{}

		// The metadata directory itself never nests further repositories.
		if directoryEntry.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
}
