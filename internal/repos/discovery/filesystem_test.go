package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpetrenko/branchscope/internal/repos/discovery"
)

const (
	gitMetadataDirectoryName       = ".git"
	repositoryDirectoryPermissions = 0o755
	gitPointerFilePermissions      = 0o644
)

func createRepository(t *testing.T, rootDirectory string, segments ...string) string {
	t.Helper()
	repositoryPath := filepath.Join(append([]string{rootDirectory}, segments...)...)
	require.NoError(t, os.MkdirAll(filepath.Join(repositoryPath, gitMetadataDirectoryName), repositoryDirectoryPermissions))
	return repositoryPath
}

func createLinkedWorktree(t *testing.T, rootDirectory string, segments ...string) string {
	t.Helper()
	worktreePath := filepath.Join(append([]string{rootDirectory}, segments...)...)
	require.NoError(t, os.MkdirAll(worktreePath, repositoryDirectoryPermissions))
	pointerPath := filepath.Join(worktreePath, gitMetadataDirectoryName)
	require.NoError(t, os.WriteFile(pointerPath, []byte("gitdir: ../elsewhere\n"), gitPointerFilePermissions))
	return worktreePath
}

func TestFilesystemRepositoryDiscovererFindsNestedRepositories(t *testing.T) {
	rootDirectory := t.TempDir()
	firstRepository := createRepository(t, rootDirectory, "Dev", "Group", "RepoA")
	secondRepository := createRepository(t, rootDirectory, "Dev", "Group", "RepoB")
	thirdRepository := createRepository(t, rootDirectory, "Dev", "RepoC")

	discoverer := discovery.NewFilesystemRepositoryDiscoverer()
	repositories, discoveryError := discoverer.DiscoverRepositories([]string{rootDirectory})
	require.NoError(t, discoveryError)
	require.Equal(t, []string{firstRepository, secondRepository, thirdRepository}, repositories)
}

func TestFilesystemRepositoryDiscovererDeduplicatesOverlappingRoots(t *testing.T) {
	rootDirectory := t.TempDir()
	repositoryPath := createRepository(t, rootDirectory, "Dev", "Repo")
	nestedRoot := filepath.Join(rootDirectory, "Dev")

	discoverer := discovery.NewFilesystemRepositoryDiscoverer()
	repositories, discoveryError := discoverer.DiscoverRepositories([]string{rootDirectory, nestedRoot, repositoryPath})
	require.NoError(t, discoveryError)
	require.Equal(t, []string{repositoryPath}, repositories)
}

func TestFilesystemRepositoryDiscovererRecognizesWorktreePointerFiles(t *testing.T) {
	rootDirectory := t.TempDir()
	worktreePath := createLinkedWorktree(t, rootDirectory, "Dev", "RepoWorktree")

	discoverer := discovery.NewFilesystemRepositoryDiscoverer()
	repositories, discoveryError := discoverer.DiscoverRepositories([]string{rootDirectory})
	require.NoError(t, discoveryError)
	require.Equal(t, []string{worktreePath}, repositories)
}

func TestFilesystemRepositoryDiscovererReturnsEmptyForMissingRoot(t *testing.T) {
	missingRoot := filepath.Join(t.TempDir(), "does-not-exist")

	discoverer := discovery.NewFilesystemRepositoryDiscoverer()
	repositories, discoveryError := discoverer.DiscoverRepositories([]string{missingRoot})
	require.NoError(t, discoveryError)
	require.Empty(t, repositories)
}
