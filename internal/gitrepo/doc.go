// Package gitrepo contains helpers for interrogating Git repositories.
//
// It exposes BranchInspector for listing branches and detecting upstream
// divergence by parsing git for-each-ref output, along with the record
// tokenizers, identity parsing, and upstream reference utilities the
// inspection pipelines rely on.
package gitrepo
