// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec behind ShellExecutor, exposes OSCommandRunner for default
// process execution, and lets callers declare recognized git failures that are
// returned as results instead of errors so the caller can degrade gracefully.
package execshell
