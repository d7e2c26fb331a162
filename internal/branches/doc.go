// Package branches provides the branch inspection commands for branchscope.
//
// It offers ListCommandBuilder and DivergedCommandBuilder for the Cobra
// commands, shared configuration handling, and text and YAML renderers for
// the resulting branch reports.
package branches
