// Package ui formats command lifecycle events into concise console messages.
//
// ConsoleCommandEventLogger adapts an execshell.CommandEventObserver onto a
// zap logger so command execution feedback stays readable while structured
// telemetry flows through the same logging pipeline.
package ui
