// Package main hosts the textpipe CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, builds a structured
// logger tagged with a per-invocation run ID, and drives the text pipeline:
// word counting, blank-line filtering with upper-casing, or both over a single
// read of the input. It also scaffolds and inspects configuration files.
//
// Keep this package lean: pipeline behaviour lives in internal/pipeline and
// this package only wires flags, configuration, and terminal output to it.
package main
