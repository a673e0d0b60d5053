// Package preflight provides readiness checks for the filesystem paths a
// pipeline run depends on.
//
// The CLI "config validate" command runs RunAll and renders each Result as a
// status line. Checks never create or modify anything: an output check passes
// when the destination's directory is writable, or when it is missing but
// create_dirs is enabled and the nearest existing ancestor is writable.
package preflight
