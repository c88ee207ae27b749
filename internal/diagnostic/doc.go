// Package diagnostic provides structured errors, warnings and informational
// notes collected while validating a launch environment or discovering
// remap targets.
//
// Diagnostics are aggregated rather than returned one at a time so that a
// misconfigured environment reports every missing input in a single pass.
package diagnostic
