// Package tabs contains tab-level policy and pane composition.
//
// Allowed here:
// - pane implementations, tab-specific layout trees, tab-specific focus/jump policy
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (core/widgets)
package tabs
