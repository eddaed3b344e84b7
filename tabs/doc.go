// Package tabs contains view-level policy and pane composition.
//
// Allowed here:
// - pane host behavior, view-specific layout trees, focus/jump policy
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
package tabs
