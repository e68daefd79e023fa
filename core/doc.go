// Package core contains app-wide contracts and state orchestration for
// the range picker shell.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - shared state machines used across screens (the fuzzy list picker)
// - tab and pane policy (pane host focus/jump behavior, tab layouts)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - date-range rules, which live in package period
package core
