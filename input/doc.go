// Package input translates raw window messages into the per-frame input
// snapshots the UI framework consumes.
package input
