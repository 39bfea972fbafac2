// Package api
// Author: momentics
//
// Live introspection support for rings in production workloads.

package api

// Debug exposes runtime introspection API.
type Debug interface {
	// DumpState emits a snapshot of registered probes.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
