// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-ring.
//
// Provides concurrent-safe state handling primitives including:
//   - Ring position probes (len, cap, head, tail, contiguous run)
//   - Metrics counters for staging pipelines
//   - State export and probe registration
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
