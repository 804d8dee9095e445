//go:build pga3d_debug

package pga3d

// debugChecks enables precondition assertions in unchecked constructors.
const debugChecks = true
