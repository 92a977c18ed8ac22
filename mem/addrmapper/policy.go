// Package addrmapper provides a component that rewrites the address of every
// memory access passing from its initiator-facing port to its target-facing
// port, while leaving the rest of the port protocol untouched.
package addrmapper

import "github.com/sarchlab/memremap/mem"

// A MappingPolicy decides how addresses are rewritten. The policy is
// immutable after construction.
type MappingPolicy interface {
	// RemapAddr translates one address from original to remapped space.
	RemapAddr(addr uint64) uint64

	// RevertBackdoor takes a backdoor granted in remapped space and returns
	// an equivalent backdoor expressed in original space, restricted to the
	// originally requested range. It returns nil if no usable backdoor can
	// be derived.
	RevertBackdoor(bd *mem.Backdoor, req mem.AddrRange) *mem.Backdoor

	// AddrRanges returns the ranges the mapper advertises upstream.
	AddrRanges() []mem.AddrRange
}
