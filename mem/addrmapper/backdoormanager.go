package addrmapper

import (
	"log"

	"github.com/sarchlab/memremap/mem"
)

// A backdoorManager derives original-space backdoors from target-granted
// ones for a range mapping, and caches them so that repeated requests
// against the same underlying window return the same descriptor instead of
// rebuilding it. The cache is the only mutable shared state here; it is only
// touched from the mapper's own callbacks, so it needs no locking under the
// single-threaded event dispatch model.
type backdoorManager struct {
	originalRanges []mem.AddrRange
	remappedRanges []mem.AddrRange

	// reverted backdoors, keyed by the remapped sub-range they promise
	cache map[mem.AddrRange]*mem.Backdoor
}

func newBackdoorManager(
	original, remapped []mem.AddrRange,
) *backdoorManager {
	return &backdoorManager{
		originalRanges: original,
		remappedRanges: remapped,
		cache:          make(map[mem.AddrRange]*mem.Backdoor),
	}
}

func (m *backdoorManager) revertBackdoor(
	bd *mem.Backdoor,
	req mem.AddrRange,
) *mem.Backdoor {
	i := m.pairContaining(bd.Range)

	// The backdoor's covered interval, expressed in original space.
	offsetIntoRange := bd.Range.Start - m.remappedRanges[i].Start
	reverted := mem.RangeSize(
		m.originalRanges[i].Start+offsetIntoRange, bd.Range.Size())

	// A backdoor may cover more than was asked for; only the requested
	// sub-range is promised back.
	promised := reverted.Intersect(req)
	if promised.IsEmpty() {
		return nil
	}

	key := mem.RangeSize(
		m.remappedRanges[i].Start+(promised.Start-m.originalRanges[i].Start),
		promised.Size())

	if cached, found := m.cache[key]; found && cached.Valid() {
		return cached
	}

	dataOffset := key.Start - bd.Range.Start
	out := mem.NewBackdoor(
		promised,
		bd.Data[dataOffset:dataOffset+promised.Size()],
		bd.Flags)

	m.cache[key] = out
	bd.AddInvalidationCallback(func(*mem.Backdoor) {
		delete(m.cache, key)
		out.Invalidate()
	})

	return out
}

func (m *backdoorManager) pairContaining(r mem.AddrRange) int {
	for i, remapped := range m.remappedRanges {
		if remapped.ContainsRange(r) {
			return i
		}
	}

	log.Panicf("backdoor range %s is outside all remapped ranges", r)

	return -1
}
