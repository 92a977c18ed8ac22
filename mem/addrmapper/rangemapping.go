package addrmapper

import (
	"log"

	"github.com/sarchlab/memremap/mem"
)

// A RangeMapping maps a list of original ranges to a list of remapped ranges
// of the same sizes, each pair differing by a fixed offset. It is useful
// when a region of memory must appear at a second location.
type RangeMapping struct {
	originalRanges []mem.AddrRange
	remappedRanges []mem.AddrRange

	backdoors *backdoorManager
}

// NewRangeMapping creates a RangeMapping from two equal-length lists of
// ranges. Mismatched lengths, mismatched pair sizes, or overlapping ranges
// on either side are configuration errors and panic.
func NewRangeMapping(original, remapped []mem.AddrRange) *RangeMapping {
	if len(original) != len(remapped) {
		log.Panic("original and remapped range lists must be the same length")
	}

	for i := range original {
		if original[i].Size() != remapped[i].Size() {
			log.Panicf(
				"range pair %d has mismatched sizes: %s vs %s",
				i, original[i], remapped[i])
		}
	}

	mustNotOverlap("original", original)
	mustNotOverlap("remapped", remapped)

	m := &RangeMapping{
		originalRanges: original,
		remappedRanges: remapped,
	}
	m.backdoors = newBackdoorManager(original, remapped)

	return m
}

func mustNotOverlap(side string, ranges []mem.AddrRange) {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				log.Panicf("%s ranges %s and %s overlap",
					side, ranges[i], ranges[j])
			}
		}
	}
}

// RemapAddr translates an address by the offset of the original range that
// contains it. The advertised ranges are exactly the union of the original
// ranges, so an address outside all of them is a protocol violation.
func (m *RangeMapping) RemapAddr(addr uint64) uint64 {
	for i, r := range m.originalRanges {
		if r.Contains(addr) {
			return addr - r.Start + m.remappedRanges[i].Start
		}
	}

	log.Panicf("address 0x%X is outside all original ranges", addr)

	return 0
}

// RevertBackdoor expresses a backdoor granted in remapped space in original
// space, restricted to the requested range. Equivalent requests against the
// same underlying window reuse the same reverted backdoor.
func (m *RangeMapping) RevertBackdoor(
	bd *mem.Backdoor,
	req mem.AddrRange,
) *mem.Backdoor {
	return m.backdoors.revertBackdoor(bd, req)
}

// AddrRanges returns the remapped range list verbatim.
func (m *RangeMapping) AddrRanges() []mem.AddrRange {
	ranges := make([]mem.AddrRange, len(m.remappedRanges))
	copy(ranges, m.remappedRanges)
	return ranges
}
