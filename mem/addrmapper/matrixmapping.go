package addrmapper

import (
	"log"
	"math"
	"math/bits"

	"github.com/sarchlab/memremap/mem"
)

// A BitMatrixMapping remaps addresses with an N-by-N invertible matrix over
// GF(2). Bit i of the remapped address is the parity of the bitwise AND
// between the address and row i of the matrix, so the mapping is a linear
// bijection over the whole N-bit address space.
type BitMatrixMapping struct {
	n    int
	rows []uint64
	inv  []uint64

	// number of low address bits the permutation leaves in place; backdoor
	// windows must fit within such a block to keep in-block offsets intact
	fixedLowBits int
}

// NewBitMatrixMapping creates a BitMatrixMapping for n address bits from the
// matrix rows. The inverse is derived at construction; a singular matrix is
// a configuration error and panics.
func NewBitMatrixMapping(n int, rows []uint64) *BitMatrixMapping {
	checkMatrixShape(n, rows)

	inv, ok := invertMatrix(n, rows)
	if !ok {
		log.Panic("bit matrix is singular over GF(2)")
	}

	return newBitMatrixMapping(n, rows, inv)
}

// NewBitMatrixMappingWithInverse creates a BitMatrixMapping from a matrix
// and a supplied inverse. The pair is verified to compose to the identity.
func NewBitMatrixMappingWithInverse(
	n int,
	rows, inv []uint64,
) *BitMatrixMapping {
	checkMatrixShape(n, rows)
	checkMatrixShape(n, inv)

	for i := 0; i < n; i++ {
		unit := uint64(1) << i
		if transform(inv, transform(rows, unit)) != unit {
			log.Panic("supplied matrix inverse does not invert the matrix")
		}
	}

	return newBitMatrixMapping(n, rows, inv)
}

func newBitMatrixMapping(n int, rows, inv []uint64) *BitMatrixMapping {
	m := &BitMatrixMapping{n: n, rows: rows, inv: inv}
	m.fixedLowBits = countFixedLowBits(n, rows)
	return m
}

func checkMatrixShape(n int, rows []uint64) {
	if n < 1 || n > 64 {
		log.Panicf("address bit width must be between 1 and 64, got %d", n)
	}

	if len(rows) != n {
		log.Panicf("bit matrix must have %d rows, got %d", n, len(rows))
	}

	if n < 64 {
		for i, row := range rows {
			if row>>uint(n) != 0 {
				log.Panicf("row %d of the bit matrix exceeds %d bits", i, n)
			}
		}
	}
}

// transform computes rows * addr over GF(2).
func transform(rows []uint64, addr uint64) uint64 {
	var out uint64
	for i, row := range rows {
		out |= uint64(bits.OnesCount64(row&addr)&1) << i
	}
	return out
}

// invertMatrix computes the inverse of the matrix over GF(2) with
// Gauss-Jordan elimination. It reports false if the matrix is singular.
func invertMatrix(n int, rows []uint64) ([]uint64, bool) {
	work := make([]uint64, n)
	copy(work, rows)

	inv := make([]uint64, n)
	for i := range inv {
		inv[i] = 1 << i
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if work[r]&(1<<col) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}

		work[col], work[pivot] = work[pivot], work[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		for r := 0; r < n; r++ {
			if r != col && work[r]&(1<<col) != 0 {
				work[r] ^= work[col]
				inv[r] ^= inv[col]
			}
		}
	}

	return inv, true
}

// countFixedLowBits returns the largest k such that the matrix maps every
// address below 2^k to itself.
func countFixedLowBits(n int, rows []uint64) int {
	for k := 0; k < n; k++ {
		// column k must be the unit vector e_k
		for j := 0; j < n; j++ {
			bit := (rows[j] >> k) & 1
			if (j == k) != (bit == 1) {
				return k
			}
		}
	}
	return n
}

// RemapAddr applies the matrix to the address.
func (m *BitMatrixMapping) RemapAddr(addr uint64) uint64 {
	if m.n < 64 && addr>>uint(m.n) != 0 {
		log.Panicf("address 0x%X exceeds the %d-bit address space", addr, m.n)
	}

	return transform(m.rows, addr)
}

// AddrRanges returns the full N-bit address space as a single range. The
// mapping is a total bijection over that space, so there is no per-range
// bookkeeping.
func (m *BitMatrixMapping) AddrRanges() []mem.AddrRange {
	if m.n == 64 {
		return []mem.AddrRange{{Start: 0, End: math.MaxUint64}}
	}

	return []mem.AddrRange{{Start: 0, End: 1 << m.n}}
}

// RevertBackdoor expresses a target-granted backdoor in original address
// space. An arbitrary sub-range does not stay contiguous under a bit
// permutation, so the grant is trimmed to the largest aligned power-of-two
// block on which the permutation preserves in-block offsets. A grant from
// which no such block survives the intersection with the request yields nil.
func (m *BitMatrixMapping) RevertBackdoor(
	bd *mem.Backdoor,
	req mem.AddrRange,
) *mem.Backdoor {
	block, origBase, ok := m.usableBlock(bd.Range)
	if !ok {
		return nil
	}

	reverted := mem.RangeSize(origBase, block.Size())
	promised := reverted.Intersect(req)
	if promised.IsEmpty() {
		return nil
	}

	// In-block offsets are identical in both spaces, so the promised range
	// slices directly into the granted data.
	dataOffset := block.Start - bd.Range.Start + (promised.Start - origBase)
	out := mem.NewBackdoor(
		promised,
		bd.Data[dataOffset:dataOffset+promised.Size()],
		bd.Flags)

	bd.AddInvalidationCallback(func(*mem.Backdoor) {
		out.Invalidate()
	})

	return out
}

// usableBlock finds the largest aligned power-of-two block within the
// granted range whose image under the inverse transform is the aligned
// block of the same size, offset for offset.
func (m *BitMatrixMapping) usableBlock(
	granted mem.AddrRange,
) (block mem.AddrRange, origBase uint64, ok bool) {
	if granted.IsEmpty() {
		return mem.AddrRange{}, 0, false
	}

	maxOrder := m.fixedLowBits
	if sizeOrder := bits.Len64(granted.Size()) - 1; sizeOrder < maxOrder {
		maxOrder = sizeOrder
	}

	for k := maxOrder; k >= 0; k-- {
		blockSize := uint64(1) << k
		base := (granted.Start + blockSize - 1) &^ (blockSize - 1)
		if base+blockSize > granted.End {
			continue
		}

		orig := transform(m.inv, base)
		if orig&(blockSize-1) != 0 {
			continue
		}

		return mem.RangeSize(base, blockSize), orig, true
	}

	return mem.AddrRange{}, 0, false
}
