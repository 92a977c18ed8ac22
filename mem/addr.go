package mem

import "fmt"

// Memory capacity units.
const (
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
)

// An AddrRange is a contiguous interval of addresses [Start, End). A range
// with Start >= End is empty.
type AddrRange struct {
	Start, End uint64
}

// RangeSize creates an AddrRange from a start address and a size.
func RangeSize(start, size uint64) AddrRange {
	return AddrRange{Start: start, End: start + size}
}

// Size returns the number of addresses in the range.
func (r AddrRange) Size() uint64 {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range contains no address.
func (r AddrRange) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains returns true if the address falls in the range.
func (r AddrRange) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// ContainsRange returns true if the other range falls entirely in this range.
func (r AddrRange) ContainsRange(o AddrRange) bool {
	return !o.IsEmpty() && o.Start >= r.Start && o.End <= r.End
}

// Overlaps returns true if the two ranges share at least one address.
func (r AddrRange) Overlaps(o AddrRange) bool {
	return !r.IsEmpty() && !o.IsEmpty() && r.Start < o.End && o.Start < r.End
}

// Intersect returns the common sub-range of two ranges. The result is empty
// if the ranges do not overlap.
func (r AddrRange) Intersect(o AddrRange) AddrRange {
	out := AddrRange{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.IsEmpty() {
		return AddrRange{}
	}
	return out
}

func (r AddrRange) String() string {
	return fmt.Sprintf("[0x%X, 0x%X)", r.Start, r.End)
}
