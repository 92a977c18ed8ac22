package mem

import "log"

// BackdoorFlags tells what a backdoor may be used for.
type BackdoorFlags int

// The allowed backdoor uses.
const (
	BackdoorReadable BackdoorFlags = 1 << iota
	BackdoorWriteable
)

// A BackdoorReq asks a component for direct access to the storage that backs
// a range of addresses.
type BackdoorReq struct {
	Range AddrRange
	Flags BackdoorFlags
}

// A Backdoor grants direct, zero-latency access to backing storage for a
// range of addresses, expressed in the address space of the component that
// granted it. Its lifetime is independent of the request that produced it;
// it stays usable until the storage layer invalidates it.
type Backdoor struct {
	Range AddrRange
	Data  []byte
	Flags BackdoorFlags

	invalid   bool
	callbacks []func(*Backdoor)
}

// NewBackdoor creates a backdoor over the given range, backed by the given
// slice. The slice must cover the range exactly.
func NewBackdoor(r AddrRange, data []byte, flags BackdoorFlags) *Backdoor {
	if uint64(len(data)) != r.Size() {
		log.Panicf("backdoor data length %d does not match range %s",
			len(data), r)
	}

	return &Backdoor{Range: r, Data: data, Flags: flags}
}

// Valid returns true until the backdoor is invalidated.
func (b *Backdoor) Valid() bool {
	return !b.invalid
}

// AddInvalidationCallback registers a function to run when the backdoor is
// invalidated.
func (b *Backdoor) AddInvalidationCallback(f func(*Backdoor)) {
	b.callbacks = append(b.callbacks, f)
}

// Invalidate revokes the backdoor and runs the registered callbacks. A
// second invalidation is a no-op.
func (b *Backdoor) Invalidate() {
	if b.invalid {
		return
	}

	b.invalid = true
	for _, f := range b.callbacks {
		f(b)
	}
	b.callbacks = nil
}
