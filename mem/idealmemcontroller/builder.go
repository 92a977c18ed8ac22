package idealmemcontroller

import (
	"log"

	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/sim"
)

// A Builder can build ideal memory controllers.
type Builder struct {
	engine         sim.Engine
	freq           sim.Freq
	latency        int
	capacity       uint64
	storage        *mem.Storage
	ranges         []mem.AddrRange
	maxOutstanding int
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:           1 * sim.GHz,
		latency:        100,
		capacity:       4 * mem.GB,
		maxOutstanding: 8,
	}
}

// WithEngine sets the event engine the controller schedules responses on.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the controller.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithLatency sets the access latency in cycles.
func (b Builder) WithLatency(latency int) Builder {
	b.latency = latency
	return b
}

// WithNewStorage lets the controller create its own storage with the given
// capacity.
func (b Builder) WithNewStorage(capacity uint64) Builder {
	b.capacity = capacity
	return b
}

// WithStorage sets the backing storage of the controller.
func (b Builder) WithStorage(storage *mem.Storage) Builder {
	b.storage = storage
	return b
}

// WithAddrRanges sets the address ranges the controller serves. By default
// the controller serves one range covering its whole storage.
func (b Builder) WithAddrRanges(ranges []mem.AddrRange) Builder {
	b.ranges = ranges
	return b
}

// WithMaxOutstanding sets the number of timing requests the controller
// accepts before pushing back.
func (b Builder) WithMaxOutstanding(n int) Builder {
	b.maxOutstanding = n
	return b
}

// Build creates a new Comp.
func (b Builder) Build(name string) *Comp {
	if b.engine == nil {
		log.Panic("ideal memory controller requires an event engine")
	}

	c := &Comp{
		name:           name,
		Freq:           b.freq,
		Latency:        b.latency,
		engine:         b.engine,
		maxOutstanding: b.maxOutstanding,
	}

	c.storage = b.storage
	if c.storage == nil {
		c.storage = mem.NewStorage(b.capacity)
	}

	c.ranges = b.ranges
	if c.ranges == nil {
		c.ranges = []mem.AddrRange{mem.RangeSize(0, c.storage.Capacity())}
	}

	c.topPort = mem.NewResponsePort(c, name+".TopPort")

	return c
}
