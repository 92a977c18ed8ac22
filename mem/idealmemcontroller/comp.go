// Package idealmemcontroller provides a memory controller that serves every
// access against a backing storage with a fixed latency and no bandwidth
// limit beyond a bound on outstanding timing requests.
package idealmemcontroller

import (
	"log"
	"reflect"

	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/sim"
)

type respondEvent struct {
	*sim.EventBase
	pkt *mem.Packet
}

func newRespondEvent(
	time sim.VTimeInSec,
	handler sim.Handler,
	pkt *mem.Packet,
) *respondEvent {
	return &respondEvent{sim.NewEventBase(time, handler), pkt}
}

// A Comp is an ideal memory controller. Functional and atomic accesses
// complete within the call. Timing requests are bounded by a window of
// outstanding accesses; each response is scheduled a fixed number of cycles
// later. Backdoors are granted over whole storage units.
type Comp struct {
	name string

	Freq    sim.Freq
	Latency int

	engine  sim.Engine
	storage *mem.Storage
	topPort *mem.ResponsePort
	ranges  []mem.AddrRange

	maxOutstanding int
	outstanding    int
	needReqRetry   bool
	pendingRsps    []*mem.Packet

	grantedBackdoors []*mem.Backdoor
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// TopPort returns the port facing the initiator side.
func (c *Comp) TopPort() *mem.ResponsePort {
	return c.topPort
}

// Handle processes scheduled events.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *respondEvent:
		return c.handleRespondEvent(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

// RecvFunctional serves an access immediately, without timing.
func (c *Comp) RecvFunctional(pkt *mem.Packet) {
	c.access(pkt)
}

// RecvAtomic serves an access immediately and reports the access latency.
func (c *Comp) RecvAtomic(pkt *mem.Packet) sim.VTimeInSec {
	c.access(pkt)
	return c.latency()
}

// RecvAtomicBackdoor serves an atomic access and additionally grants a
// backdoor covering the storage unit that holds the accessed address.
func (c *Comp) RecvAtomicBackdoor(
	pkt *mem.Packet,
) (sim.VTimeInSec, *mem.Backdoor) {
	c.access(pkt)

	bd := c.grantBackdoor(pkt.Address,
		mem.BackdoorReadable|mem.BackdoorWriteable)

	return c.latency(), bd
}

// RecvTimingReq accepts a timing request if the outstanding window has room,
// scheduling its response Latency cycles later. A rejected initiator gets a
// request retry once a slot frees up.
func (c *Comp) RecvTimingReq(pkt *mem.Packet) bool {
	if c.outstanding >= c.maxOutstanding {
		c.needReqRetry = true
		return false
	}

	c.outstanding++

	now := c.engine.CurrentTime()
	c.engine.Schedule(newRespondEvent(c.Freq.NCyclesLater(c.Latency, now), c, pkt))

	return true
}

func (c *Comp) handleRespondEvent(e *respondEvent) error {
	pkt := e.pkt

	c.access(pkt)
	pkt.MakeResponse()

	if len(c.pendingRsps) > 0 {
		c.pendingRsps = append(c.pendingRsps, pkt)
		return nil
	}

	if !c.topPort.SendTimingResp(pkt) {
		c.pendingRsps = append(c.pendingRsps, pkt)
		return nil
	}

	c.completeOne()

	return nil
}

// RecvRespRetry resends responses the initiator rejected earlier.
func (c *Comp) RecvRespRetry() {
	for len(c.pendingRsps) > 0 {
		pkt := c.pendingRsps[0]
		if !c.topPort.SendTimingResp(pkt) {
			return
		}

		c.pendingRsps = c.pendingRsps[1:]
		c.completeOne()
	}
}

func (c *Comp) completeOne() {
	c.outstanding--

	if c.needReqRetry {
		c.needReqRetry = false
		c.topPort.SendRetryReq()
	}
}

// RecvTimingSnoopResp accepts snoop responses. Memory holds no coherence
// state, so there is nothing to do.
func (c *Comp) RecvTimingSnoopResp(pkt *mem.Packet) bool {
	return true
}

// RecvMemBackdoorReq grants a backdoor over the storage unit that holds the
// start of the requested range.
func (c *Comp) RecvMemBackdoorReq(req mem.BackdoorReq) *mem.Backdoor {
	return c.grantBackdoor(req.Range.Start, req.Flags)
}

// AddrRanges returns the address ranges the controller serves.
func (c *Comp) AddrRanges() []mem.AddrRange {
	ranges := make([]mem.AddrRange, len(c.ranges))
	copy(ranges, c.ranges)
	return ranges
}

// InvalidateBackdoors revokes every backdoor the controller has granted.
// The storage layer calls this when direct access must be withdrawn, for
// example before the backing data moves.
func (c *Comp) InvalidateBackdoors() {
	for _, bd := range c.grantedBackdoors {
		bd.Invalidate()
	}
	c.grantedBackdoors = nil
}

func (c *Comp) grantBackdoor(
	addr uint64,
	flags mem.BackdoorFlags,
) *mem.Backdoor {
	data, base, err := c.storage.DirectAccess(addr)
	if err != nil {
		return nil
	}

	bd := mem.NewBackdoor(
		mem.RangeSize(base, uint64(len(data))), data, flags)
	c.grantedBackdoors = append(c.grantedBackdoors, bd)

	return bd
}

func (c *Comp) access(pkt *mem.Packet) {
	switch pkt.Cmd {
	case mem.CmdRead:
		data, err := c.storage.Read(pkt.Address, pkt.ByteSize)
		if err != nil {
			log.Panic(err)
		}
		pkt.Data = data
	case mem.CmdWrite:
		err := c.storage.Write(pkt.Address, pkt.Data)
		if err != nil {
			log.Panic(err)
		}
	default:
		log.Panicf("cannot handle command %s", pkt.Cmd)
	}
}

func (c *Comp) latency() sim.VTimeInSec {
	return sim.VTimeInSec(c.Latency) * c.Freq.Period()
}
