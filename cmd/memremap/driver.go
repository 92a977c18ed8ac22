package main

import (
	"encoding/binary"
	"log"

	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/sim"
)

type issueEvent struct {
	*sim.EventBase
}

// A driver issues demo traffic into the remapper and counts the responses it
// gets back. It writes a recognizable pattern with functional accesses first,
// then reads the same locations back with timing requests.
type driver struct {
	engine  sim.Engine
	freq    sim.Freq
	memPort *mem.RequestPort

	addresses         []uint64
	nextToIssue       int
	pendingRetry      bool
	responsesReceived int
}

func newDriver(engine sim.Engine) *driver {
	d := &driver{
		engine: engine,
		freq:   1 * sim.GHz,
	}
	d.memPort = mem.NewRequestPort(d, "Driver.MemPort")

	for i := 0; i < numAccesses; i++ {
		d.addresses = append(d.addresses, 0x1000+uint64(i)*0x40)
	}

	return d
}

func (d *driver) start() {
	for _, addr := range d.addresses {
		data := make([]byte, 8)
		binary.LittleEndian.PutUint64(data, addr)

		pkt := mem.PacketBuilder{}.
			WithCmd(mem.CmdWrite).
			WithMode(mem.AccessFunctional).
			WithAddress(addr).
			WithData(data).
			Build()
		d.memPort.SendFunctional(pkt)
	}

	d.engine.Schedule(issueEvent{sim.NewEventBase(0, d)})
}

func (d *driver) Handle(e sim.Event) error {
	switch e.(type) {
	case issueEvent:
		d.issue(e.Time())
	default:
		log.Panicf("driver cannot handle event of type %T", e)
	}

	return nil
}

func (d *driver) issue(now sim.VTimeInSec) {
	if d.nextToIssue >= len(d.addresses) {
		return
	}

	pkt := mem.PacketBuilder{}.
		WithCmd(mem.CmdRead).
		WithMode(mem.AccessTimingReq).
		WithAddress(d.addresses[d.nextToIssue]).
		WithByteSize(8).
		Build()

	if !d.memPort.SendTimingReq(pkt) {
		d.pendingRetry = true
		return
	}

	d.nextToIssue++
	d.engine.Schedule(issueEvent{
		sim.NewEventBase(d.freq.NextTick(now), d),
	})
}

// RecvTimingResp checks the data carried by the response against the pattern
// written during warmup.
func (d *driver) RecvTimingResp(pkt *mem.Packet) bool {
	want := pkt.Address
	got := binary.LittleEndian.Uint64(pkt.Data)
	if got != want {
		log.Panicf("read 0x%X from address 0x%X, want 0x%X",
			got, pkt.Address, want)
	}

	d.responsesReceived++

	return true
}

func (d *driver) RecvReqRetry() {
	if !d.pendingRetry {
		return
	}

	d.pendingRetry = false
	d.issue(d.engine.CurrentTime())
}

func (d *driver) RecvRangeChange() {
	// The demo wires a single target, nothing to re-route.
}

func (d *driver) RecvFunctionalSnoop(_ *mem.Packet) {}

func (d *driver) RecvAtomicSnoop(_ *mem.Packet) sim.VTimeInSec {
	return 0
}

func (d *driver) RecvTimingSnoopReq(_ *mem.Packet) {}

func (d *driver) IsSnooping() bool {
	return false
}
