package addrmapper

import (
	"log"

	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/sim"
)

// HookPosReqForward triggers when a request leaves through the mem-side port
// with its address remapped.
var HookPosReqForward = &sim.HookPos{Name: "AddrMapper Req Forward"}

// HookPosRspDeliver triggers when a timing response leaves through the
// cpu-side port with its original address restored.
var HookPosRspDeliver = &sim.HookPos{Name: "AddrMapper Rsp Deliver"}

// HookPosBackdoorRevert triggers when a backdoor granted by the target is
// replaced with its original-space equivalent.
var HookPosBackdoorRevert = &sim.HookPos{Name: "AddrMapper Backdoor Revert"}

// RemapDetail is attached to hook invocations as the Detail field.
type RemapDetail struct {
	OrigAddr     uint64
	RemappedAddr uint64
}

// A Comp is an address mapper. It owns exactly two ports: the cpu-side port
// receives requests from an initiator, the mem-side port forwards them to a
// target with addresses rewritten by the mapping policy. Responses and
// backdoors flowing back are restored to original address space before they
// reach the initiator. Snoop traffic passes through unmodified in both
// directions.
type Comp struct {
	sim.HookableBase

	name   string
	policy MappingPolicy

	cpuSidePort *mem.ResponsePort
	memSidePort *mem.RequestPort

	// inflight keeps the original address of every outstanding timing
	// request, keyed by packet ID. It is the only mutable state of the
	// component besides the policy's backdoor cache.
	inflight map[string]uint64
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// CPUSidePort returns the port facing the initiator.
func (c *Comp) CPUSidePort() *mem.ResponsePort {
	return c.cpuSidePort
}

// MemSidePort returns the port facing the target.
func (c *Comp) MemSidePort() *mem.RequestPort {
	return c.memSidePort
}

// Init verifies that both ports are connected and publishes the advertised
// address ranges upstream. The range table is static after construction, so
// this is the one time the initiator is notified.
func (c *Comp) Init() {
	if !c.cpuSidePort.IsConnected() || !c.memSidePort.IsConnected() {
		log.Panicf("address mapper %s is not connected on both sides", c.name)
	}

	c.cpuSidePort.SendRangeChange()
}

// RecvFunctional serves a functional access. The target observes the
// remapped address; the packet carries its original address again when the
// call returns.
func (c *Comp) RecvFunctional(pkt *mem.Packet) {
	origAddr := pkt.Address
	pkt.Address = c.policy.RemapAddr(origAddr)

	c.memSidePort.SendFunctional(pkt)

	c.invokeRemapHook(HookPosReqForward, pkt, origAddr, pkt.Address)
	pkt.Address = origAddr
}

// RecvAtomic serves an atomic access the same way as a functional one and
// passes the target's reported latency through unmodified.
func (c *Comp) RecvAtomic(pkt *mem.Packet) sim.VTimeInSec {
	origAddr := pkt.Address
	pkt.Address = c.policy.RemapAddr(origAddr)

	latency := c.memSidePort.SendAtomic(pkt)

	c.invokeRemapHook(HookPosReqForward, pkt, origAddr, pkt.Address)
	pkt.Address = origAddr

	return latency
}

// RecvAtomicBackdoor serves an atomic access that also asks for a backdoor.
// A backdoor the target grants is reverted to original address space and
// restricted to the range the packet accesses.
func (c *Comp) RecvAtomicBackdoor(
	pkt *mem.Packet,
) (sim.VTimeInSec, *mem.Backdoor) {
	origAddr := pkt.Address
	origRange := pkt.AddrRange()
	pkt.Address = c.policy.RemapAddr(origAddr)

	latency, bd := c.memSidePort.SendAtomicBackdoor(pkt)

	c.invokeRemapHook(HookPosReqForward, pkt, origAddr, pkt.Address)
	pkt.Address = origAddr

	if bd != nil {
		bd = c.policy.RevertBackdoor(bd, origRange)
		c.invokeRemapHook(HookPosBackdoorRevert, pkt, origAddr, origAddr)
	}

	return latency, bd
}

// RecvTimingReq forwards a timing request with its address remapped. If the
// target rejects the request, the packet is restored and the rejection is
// passed to the initiator, which resubmits after a request retry. On
// acceptance the original address is kept in the in-flight table until the
// matching response returns.
func (c *Comp) RecvTimingReq(pkt *mem.Packet) bool {
	origAddr := pkt.Address

	if pkt.NeedsResponse {
		c.inflight[pkt.ID] = origAddr
	}

	pkt.Address = c.policy.RemapAddr(origAddr)

	accepted := c.memSidePort.SendTimingReq(pkt)
	if !accepted {
		pkt.Address = origAddr
		if pkt.NeedsResponse {
			delete(c.inflight, pkt.ID)
		}
		return false
	}

	c.invokeRemapHook(HookPosReqForward, pkt, origAddr, pkt.Address)

	return true
}

// RecvTimingResp restores the original address of a returning response and
// delivers it upstream. A response with no matching in-flight record is a
// protocol violation. If the initiator rejects the response, the packet is
// left exactly as it arrived so the target can resend it after a response
// retry.
func (c *Comp) RecvTimingResp(pkt *mem.Packet) bool {
	origAddr, found := c.inflight[pkt.ID]
	if !found {
		log.Panicf(
			"address mapper %s received a response with no matching request",
			c.name)
	}

	remappedAddr := pkt.Address
	pkt.Address = origAddr

	accepted := c.cpuSidePort.SendTimingResp(pkt)
	if !accepted {
		pkt.Address = remappedAddr
		return false
	}

	delete(c.inflight, pkt.ID)
	c.invokeRemapHook(HookPosRspDeliver, pkt, origAddr, remappedAddr)

	return true
}

// RecvFunctionalSnoop passes a functional snoop upstream unmodified. Snoops
// are defined over the target's own address space, so no transform applies.
func (c *Comp) RecvFunctionalSnoop(pkt *mem.Packet) {
	c.cpuSidePort.SendFunctionalSnoop(pkt)
}

// RecvAtomicSnoop passes an atomic snoop upstream unmodified.
func (c *Comp) RecvAtomicSnoop(pkt *mem.Packet) sim.VTimeInSec {
	return c.cpuSidePort.SendAtomicSnoop(pkt)
}

// RecvTimingSnoopReq passes a timing snoop request upstream unmodified.
func (c *Comp) RecvTimingSnoopReq(pkt *mem.Packet) {
	c.cpuSidePort.SendTimingSnoopReq(pkt)
}

// RecvTimingSnoopResp passes a timing snoop response downstream unmodified.
func (c *Comp) RecvTimingSnoopResp(pkt *mem.Packet) bool {
	return c.memSidePort.SendTimingSnoopResp(pkt)
}

// RecvReqRetry tells the initiator that the target can accept a previously
// rejected request again. The mapper holds no retry queue of its own.
func (c *Comp) RecvReqRetry() {
	c.cpuSidePort.SendRetryReq()
}

// RecvRespRetry tells the target that the initiator can accept a previously
// rejected response again.
func (c *Comp) RecvRespRetry() {
	c.memSidePort.SendRetryResp()
}

// IsSnooping reports whether the upstream initiator snoops. Remapping of
// snooping initiators is not supported.
func (c *Comp) IsSnooping() bool {
	if c.cpuSidePort.IsSnooping() {
		log.Panicf(
			"address mapper %s does not support snooping initiators", c.name)
	}

	return false
}

// AddrRanges returns the ranges the mapper serves, as seen from the
// initiator. The policy computes them; no further transformation applies.
func (c *Comp) AddrRanges() []mem.AddrRange {
	return c.policy.AddrRanges()
}

// RecvRangeChange is called when the target's served ranges change. The
// mapper's own advertisement is fixed by its policy, so nothing is
// propagated. Whether the initiator actually expects traffic in the target's
// new ranges is not verified; that validation is intentionally deferred.
func (c *Comp) RecvRangeChange() {
}

// RecvMemBackdoorReq forwards a backdoor request with its range remapped and
// replaces whatever backdoor the target grants with one scoped to original
// address space.
func (c *Comp) RecvMemBackdoorReq(req mem.BackdoorReq) *mem.Backdoor {
	remappedStart := c.policy.RemapAddr(req.Range.Start)
	remappedReq := mem.BackdoorReq{
		Range: mem.RangeSize(remappedStart, req.Range.Size()),
		Flags: req.Flags,
	}

	bd := c.memSidePort.SendMemBackdoorReq(remappedReq)
	if bd == nil {
		return nil
	}

	reverted := c.policy.RevertBackdoor(bd, req.Range)
	c.invokeRemapHook(HookPosBackdoorRevert, nil, req.Range.Start, remappedStart)

	return reverted
}

func (c *Comp) invokeRemapHook(
	pos *sim.HookPos,
	pkt *mem.Packet,
	origAddr, remappedAddr uint64,
) {
	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   pkt,
		Detail: RemapDetail{OrigAddr: origAddr, RemappedAddr: remappedAddr},
	})
}
