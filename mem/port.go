package mem

import (
	"log"

	"github.com/sarchlab/memremap/sim"
)

// A Target is the downstream side of a port pair. It serves requests issued
// by an initiator: functional and atomic accesses complete within the call,
// timing requests return an immediate accept/reject signal.
type Target interface {
	RecvFunctional(pkt *Packet)
	RecvAtomic(pkt *Packet) sim.VTimeInSec
	RecvAtomicBackdoor(pkt *Packet) (sim.VTimeInSec, *Backdoor)
	RecvTimingReq(pkt *Packet) bool
	RecvTimingSnoopResp(pkt *Packet) bool
	RecvRespRetry()
	RecvMemBackdoorReq(req BackdoorReq) *Backdoor
	AddrRanges() []AddrRange
}

// An Initiator is the upstream side of a port pair. It receives the
// responses and the snoop traffic that a target sends back up.
type Initiator interface {
	RecvFunctionalSnoop(pkt *Packet)
	RecvAtomicSnoop(pkt *Packet) sim.VTimeInSec
	RecvTimingResp(pkt *Packet) bool
	RecvTimingSnoopReq(pkt *Packet)
	RecvReqRetry()
	RecvRangeChange()
	IsSnooping() bool
}

// A RequestPort is owned by an initiator-role component and faces a target.
// It is bound once, through Connect, and never rebinds.
type RequestPort struct {
	name  string
	owner Initiator
	peer  Target
}

// NewRequestPort creates a RequestPort owned by the given component.
func NewRequestPort(owner Initiator, name string) *RequestPort {
	return &RequestPort{name: name, owner: owner}
}

// Name returns the name of the port.
func (p *RequestPort) Name() string {
	return p.name
}

// IsConnected returns true after the port is connected to a peer.
func (p *RequestPort) IsConnected() bool {
	return p.peer != nil
}

func (p *RequestPort) mustBeConnected() {
	if p.peer == nil {
		log.Panicf("port %s is not connected", p.name)
	}
}

// SendFunctional delivers a functional access to the peer target.
func (p *RequestPort) SendFunctional(pkt *Packet) {
	p.mustBeConnected()
	p.peer.RecvFunctional(pkt)
}

// SendAtomic delivers an atomic access to the peer target and returns the
// latency the target reports.
func (p *RequestPort) SendAtomic(pkt *Packet) sim.VTimeInSec {
	p.mustBeConnected()
	return p.peer.RecvAtomic(pkt)
}

// SendAtomicBackdoor delivers an atomic access that also asks the target for
// a backdoor.
func (p *RequestPort) SendAtomicBackdoor(
	pkt *Packet,
) (sim.VTimeInSec, *Backdoor) {
	p.mustBeConnected()
	return p.peer.RecvAtomicBackdoor(pkt)
}

// SendTimingReq delivers a timing request. It returns false if the target
// cannot accept the request now; the target will send a request retry when
// it can.
func (p *RequestPort) SendTimingReq(pkt *Packet) bool {
	p.mustBeConnected()
	return p.peer.RecvTimingReq(pkt)
}

// SendTimingSnoopResp delivers a snoop response to the peer target.
func (p *RequestPort) SendTimingSnoopResp(pkt *Packet) bool {
	p.mustBeConnected()
	return p.peer.RecvTimingSnoopResp(pkt)
}

// SendRetryResp tells the peer target that the owner can accept a previously
// rejected response again.
func (p *RequestPort) SendRetryResp() {
	p.mustBeConnected()
	p.peer.RecvRespRetry()
}

// SendMemBackdoorReq asks the peer target for a backdoor.
func (p *RequestPort) SendMemBackdoorReq(req BackdoorReq) *Backdoor {
	p.mustBeConnected()
	return p.peer.RecvMemBackdoorReq(req)
}

// AddrRanges queries the address ranges the peer target serves.
func (p *RequestPort) AddrRanges() []AddrRange {
	p.mustBeConnected()
	return p.peer.AddrRanges()
}

// A ResponsePort is owned by a target-role component and faces an initiator.
// It is bound once, through Connect, and never rebinds.
type ResponsePort struct {
	name  string
	owner Target
	peer  Initiator
}

// NewResponsePort creates a ResponsePort owned by the given component.
func NewResponsePort(owner Target, name string) *ResponsePort {
	return &ResponsePort{name: name, owner: owner}
}

// Name returns the name of the port.
func (p *ResponsePort) Name() string {
	return p.name
}

// IsConnected returns true after the port is connected to a peer.
func (p *ResponsePort) IsConnected() bool {
	return p.peer != nil
}

func (p *ResponsePort) mustBeConnected() {
	if p.peer == nil {
		log.Panicf("port %s is not connected", p.name)
	}
}

// SendFunctionalSnoop delivers a functional snoop to the peer initiator.
func (p *ResponsePort) SendFunctionalSnoop(pkt *Packet) {
	p.mustBeConnected()
	p.peer.RecvFunctionalSnoop(pkt)
}

// SendAtomicSnoop delivers an atomic snoop to the peer initiator.
func (p *ResponsePort) SendAtomicSnoop(pkt *Packet) sim.VTimeInSec {
	p.mustBeConnected()
	return p.peer.RecvAtomicSnoop(pkt)
}

// SendTimingResp delivers a timing response. It returns false if the
// initiator cannot accept the response now; the initiator will send a
// response retry when it can.
func (p *ResponsePort) SendTimingResp(pkt *Packet) bool {
	p.mustBeConnected()
	return p.peer.RecvTimingResp(pkt)
}

// SendTimingSnoopReq delivers a timing snoop request to the peer initiator.
func (p *ResponsePort) SendTimingSnoopReq(pkt *Packet) {
	p.mustBeConnected()
	p.peer.RecvTimingSnoopReq(pkt)
}

// SendRetryReq tells the peer initiator that the owner can accept a
// previously rejected request again.
func (p *ResponsePort) SendRetryReq() {
	p.mustBeConnected()
	p.peer.RecvReqRetry()
}

// SendRangeChange tells the peer initiator that the address ranges the owner
// serves have changed.
func (p *ResponsePort) SendRangeChange() {
	p.mustBeConnected()
	p.peer.RecvRangeChange()
}

// IsSnooping queries whether the peer initiator issues snoop traffic.
func (p *ResponsePort) IsSnooping() bool {
	p.mustBeConnected()
	return p.peer.IsSnooping()
}

// Connect binds a request port and a response port to each other. Each port
// can only be connected once.
func Connect(req *RequestPort, resp *ResponsePort) {
	if req.peer != nil {
		log.Panicf("port %s is already connected", req.name)
	}
	if resp.peer != nil {
		log.Panicf("port %s is already connected", resp.name)
	}

	req.peer = resp.owner
	resp.peer = req.owner
}
