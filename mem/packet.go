package mem

import "github.com/sarchlab/memremap/sim"

// Cmd tells whether a packet reads or writes memory.
type Cmd int

// The commands a packet can carry.
const (
	CmdRead Cmd = iota
	CmdWrite
)

func (c Cmd) String() string {
	switch c {
	case CmdRead:
		return "Read"
	case CmdWrite:
		return "Write"
	default:
		return "Unknown"
	}
}

// AccessMode tags the protocol a packet travels with.
type AccessMode int

// The access modes of the memory port protocol.
const (
	AccessFunctional AccessMode = iota
	AccessAtomic
	AccessTimingReq
	AccessTimingResp
	AccessSnoopReq
	AccessSnoopResp
)

func (m AccessMode) String() string {
	switch m {
	case AccessFunctional:
		return "Functional"
	case AccessAtomic:
		return "Atomic"
	case AccessTimingReq:
		return "TimingReq"
	case AccessTimingResp:
		return "TimingResp"
	case AccessSnoopReq:
		return "SnoopReq"
	case AccessSnoopResp:
		return "SnoopResp"
	default:
		return "Unknown"
	}
}

// A Packet is a single in-flight request or response descriptor. A packet is
// not owned by the components it passes through; a component mutates it
// transiently and must restore it before handing it back.
type Packet struct {
	ID            string
	Cmd           Cmd
	Mode          AccessMode
	Address       uint64
	ByteSize      uint64
	Data          []byte
	NeedsResponse bool
}

// AddrRange returns the range of addresses the packet accesses.
func (p *Packet) AddrRange() AddrRange {
	return RangeSize(p.Address, p.ByteSize)
}

// MakeResponse turns a timing request packet into its matching response. The
// packet keeps its identity, which is how responses are matched to requests.
func (p *Packet) MakeResponse() {
	p.Mode = AccessTimingResp
	p.NeedsResponse = false
}

// IsResponse returns true if the packet is a timing response.
func (p *Packet) IsResponse() bool {
	return p.Mode == AccessTimingResp
}

// PacketBuilder can build packets.
type PacketBuilder struct {
	cmd        Cmd
	mode       AccessMode
	address    uint64
	byteSize   uint64
	data       []byte
	noResponse bool
}

// WithCmd sets the command of the packet to build.
func (b PacketBuilder) WithCmd(cmd Cmd) PacketBuilder {
	b.cmd = cmd
	return b
}

// WithMode sets the access mode of the packet to build.
func (b PacketBuilder) WithMode(mode AccessMode) PacketBuilder {
	b.mode = mode
	return b
}

// WithAddress sets the address of the packet to build.
func (b PacketBuilder) WithAddress(address uint64) PacketBuilder {
	b.address = address
	return b
}

// WithByteSize sets the number of bytes the packet accesses.
func (b PacketBuilder) WithByteSize(byteSize uint64) PacketBuilder {
	b.byteSize = byteSize
	return b
}

// WithData sets the data the packet carries. It also sets the byte size to
// the length of the data.
func (b PacketBuilder) WithData(data []byte) PacketBuilder {
	b.data = data
	b.byteSize = uint64(len(data))
	return b
}

// WithoutResponse marks the packet as not expecting a response.
func (b PacketBuilder) WithoutResponse() PacketBuilder {
	b.noResponse = true
	return b
}

// Build creates a new Packet.
func (b PacketBuilder) Build() *Packet {
	p := &Packet{}
	p.ID = sim.GetIDGenerator().Generate()
	p.Cmd = b.cmd
	p.Mode = b.mode
	p.Address = b.address
	p.ByteSize = b.byteSize
	p.Data = b.data
	p.NeedsResponse = !b.noResponse
	return p
}
