// Package trace records the traffic that passes through an address mapper.
package trace

import (
	"log"

	"github.com/sarchlab/memremap/datarecording"
	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/mem/addrmapper"
	"github.com/sarchlab/memremap/sim"
)

// A remapEntry is one recorded traversal of the mapper.
type remapEntry struct {
	ID           string
	What         string
	Cmd          string
	Mode         string
	OrigAddr     uint64
	RemappedAddr uint64
	ByteSize     uint64
	Time         float64
}

// A DBTracer is a hook that records every access the mapper forwards, with
// both its original and its remapped address, into a data recorder.
type DBTracer struct {
	timeTeller sim.TimeTeller
	recorder   datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer. Attach it to a mapper with AcceptHook.
func NewDBTracer(
	recorder datarecording.DataRecorder,
	timeTeller sim.TimeTeller,
) *DBTracer {
	t := &DBTracer{
		timeTeller: timeTeller,
		recorder:   recorder,
	}

	t.recorder.CreateTable("remapped_accesses", remapEntry{})

	return t
}

// A LogTracer is a hook that prints every access the mapper forwards.
type LogTracer struct {
	timeTeller sim.TimeTeller
	logger     *log.Logger
}

// NewLogTracer creates a LogTracer.
func NewLogTracer(
	logger *log.Logger,
	timeTeller sim.TimeTeller,
) *LogTracer {
	return &LogTracer{timeTeller: timeTeller, logger: logger}
}

// Func records one hook invocation.
func (t *DBTracer) Func(ctx sim.HookCtx) {
	detail, ok := ctx.Detail.(addrmapper.RemapDetail)
	if !ok {
		return
	}

	entry := remapEntry{
		ID:           sim.GetIDGenerator().Generate(),
		What:         ctx.Pos.Name,
		OrigAddr:     detail.OrigAddr,
		RemappedAddr: detail.RemappedAddr,
		Time:         float64(t.timeTeller.CurrentTime()),
	}

	if pkt, ok := ctx.Item.(*mem.Packet); ok && pkt != nil {
		entry.ID = pkt.ID
		entry.Cmd = pkt.Cmd.String()
		entry.Mode = pkt.Mode.String()
		entry.ByteSize = pkt.ByteSize
	}

	t.recorder.InsertData("remapped_accesses", entry)
}

// Func logs one hook invocation.
func (t *LogTracer) Func(ctx sim.HookCtx) {
	detail, ok := ctx.Detail.(addrmapper.RemapDetail)
	if !ok {
		return
	}

	t.logger.Printf("%.12f, %s, 0x%X -> 0x%X\n",
		t.timeTeller.CurrentTime(),
		ctx.Pos.Name,
		detail.OrigAddr,
		detail.RemappedAddr,
	)
}
