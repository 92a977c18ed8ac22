package addrmapper

import (
	"log"

	"github.com/sarchlab/memremap/mem"
)

// A Builder can build address mappers.
type Builder struct {
	policy MappingPolicy
}

// MakeBuilder returns a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithPolicy sets the mapping policy of the mapper to build.
func (b Builder) WithPolicy(policy MappingPolicy) Builder {
	b.policy = policy
	return b
}

// Build creates a new Comp. The ports still need to be connected and Init
// called before the mapper can serve traffic.
func (b Builder) Build(name string) *Comp {
	if b.policy == nil {
		log.Panic("address mapper requires a mapping policy")
	}

	c := &Comp{
		name:     name,
		policy:   b.policy,
		inflight: make(map[string]uint64),
	}

	c.cpuSidePort = mem.NewResponsePort(c, name+".CPUSidePort")
	c.memSidePort = mem.NewRequestPort(c, name+".MemSidePort")

	return c
}
