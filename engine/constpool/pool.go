// Package constpool implements the module-wide pool of 64-bit constants referenced by
// translated function bodies.
package constpool

import (
	"errors"
	"math"
	"sync"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
)

// ErrTooManyConstants is returned by Alloc when the pool is full.
var ErrTooManyConstants = errors.New("too many constants")

// A Pool holds deduplicated constants. Values are keyed by their bit patterns, so distinct NaN
// payloads and signed zeros occupy distinct slots. A Pool is safe for concurrent use.
type Pool struct {
	capacity int

	m      sync.RWMutex
	values []uint64
	index  map[uint64]bytecode.ConstRef
}

// New creates a pool that holds at most capacity constants. A capacity <= 0 selects the largest
// supported capacity.
func New(capacity int) *Pool {
	if capacity <= 0 {
		capacity = math.MaxInt32
	}
	return &Pool{capacity: capacity, index: map[uint64]bytecode.ConstRef{}}
}

// Alloc returns the reference for v, adding it to the pool if it is not already present.
// References are stable once assigned.
func (p *Pool) Alloc(v numeric.Value) (bytecode.ConstRef, error) {
	bits := v.Bits()

	p.m.RLock()
	ref, ok := p.index[bits]
	p.m.RUnlock()
	if ok {
		return ref, nil
	}

	p.m.Lock()
	defer p.m.Unlock()

	if ref, ok := p.index[bits]; ok {
		return ref, nil
	}
	if len(p.values) >= p.capacity {
		return 0, ErrTooManyConstants
	}

	ref = bytecode.ConstRef(len(p.values))
	p.values = append(p.values, bits)
	p.index[bits] = ref
	return ref, nil
}

// Get returns the bits of the constant with the given reference.
func (p *Pool) Get(ref bytecode.ConstRef) (uint64, bool) {
	p.m.RLock()
	defer p.m.RUnlock()

	if uint64(ref) >= uint64(len(p.values)) {
		return 0, false
	}
	return p.values[ref], true
}

func (p *Pool) Len() int {
	p.m.RLock()
	defer p.m.RUnlock()
	return len(p.values)
}

// Values returns a snapshot of the pool's contents indexed by reference.
func (p *Pool) Values() []uint64 {
	p.m.RLock()
	defer p.m.RUnlock()
	return append([]uint64(nil), p.values...)
}
