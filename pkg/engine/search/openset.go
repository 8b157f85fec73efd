package search

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// entry is one open-set record. seq is the push counter and breaks f ties
// in insertion order.
type entry struct {
	f    int
	seq  int
	cell *world.Cell
}

func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// openSet is a min-heap of entries plus a membership set of the cells that
// have at least one live entry. The heap has no decrease-key, so an improved
// cell gets a second entry and the older one is discarded when popped.
type openSet struct {
	entries *heap.Heap[entry]
	members mapset.Set[*world.Cell]
	seq     int
}

func newOpenSet() *openSet {
	return &openSet{
		entries: heap.New[entry](entryLess),
		members: mapset.New[*world.Cell](),
	}
}

// push enqueues cell with key f. The first push gets seq 0.
func (o *openSet) push(cell *world.Cell, f int) {
	o.entries.Push(entry{f: f, seq: o.seq, cell: cell})
	o.seq++
	o.members.Put(cell)
}

// pop removes the entry with the lowest (f, seq)
func (o *openSet) pop() (entry, bool) {
	e, ok := o.entries.Pop()
	if !ok {
		return entry{}, false
	}
	return e, true
}

// release drops cell from the membership set once its live entry is popped
func (o *openSet) release(cell *world.Cell) {
	o.members.Remove(cell)
}

func (o *openSet) contains(cell *world.Cell) bool {
	return o.members.Has(cell)
}

// empty reports whether no entries remain, live or stale
func (o *openSet) empty() bool {
	return o.entries.Size() == 0
}

// pushes returns how many entries have ever been pushed
func (o *openSet) pushes() int {
	return o.seq
}
