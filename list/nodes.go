package list

// Index of the sentinel node. The sentinel is allocated first and never
// released, it sits before the first element and after the last one. When it
// is selected, the list has no selection.
const sentinel = 0

type node[T any] struct {
	back  int
	next  int
	value T
}

// nodes is the table of nodes backing a list. Nodes reference each other by
// their index in the table, which remains stable for as long as a node is
// linked.
//
// Released slots are chained through their next field, starting at free. The
// sentinel is never released, so a free index of zero means that there are no
// slots to reuse.
type nodes[T any] struct {
	slots []node[T]
	free  int
}

func (t *nodes[T]) init(def T, capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	t.slots = make([]node[T], 1, capacity+1)
	// back and next are zero, the sentinel links to itself.
	t.slots[sentinel].value = def
	t.free = 0
}

func (t *nodes[T]) at(i int) *node[T] {
	return &t.slots[i]
}

// alloc returns the index of an unlinked node holding v. The table may grow,
// so pointers to nodes must not be retained across calls to alloc.
func (t *nodes[T]) alloc(v T) int {
	if i := t.free; i != 0 {
		t.free = t.slots[i].next
		t.slots[i] = node[T]{value: v}
		return i
	}
	t.slots = append(t.slots, node[T]{value: v})
	return len(t.slots) - 1
}

// release puts the slot at index i back in the free list. The value is
// cleared so the table does not retain references to removed elements.
func (t *nodes[T]) release(i int) {
	t.slots[i] = node[T]{back: -1, next: t.free}
	t.free = i
}

// splice links the node at index i between back and next, which must be
// adjacent.
func (t *nodes[T]) splice(i, back, next int) {
	n := &t.slots[i]
	n.back = back
	n.next = next
	t.slots[back].next = i
	t.slots[next].back = i
}

func (t *nodes[T]) unlink(i int) {
	n := &t.slots[i]
	t.slots[n.back].next = n.next
	t.slots[n.next].back = n.back
}

// reverse swaps the back and next links of every node in the chain. The
// sentinel is swapped like any other node, which makes the old last element
// the new first one.
func (t *nodes[T]) reverse() {
	i := sentinel
	for {
		n := &t.slots[i]
		n.back, n.next = n.next, n.back
		if i = n.back; i == sentinel {
			break
		}
	}
}
