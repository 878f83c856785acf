package vmf

// worldID is implicitly assigned to the world block; allocation for
// every other block starts right after it.
const worldID = 1

// idAllocator hands out the strictly increasing block ids of one
// document. Each Generate call owns its own allocator, so concurrent
// generations never interfere.
type idAllocator struct {
	next int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{next: worldID + 1}
}

func (a *idAllocator) alloc() int {
	id := a.next
	a.next++
	return id
}
