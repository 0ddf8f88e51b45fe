package Trees

// Policy selects how a node stores its children.
type Policy byte

const (
	// Raw children are kept in insertion order and are indexable.
	Raw Policy = iota
	// Ordered children are kept sorted by payload; equal payloads are allowed
	// and keep their insertion order.
	Ordered
	// Keyed children are indexed by a unique external key.
	Keyed
)

func (p Policy) String() string {
	switch p {
	case Raw:
		return "raw"
	case Ordered:
		return "ordered"
	case Keyed:
		return "keyed"
	}
	return "unknown"
}

// kids is the container owning the children of one node. Implementations
// only hold the children, all structural bookkeeping is done by Node.
type kids[K, T any] interface {
	policy() Policy
	len() int
	// first child, nil when empty.
	first() *Node[K, T]
	// last child, nil when empty.
	last() *Node[K, T]
	// next child after c, nil after the last child.
	next(c *Node[K, T]) *Node[K, T]
	// prev child before c, nil before the first child.
	prev(c *Node[K, T]) *Node[K, T]
	// add c, returning false if the policy rejects it. A rejected c is untouched.
	add(c *Node[K, T]) bool
	// remove c and return the slot it occupied, or -1 if the policy has no slots.
	remove(c *Node[K, T]) int
	// addAt puts c into the slot returned by remove. Policies without slots ignore it.
	addAt(slot int, c *Node[K, T]) bool
	// clear drops all children without touching them.
	clear()
	// spawn an empty container of the same policy and configuration.
	spawn() kids[K, T]
}
