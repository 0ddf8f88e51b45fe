package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-stree/Trees/internal"
)

// NoKey is the key type of trees whose children aren't keyed.
type NoKey = struct{}

// Node of a Tree. A node owns its children through the storage policy of
// its tree, and caches the size and depth of its own subtree so that both
// are O(1) to read.
// Nodes are created by the insertion methods of Tree and Node. The zero
// value is a free-standing node: it has no storage, belongs to no tree and
// panics with OrphanError on structural mutation; it can only be the
// destination or source of Assign.
// Nodes taken out of their tree by Erase or Clear are detached: they keep
// their subtree but no longer take part in insertion, grafting or swapping,
// which panic or return OrphanError. A zero Node that was assigned to is
// detached as well; it can still be read, traversed and assigned.
type Node[K, T any] struct {
	data   T
	key    K
	size   int
	depth  internal.Depth[uint] // depth.Max()+1 is the height of the subtree.
	parent *Node[K, T]
	tree   *Tree[K, T] // only set on roots.
	kids   kids[K, T]
	slot   int    // index in a raw parent.
	stamp  uint64 // insertion stamp in an ordered parent.
}

// leaf returns a fresh childless node with storage spawned from like.
func leaf[K, T any](like kids[K, T]) *Node[K, T] {
	n := &Node[K, T]{size: 1, kids: like.spawn()}
	n.depth.Insert(0)
	return n
}

// Data returns the payload.
func (u *Node[K, T]) Data() T {
	return u.data
}

// SetData replaces the payload. Under an ordered parent the node is moved to
// the position of its new payload, behind the children with an equal one.
func (u *Node[K, T]) SetData(v T) {
	if p := u.parent; p != nil && p.kids.policy() == Ordered {
		p.kids.remove(u)
		u.data = v
		p.kids.add(u)
		return
	}
	u.data = v
}

// Key under which the node is stored in its parent. Only meaningful in keyed trees.
func (u *Node[K, T]) Key() K {
	return u.key
}

// Policy of the node's child storage.
func (u *Node[K, T]) Policy() Policy {
	return u.mustKids("Policy").policy()
}

// Ply is the distance from the root, the root has ply 0.
// Time: O(ply)
func (u *Node[K, T]) Ply() (p int) {
	for q := u.parent; q != nil; q = q.parent {
		p++
	}
	return
}

// Depth is the height of the subtree rooted at u, 1 for a leaf.
// Time: O(1)
func (u *Node[K, T]) Depth() int {
	if u.kids == nil {
		return 0
	}
	return u.depth.Max() + 1
}

// SubtreeSize is the number of nodes in the subtree rooted at u, u included.
// Time: O(1)
func (u *Node[K, T]) SubtreeSize() int {
	return u.size
}

// IsRoot returns whether u has no parent.
func (u *Node[K, T]) IsRoot() bool {
	return u.parent == nil
}

// Parent of u, ParentError if u is a root.
func (u *Node[K, T]) Parent() (*Node[K, T], error) {
	if u.parent == nil {
		return nil, &ParentError{"Parent"}
	}
	return u.parent, nil
}

// Tree owning u, OrphanError if u isn't attached to any.
// Time: O(ply)
func (u *Node[K, T]) Tree() (*Tree[K, T], error) {
	if t := u.top().tree; t != nil {
		return t, nil
	}
	return nil, &OrphanError{"Tree"}
}

// top is the topmost ancestor of u, u itself if it has no parent.
func (u *Node[K, T]) top() *Node[K, T] {
	q := u
	for q.parent != nil {
		q = q.parent
	}
	return q
}

// attached returns whether u belongs to a tree. Erased nodes and copies
// assigned into a zero Node don't.
func (u *Node[K, T]) attached() bool {
	return u.kids != nil && u.top().tree != nil
}

// mustAttached panics with OrphanError unless u belongs to a tree.
func (u *Node[K, T]) mustAttached(op string) {
	if !u.attached() {
		panic(&OrphanError{op})
	}
}

// IsAncestor returns whether u is a proper ancestor of n.
// Time: O(n.Ply())
func (u *Node[K, T]) IsAncestor(n *Node[K, T]) bool {
	for q := n.parent; q != nil; q = q.parent {
		if q == u {
			return true
		}
	}
	return false
}

// Size is the number of children.
func (u *Node[K, T]) Size() int {
	if u.kids == nil {
		return 0
	}
	return u.kids.len()
}

// Empty returns whether u has no children.
func (u *Node[K, T]) Empty() bool {
	return u.Size() == 0
}

// Begin cursor at the first child.
func (u *Node[K, T]) Begin() Iter[K, T] {
	if u.kids == nil {
		return Iter[K, T]{owner: u}
	}
	return Iter[K, T]{u, u.kids.first()}
}

// End cursor.
func (u *Node[K, T]) End() Iter[K, T] {
	return Iter[K, T]{owner: u}
}

// Children of u in storage order.
func (u *Node[K, T]) Children() iter.Seq[*Node[K, T]] {
	return func(yield func(*Node[K, T]) bool) {
		if u.kids == nil {
			return
		}
		for c := u.kids.first(); c != nil; c = u.kids.next(c) {
			if !yield(c) {
				return
			}
		}
	}
}

func (u *Node[K, T]) mustKids(op string) kids[K, T] {
	if u.kids == nil {
		panic(&OrphanError{op})
	}
	return u.kids
}

// adopt n, which u's storage already holds, and percolate its size and
// depth histogram up to the root.
// Time: O(ply * n.Depth())
func (u *Node[K, T]) adopt(n *Node[K, T]) {
	n.parent, n.tree = u, nil
	for q, d := u, 1; q != nil; q, d = q.parent, d+1 {
		q.size += n.size
		q.depth.Merge(&n.depth, d)
	}
}

// prune is the inverse of adopt, it doesn't touch u's storage.
// Time: O(ply * n.Depth())
func (u *Node[K, T]) prune(n *Node[K, T]) {
	u.unwind(n, 1)
}

// unwind subtracts the size and histogram of n, which lies d levels below u,
// from u and all its ancestors.
func (u *Node[K, T]) unwind(n *Node[K, T], d int) {
	for q := u; q != nil; q, d = q.parent, d+1 {
		q.size -= n.size
		q.depth.Split(&n.depth, d)
	}
}

// drop the child n: remove it from storage, prune it and detach it.
func (u *Node[K, T]) drop(n *Node[K, T]) {
	u.kids.remove(n)
	u.prune(n)
	n.parent = nil
}

// excise u from wherever it's attached, leaving it free-standing with its
// subtree intact.
func (u *Node[K, T]) excise() {
	if p := u.parent; p != nil {
		p.drop(u)
	} else if t := u.tree; t != nil {
		if t.root == u {
			t.root = nil
		}
		u.tree = nil
	}
}

// replica returns a free-standing deep copy of u whose storage is spawned
// from like. Keys are preserved; sizes and depths are rebuilt from what the
// destination storage accepted. Recursive.
func (u *Node[K, T]) replica(like kids[K, T]) *Node[K, T] {
	n := leaf(like)
	n.data, n.key = u.data, u.key
	if u.kids == nil {
		return n
	}
	for c := u.kids.first(); c != nil; c = u.kids.next(c) {
		cc := c.replica(like)
		if n.kids.add(cc) {
			cc.parent = n
			n.size += cc.size
			n.depth.Merge(&cc.depth, 1)
		}
	}
	return n
}

// checkMove validates moving src under u. Both must belong to a tree.
func (u *Node[K, T]) checkMove(op string, src *Node[K, T]) error {
	if !src.attached() || !u.attached() {
		return &OrphanError{op}
	}
	if u == src || src.IsAncestor(u) {
		return &CycleError{op}
	}
	if p := src.kids.policy(); p != u.kids.policy() {
		return &PolicyError{op, p}
	}
	return nil
}
