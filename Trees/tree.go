package Trees

import (
	"cmp"
	"iter"
)

// Tree is a rooted multi-way tree holding payloads of type T. It owns at most
// one root node; everything else hangs below it. How children are stored is
// fixed at construction by the storage policy: Raw (insertion ordered,
// indexable), Ordered (sorted by payload) or Keyed (by a unique key of type K).
// Raw and ordered trees use NoKey as K.
// The zero value is an empty raw tree.
// Trees aren't safe for concurrent use; cursors and iterators are
// invalidated by mutations removing or moving the nodes they reference.
type Tree[K, T any] struct {
	root  *Node[K, T]
	proto kids[K, T] // empty storage every root is spawned from.
}

// NewRaw returns an empty tree keeping children in insertion order.
func NewRaw[T any]() *Tree[NoKey, T] {
	return &Tree[NoKey, T]{proto: new(rawKids[NoKey, T])}
}

// NewOrdered returns an empty tree keeping children sorted by cmp over payloads.
func NewOrdered[T any](cmp func(a, b T) int) *Tree[NoKey, T] {
	return NewOrderedDegree(cmp, DefaultDegree)
}

// NewOrderedDegree is NewOrdered with the degree of the B-trees holding the
// children. degree<2 means DefaultDegree.
func NewOrderedDegree[T any](cmp func(a, b T) int, degree int) *Tree[NoKey, T] {
	return &Tree[NoKey, T]{proto: &orderedKids[NoKey, T]{pol: newOrderedPolicy[NoKey](cmp, degree)}}
}

// NewOrderedOf returns an empty tree keeping children in ascending order of payload.
func NewOrderedOf[T cmp.Ordered]() *Tree[NoKey, T] {
	return NewOrdered(cmp.Compare[T])
}

// NewKeyed returns an empty tree storing children under unique keys ordered by cmp.
func NewKeyed[K, T any](cmp func(a, b K) int) *Tree[K, T] {
	return &Tree[K, T]{proto: &keyedKids[K, T]{pol: &keyedPolicy[K]{cmp}}}
}

// NewKeyedOf returns an empty tree storing children under unique keys in ascending order.
func NewKeyedOf[K cmp.Ordered, T any]() *Tree[K, T] {
	return NewKeyed[K, T](cmp.Compare[K])
}

func (u *Tree[K, T]) kids() kids[K, T] {
	if u.proto == nil {
		u.proto = new(rawKids[K, T])
	}
	return u.proto
}

// Policy of the tree's child storage.
func (u *Tree[K, T]) Policy() Policy {
	return u.kids().policy()
}

// plant n as the root.
func (u *Tree[K, T]) plant(n *Node[K, T]) {
	u.root, n.parent, n.tree = n, nil, u
}

// Empty returns whether the tree has no root.
func (u *Tree[K, T]) Empty() bool {
	return u.root == nil
}

// Size is the number of nodes, 0 when empty.
// Time: O(1)
func (u *Tree[K, T]) Size() int {
	if u.root == nil {
		return 0
	}
	return u.root.size
}

// Depth is the number of levels, 0 when empty.
// Time: O(1)
func (u *Tree[K, T]) Depth() int {
	if u.root == nil {
		return 0
	}
	return u.root.Depth()
}

// Root node, EmptyError if there's none.
func (u *Tree[K, T]) Root() (*Node[K, T], error) {
	if u.root == nil {
		return nil, &EmptyError{"Root"}
	}
	return u.root, nil
}

// Insert replaces the whole tree by a single root holding v.
func (u *Tree[K, T]) Insert(v T) *Node[K, T] {
	u.Clear()
	n := leaf(u.kids())
	n.data = v
	u.plant(n)
	return n
}

// InsertNode replaces the whole tree by a deep copy of the subtree rooted at
// src. src may belong to u.
func (u *Tree[K, T]) InsertNode(src *Node[K, T]) *Node[K, T] {
	n := src.replica(u.kids())
	u.Clear()
	u.plant(n)
	return n
}

// InsertTree replaces the whole tree by a deep copy of src. Same as Assign.
func (u *Tree[K, T]) InsertTree(src *Tree[K, T]) {
	u.Assign(src)
}

// Graft moves the subtree rooted at src to replace the whole tree. The rest
// of the tree src came from stays there; if that's u, it's discarded.
// Returns PolicyError if src's storage policy differs from u's and
// OrphanError if src is detached.
func (u *Tree[K, T]) Graft(src *Node[K, T]) error {
	if !src.attached() {
		return &OrphanError{"Graft"}
	}
	if p := src.kids.policy(); p != u.Policy() {
		return &PolicyError{"Graft", p}
	}
	if src == u.root {
		return nil
	}
	src.excise()
	u.Clear()
	u.plant(src)
	return nil
}

// GraftTree moves the content of src into u, leaving src empty. An empty src
// empties u.
func (u *Tree[K, T]) GraftTree(src *Tree[K, T]) error {
	if src == u {
		return nil
	}
	if src.Empty() {
		u.Erase()
		return nil
	}
	return u.Graft(src.root)
}

// Erase the root, and with it the whole tree. No-op on an empty tree.
func (u *Tree[K, T]) Erase() {
	if u.root != nil {
		u.root.tree = nil
		u.root = nil
	}
}

// Clear is Erase.
func (u *Tree[K, T]) Clear() {
	u.Erase()
}

// Swap the contents of u and o, storage policies included.
func (u *Tree[K, T]) Swap(o *Tree[K, T]) {
	if u == o {
		return
	}
	*u, *o = *o, *u
	if u.root != nil {
		u.root.tree = u
	}
	if o.root != nil {
		o.root.tree = o
	}
}

// Assign replaces the content of u by a deep copy of src. u keeps its own
// storage policy, children are re-inserted through it. A non-empty u keeps
// its root node, which takes src's payload; an empty src empties u.
func (u *Tree[K, T]) Assign(src *Tree[K, T]) {
	switch {
	case src == u:
	case src.Empty():
		u.Clear()
	case u.root == nil:
		u.InsertNode(src.root)
	default:
		// roots of distinct trees are never related, Assign can't fail.
		u.root.Assign(src.root)
	}
}

// Clone returns a deep copy of u with the same storage policy.
func (u *Tree[K, T]) Clone() *Tree[K, T] {
	c := &Tree[K, T]{proto: u.kids().spawn()}
	c.Assign(u)
	return c
}

// Begin is BFBegin.
func (u *Tree[K, T]) Begin() *BFIter[K, T] {
	return u.BFBegin()
}

// BFBegin breadth first iterator at the root.
func (u *Tree[K, T]) BFBegin() *BFIter[K, T] {
	return newBFIter(u.root)
}

// PreBegin depth first pre-order iterator at the root.
func (u *Tree[K, T]) PreBegin() *PreIter[K, T] {
	return newPreIter(u.root)
}

// PostBegin depth first post-order iterator at the first leaf.
func (u *Tree[K, T]) PostBegin() *PostIter[K, T] {
	return newPostIter(u.root)
}

// BreadthFirst iterates over all nodes level by level.
func (u *Tree[K, T]) BreadthFirst() iter.Seq[*Node[K, T]] {
	return u.BFBegin().All()
}

// PreOrder iterates over all nodes, parents before children.
func (u *Tree[K, T]) PreOrder() iter.Seq[*Node[K, T]] {
	return u.PreBegin().All()
}

// PostOrder iterates over all nodes, children before parents.
func (u *Tree[K, T]) PostOrder() iter.Seq[*Node[K, T]] {
	return u.PostBegin().All()
}
