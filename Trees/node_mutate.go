package Trees

// insertion, removal and relocation of subtrees. Every method funnels into
// adopt/prune so sizes and depths stay exact after each call.

func (u *Node[K, T]) unkeyed(op string) kids[K, T] {
	k := u.mustKids(op)
	if k.policy() == Keyed {
		panic(&PolicyError{op, Keyed})
	}
	return k
}

// Insert a new child holding v. Panics on keyed nodes, use InsertKey, and
// on detached ones.
// Time: O(ply) plus the storage insertion.
func (u *Node[K, T]) Insert(v T) Iter[K, T] {
	u.mustAttached("Insert")
	k := u.unkeyed("Insert")
	n := leaf(k)
	n.data = v
	k.add(n)
	u.adopt(n)
	return Iter[K, T]{u, n}
}

// InsertNode inserts a deep copy of the subtree rooted at src as a new child.
// src may be anywhere, u and its ancestors included, since the copy is made
// before anything changes. Panics on keyed nodes, use InsertKeyNode.
// Time: O(src.SubtreeSize()) plus the accounting.
func (u *Node[K, T]) InsertNode(src *Node[K, T]) Iter[K, T] {
	u.mustAttached("InsertNode")
	k := u.unkeyed("InsertNode")
	n := src.replica(k)
	k.add(n)
	u.adopt(n)
	return Iter[K, T]{u, n}
}

// InsertTree inserts a deep copy of src. Inserting an empty tree does
// nothing and returns End().
func (u *Node[K, T]) InsertTree(src *Tree[K, T]) Iter[K, T] {
	if src.Empty() {
		u.mustAttached("InsertTree")
		u.unkeyed("InsertTree")
		return u.End()
	}
	return u.InsertNode(src.root)
}

// Graft moves the subtree rooted at src, from whatever tree it's in, to
// become a child of u. Nodes aren't copied. Returns CycleError if u is src
// or lies under it, and PolicyError if src belongs to a tree with a
// different storage policy, and OrphanError if either node is detached;
// nothing is modified in those cases. Panics on keyed nodes, use GraftKey.
func (u *Node[K, T]) Graft(src *Node[K, T]) error {
	k := u.unkeyed("Graft")
	if err := u.checkMove("Graft", src); err != nil {
		return err
	}
	src.excise()
	k.add(src)
	u.adopt(src)
	return nil
}

// GraftTree grafts the root of src, leaving src empty. Empty src is a no-op.
func (u *Node[K, T]) GraftTree(src *Tree[K, T]) error {
	if src.Empty() {
		return nil
	}
	return u.Graft(src.root)
}

// EraseAt removes the child at it together with its subtree and returns the
// cursor to the following child.
func (u *Node[K, T]) EraseAt(it Iter[K, T]) Iter[K, T] {
	n := it.cur
	if n == nil {
		return u.End()
	}
	next := u.kids.next(n)
	u.drop(n)
	return Iter[K, T]{u, next}
}

// EraseRange removes the children in [first, last) and returns last.
func (u *Node[K, T]) EraseRange(first, last Iter[K, T]) Iter[K, T] {
	var ns []*Node[K, T]
	for it := first; it.Valid() && !it.Equal(last); it = it.Next() {
		ns = append(ns, it.cur)
	}
	for _, n := range ns {
		u.drop(n)
	}
	return Iter[K, T]{u, last.cur}
}

// Erase removes u with its subtree from its parent. Erasing a root empties
// its tree. A free-standing node is left alone.
func (u *Node[K, T]) Erase() {
	if p := u.parent; p != nil {
		p.drop(u)
	} else if u.tree != nil {
		u.tree.Erase()
	}
}

// Clear removes all children of u. u itself stays.
func (u *Node[K, T]) Clear() {
	if u.kids == nil || u.kids.len() == 0 {
		return
	}
	ns := make([]*Node[K, T], 0, u.kids.len())
	for c := u.kids.first(); c != nil; c = u.kids.next(c) {
		ns = append(ns, c)
	}
	u.kids.clear()
	for _, n := range ns {
		if p := u.parent; p != nil {
			p.unwind(n, 2)
		}
		n.parent = nil
	}
	u.size = 1
	u.depth.Reset(0)
}

// place n into the position described by p, t and slot.
func place[K, T any](n, p *Node[K, T], t *Tree[K, T], slot int) {
	if p != nil {
		p.kids.addAt(slot, n)
		p.adopt(n)
	} else if t != nil {
		t.plant(n)
	}
}

// Swap exchanges the positions of the subtrees rooted at u and o, which may
// be in different trees or be roots. Keys stay with the positions. Returns
// CycleError if one is an ancestor of the other and OrphanError if either
// is detached, leaving both untouched.
func (u *Node[K, T]) Swap(o *Node[K, T]) error {
	if !u.attached() || !o.attached() {
		return &OrphanError{"Swap"}
	}
	if u == o {
		return nil
	}
	if u.IsAncestor(o) || o.IsAncestor(u) {
		return &CycleError{"Swap"}
	}
	if pu, po := u.kids.policy(), o.kids.policy(); pu != po {
		return &PolicyError{"Swap", po}
	}
	pa, pb := u.parent, o.parent
	if pa != nil && pa == pb {
		if s, ok := pa.kids.(*rawKids[K, T]); ok {
			s.s[u.slot], s.s[o.slot] = o, u
			u.slot, o.slot = o.slot, u.slot
			return nil
		}
	}
	ta, tb := u.tree, o.tree
	ia, ib := -1, -1
	if pa != nil {
		ia = pa.kids.remove(u)
		pa.prune(u)
	} else if ta != nil {
		ta.root = nil
	}
	if pb != nil {
		ib = pb.kids.remove(o)
		pb.prune(o)
	} else if tb != nil {
		tb.root = nil
	}
	u.key, o.key = o.key, u.key
	u.parent, o.parent, u.tree, o.tree = nil, nil, nil, nil
	place(o, pa, ta, ia)
	place(u, pb, tb, ib)
	return nil
}

// Assign replaces the payload and children of u by a deep copy of those of
// src. u keeps its position and key. If u lies under src the copy would
// contain u, so CycleError is returned. If src lies under u it's taken
// out of u before u is cleared.
// Assigning a zero Node clears u and resets its payload. Assigning into a
// zero Node makes it a free-standing copy of src.
func (u *Node[K, T]) Assign(src *Node[K, T]) error {
	if u == src {
		return nil
	}
	if src.kids == nil {
		if u.kids != nil {
			u.Clear()
			u.SetData(src.data)
		}
		return nil
	}
	if src.IsAncestor(u) {
		return &CycleError{"Assign"}
	}
	if u.kids == nil {
		*u = *leaf(src.kids)
	}
	if u.IsAncestor(src) {
		src.excise()
	}
	u.Clear()
	u.SetData(src.data)
	for c := src.kids.first(); c != nil; c = src.kids.next(c) {
		n := c.replica(u.kids)
		if u.kids.add(n) {
			u.adopt(n)
		}
	}
	return nil
}
