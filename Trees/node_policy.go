package Trees

// Methods below are only defined for one storage policy and panic with
// PolicyError when called on a node of another.

func (u *Node[K, T]) raw(op string) *rawKids[K, T] {
	k, ok := u.mustKids(op).(*rawKids[K, T])
	if !ok {
		panic(&PolicyError{op, u.kids.policy()})
	}
	return k
}

func (u *Node[K, T]) ordered(op string) *orderedKids[K, T] {
	k, ok := u.mustKids(op).(*orderedKids[K, T])
	if !ok {
		panic(&PolicyError{op, u.kids.policy()})
	}
	return k
}

func (u *Node[K, T]) keyed(op string) *keyedKids[K, T] {
	k, ok := u.mustKids(op).(*keyedKids[K, T])
	if !ok {
		panic(&PolicyError{op, u.kids.policy()})
	}
	return k
}

// At returns the i-th child. Panics if i is out of range. Raw only.
func (u *Node[K, T]) At(i int) *Node[K, T] {
	return u.raw("At").s[i]
}

// PushBack appends a child holding v. Raw only.
func (u *Node[K, T]) PushBack(v T) *Node[K, T] {
	u.raw("PushBack")
	return u.Insert(v).cur
}

// PopBack erases the last child, if any. Raw only.
func (u *Node[K, T]) PopBack() {
	if n := u.raw("PopBack").last(); n != nil {
		u.drop(n)
	}
}

// Front returns the first child, nil if there's none. Raw only.
func (u *Node[K, T]) Front() *Node[K, T] {
	return u.raw("Front").first()
}

// Back returns the last child, nil if there's none. Raw only.
func (u *Node[K, T]) Back() *Node[K, T] {
	return u.raw("Back").last()
}

// SeqBegin random access cursor at the first child. Raw only.
func (u *Node[K, T]) SeqBegin() SeqIter[K, T] {
	u.raw("SeqBegin")
	return SeqIter[K, T]{u, 0}
}

// SeqEnd random access cursor past the last child. Raw only.
func (u *Node[K, T]) SeqEnd() SeqIter[K, T] {
	return SeqIter[K, T]{u, u.raw("SeqEnd").len()}
}

// SortChildren reorders the children stably by cmp. Raw only.
// Time: O(n log n)
func (u *Node[K, T]) SortChildren(cmp func(a, b *Node[K, T]) int) {
	u.raw("SortChildren").sort(cmp)
}

// Find returns a cursor at the first child whose payload is equal to v, End()
// if there's none. Ordered only.
// Time: O(log n)
func (u *Node[K, T]) Find(v T) Iter[K, T] {
	return Iter[K, T]{u, u.ordered("Find").find(v)}
}

// Count children whose payload equals v. Ordered only.
func (u *Node[K, T]) Count(v T) int {
	return u.ordered("Count").count(v)
}

// LowerBound cursor at the first child not less than v. Ordered only.
func (u *Node[K, T]) LowerBound(v T) Iter[K, T] {
	return Iter[K, T]{u, u.ordered("LowerBound").lowerBound(v)}
}

// UpperBound cursor at the first child greater than v. Ordered only.
func (u *Node[K, T]) UpperBound(v T) Iter[K, T] {
	return Iter[K, T]{u, u.ordered("UpperBound").upperBound(v)}
}

// EqualRange returns [LowerBound(v), UpperBound(v)). Ordered only.
func (u *Node[K, T]) EqualRange(v T) (Iter[K, T], Iter[K, T]) {
	return u.LowerBound(v), u.UpperBound(v)
}

// EraseValue erases every child whose payload equals v and returns how many
// were erased. Ordered only.
func (u *Node[K, T]) EraseValue(v T) int {
	c := u.Count(v)
	if c > 0 {
		u.EraseRange(u.EqualRange(v))
	}
	return c
}

// Get returns the child stored under k, inserting one holding the zero
// payload if there's none. Keyed only.
func (u *Node[K, T]) Get(k K) *Node[K, T] {
	it, _ := u.InsertKey(k, *new(T))
	return it.cur
}

// Lookup returns the child stored under k, MissingError if there's none.
// Unlike Get it never modifies u. Keyed only.
func (u *Node[K, T]) Lookup(k K) (*Node[K, T], error) {
	if n := u.keyed("Lookup").find(k); n != nil {
		return n, nil
	}
	return nil, &MissingError{"Lookup", k}
}

// FindKey cursor at the child stored under k, End() if there's none. Keyed only.
func (u *Node[K, T]) FindKey(k K) Iter[K, T] {
	return Iter[K, T]{u, u.keyed("FindKey").find(k)}
}

// CountKey is 1 if a child is stored under k, 0 otherwise. Keyed only.
func (u *Node[K, T]) CountKey(k K) int {
	if u.keyed("CountKey").find(k) != nil {
		return 1
	}
	return 0
}

// LowerBoundKey cursor at the first child whose key isn't less than k. Keyed only.
func (u *Node[K, T]) LowerBoundKey(k K) Iter[K, T] {
	return Iter[K, T]{u, u.keyed("LowerBoundKey").ceil(k, false)}
}

// UpperBoundKey cursor at the first child whose key is greater than k. Keyed only.
func (u *Node[K, T]) UpperBoundKey(k K) Iter[K, T] {
	return Iter[K, T]{u, u.keyed("UpperBoundKey").ceil(k, true)}
}

// EqualRangeKey returns [LowerBoundKey(k), UpperBoundKey(k)). Keyed only.
func (u *Node[K, T]) EqualRangeKey(k K) (Iter[K, T], Iter[K, T]) {
	return u.LowerBoundKey(k), u.UpperBoundKey(k)
}

// EraseKey erases the child stored under k and returns how many were erased,
// 0 or 1. Keyed only.
func (u *Node[K, T]) EraseKey(k K) int {
	if n := u.keyed("EraseKey").find(k); n != nil {
		u.drop(n)
		return 1
	}
	return 0
}

// InsertKey inserts a child holding v under k. If k is taken nothing
// changes, and the cursor at the existing child is returned with false.
// Keyed only, panics with OrphanError if u is detached.
func (u *Node[K, T]) InsertKey(k K, v T) (Iter[K, T], bool) {
	u.mustAttached("InsertKey")
	kk := u.keyed("InsertKey")
	if n := kk.find(k); n != nil {
		return Iter[K, T]{u, n}, false
	}
	n := leaf[K, T](kk)
	n.key, n.data = k, v
	kk.add(n)
	u.adopt(n)
	return Iter[K, T]{u, n}, true
}

// InsertKeyNode inserts a deep copy of src under k. The copy takes k as
// its key, keys below it are preserved. If k is taken nothing changes.
// Keyed only.
func (u *Node[K, T]) InsertKeyNode(k K, src *Node[K, T]) (Iter[K, T], bool) {
	u.mustAttached("InsertKeyNode")
	kk := u.keyed("InsertKeyNode")
	if n := kk.find(k); n != nil {
		return Iter[K, T]{u, n}, false
	}
	n := src.replica(kk)
	n.key = k
	kk.add(n)
	u.adopt(n)
	return Iter[K, T]{u, n}, true
}

// InsertKeyTree inserts a deep copy of src under k. Empty src inserts nothing.
// Keyed only.
func (u *Node[K, T]) InsertKeyTree(k K, src *Tree[K, T]) (Iter[K, T], bool) {
	if src.Empty() {
		u.mustAttached("InsertKeyTree")
		u.keyed("InsertKeyTree")
		return u.End(), false
	}
	return u.InsertKeyNode(k, src.root)
}

// GraftKey moves the subtree rooted at src under u, stored under k. src
// takes k as its key. If k is taken by another child it returns false and
// nothing changes. Errors are those of Graft. Keyed only.
func (u *Node[K, T]) GraftKey(k K, src *Node[K, T]) (bool, error) {
	kk := u.keyed("GraftKey")
	if err := u.checkMove("GraftKey", src); err != nil {
		return false, err
	}
	if n := kk.find(k); n != nil {
		return n == src, nil
	}
	src.excise()
	src.key = k
	kk.add(src)
	u.adopt(src)
	return true, nil
}

// GraftKeyTree grafts the root of src under k. Empty src is a no-op.
func (u *Node[K, T]) GraftKeyTree(k K, src *Tree[K, T]) (bool, error) {
	if src.Empty() {
		return false, nil
	}
	return u.GraftKey(k, src.root)
}
