package Trees

// Iter is a cursor over the children of one node. Whatever the storage
// policy keeps for a child (the node itself, or a key bound to it), Iter
// yields the child node. Ordered and keyed storage only support this
// forward/backward category; raw storage also offers SeqIter.
// A cursor past the last child is the end cursor. All end cursors are
// equal, the zero value included.
// Cursors are invalidated by removal of the child they point at.
type Iter[K, T any] struct {
	owner *Node[K, T]
	cur   *Node[K, T]
}

// Valid returns whether the cursor points at a child.
func (u Iter[K, T]) Valid() bool {
	return u.cur != nil
}

// Node the cursor points at, nil for the end cursor.
func (u Iter[K, T]) Node() *Node[K, T] {
	return u.cur
}

// Next cursor. Next of the end cursor is the end cursor.
// Time: O(1) for raw storage, O(log n) otherwise.
func (u Iter[K, T]) Next() Iter[K, T] {
	if u.cur == nil {
		return u
	}
	return Iter[K, T]{u.owner, u.owner.kids.next(u.cur)}
}

// Prev cursor. Prev of the end cursor is the last child of the owner when
// the owner is known.
func (u Iter[K, T]) Prev() Iter[K, T] {
	if u.owner == nil || u.owner.kids == nil {
		return u
	}
	if u.cur == nil {
		return Iter[K, T]{u.owner, u.owner.kids.last()}
	}
	return Iter[K, T]{u.owner, u.owner.kids.prev(u.cur)}
}

// Equal cursors point at the same child, or are both end cursors.
func (u Iter[K, T]) Equal(o Iter[K, T]) bool {
	return u.cur == o.cur
}

// SeqIter is a random access cursor over raw children.
type SeqIter[K, T any] struct {
	owner *Node[K, T]
	i     int
}

func (u SeqIter[K, T]) s() []*Node[K, T] {
	if u.owner == nil {
		return nil
	}
	return u.owner.kids.(*rawKids[K, T]).s
}

// Valid returns whether the cursor points at a child.
func (u SeqIter[K, T]) Valid() bool {
	return u.i >= 0 && u.i < len(u.s())
}

// Index of the child within its siblings.
func (u SeqIter[K, T]) Index() int {
	return u.i
}

// Node the cursor points at, nil if not Valid.
func (u SeqIter[K, T]) Node() *Node[K, T] {
	return u.At(0)
}

// At returns the child d positions away from the cursor, nil if out of range.
func (u SeqIter[K, T]) At(d int) *Node[K, T] {
	if s, j := u.s(), u.i+d; j >= 0 && j < len(s) {
		return s[j]
	}
	return nil
}

func (u SeqIter[K, T]) Next() SeqIter[K, T] {
	return u.Add(1)
}

func (u SeqIter[K, T]) Prev() SeqIter[K, T] {
	return u.Add(-1)
}

// Add moves the cursor by d positions.
func (u SeqIter[K, T]) Add(d int) SeqIter[K, T] {
	u.i += d
	return u
}

// Diff returns the distance from o to u.
func (u SeqIter[K, T]) Diff(o SeqIter[K, T]) int {
	return u.i - o.i
}

func (u SeqIter[K, T]) Less(o SeqIter[K, T]) bool {
	return u.i < o.i
}

func (u SeqIter[K, T]) Equal(o SeqIter[K, T]) bool {
	return u.owner == o.owner && u.i == o.i
}

// Iter converts to the forward cursor category.
func (u SeqIter[K, T]) Iter() Iter[K, T] {
	return Iter[K, T]{u.owner, u.Node()}
}
