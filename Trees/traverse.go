package Trees

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-stree/Queues"
)

// BFIter walks a subtree breadth first. Its state is the queue of nodes
// still to visit; the front is the current node. The exhausted iterator has
// an empty queue and equals the zero value, which serves as the end sentinel.
// Copies made by assignment share state, use Clone for an independent one.
type BFIter[K, T any] struct {
	q *Queues.ArrayQueue[*Node[K, T]]
}

func newBFIter[K, T any](n *Node[K, T]) *BFIter[K, T] {
	it := new(BFIter[K, T])
	if n != nil {
		it.q = Queues.MakeArrayQueue[*Node[K, T]](4)
		it.q.Push(n)
	}
	return it
}

// BFBegin breadth first iterator starting at u.
func (u *Node[K, T]) BFBegin() *BFIter[K, T] {
	return newBFIter(u)
}

// Valid returns whether the iterator is at a node.
func (u *BFIter[K, T]) Valid() bool {
	return u.q != nil && !u.q.Empty()
}

// Node the iterator is at, nil when exhausted.
func (u *BFIter[K, T]) Node() *Node[K, T] {
	if u.q == nil {
		return nil
	}
	return u.q.Peek()
}

// Next moves to the following node. No-op when exhausted.
// Time: O(children of the current node)
func (u *BFIter[K, T]) Next() {
	if !u.Valid() {
		return
	}
	f, _ := u.q.Pop()
	for c := range f.Children() {
		u.q.Push(c)
	}
}

// Clone returns an independent iterator at the same position.
func (u *BFIter[K, T]) Clone() *BFIter[K, T] {
	if u.q == nil {
		return new(BFIter[K, T])
	}
	return &BFIter[K, T]{u.q.Clone()}
}

// Equal iterators have the same pending nodes in the same order.
func (u *BFIter[K, T]) Equal(o *BFIter[K, T]) bool {
	return Queues.Equal(u.q, o.q)
}

// All yields the remaining nodes, advancing u.
func (u *BFIter[K, T]) All() iter.Seq[*Node[K, T]] {
	return func(yield func(*Node[K, T]) bool) {
		for ; u.Valid(); u.Next() {
			if !yield(u.Node()) {
				return
			}
		}
	}
}

// frame of a depth first walk: a node and the cursor over its children.
type frame[K, T any] struct {
	n       *Node[K, T]
	c       Iter[K, T]
	visited bool
}

// frames is a stack of *frame shared by both depth first iterators.
type frames[K, T any] struct {
	st *arraystack.Stack
}

func (u *frames[K, T]) Valid() bool {
	return u.st != nil && !u.st.Empty()
}

func (u *frames[K, T]) top() *frame[K, T] {
	f, _ := u.st.Peek()
	return f.(*frame[K, T])
}

func (u *frames[K, T]) push(n *Node[K, T]) {
	if u.st == nil {
		u.st = arraystack.New()
	}
	u.st.Push(&frame[K, T]{n, n.Begin(), false})
}

func (u *frames[K, T]) pop() {
	u.st.Pop()
}

// Node the iterator is at, nil when exhausted.
func (u *frames[K, T]) Node() *Node[K, T] {
	if !u.Valid() {
		return nil
	}
	return u.top().n
}

func (u *frames[K, T]) clone() frames[K, T] {
	if !u.Valid() {
		return frames[K, T]{}
	}
	vs := u.st.Values() // top first
	c := arraystack.New()
	for i := len(vs) - 1; i >= 0; i-- {
		f := *vs[i].(*frame[K, T])
		c.Push(&f)
	}
	return frames[K, T]{c}
}

func (u *frames[K, T]) equal(o *frames[K, T]) bool {
	if !u.Valid() || !o.Valid() {
		return u.Valid() == o.Valid()
	}
	if u.st.Size() != o.st.Size() {
		return false
	}
	a, b := u.st.Values(), o.st.Values()
	for i := range a {
		fa, fb := a[i].(*frame[K, T]), b[i].(*frame[K, T])
		if fa.n != fb.n || !fa.c.Equal(fb.c) || fa.visited != fb.visited {
			return false
		}
	}
	return true
}

// PreIter walks a subtree depth first, visiting parents before their
// children. The exhausted iterator has an empty stack and equals the zero
// value. Copies made by assignment share state, use Clone.
type PreIter[K, T any] struct {
	frames[K, T]
}

func newPreIter[K, T any](n *Node[K, T]) *PreIter[K, T] {
	it := new(PreIter[K, T])
	if n != nil {
		it.push(n)
	}
	return it
}

// PreBegin depth first pre-order iterator starting at u.
func (u *Node[K, T]) PreBegin() *PreIter[K, T] {
	return newPreIter(u)
}

// Next moves to the following node. No-op when exhausted.
func (u *PreIter[K, T]) Next() {
	if !u.Valid() {
		return
	}
	if f := u.top(); !f.visited {
		f.visited = true
		if f.c.Valid() {
			u.push(f.c.cur)
			return
		}
	}
	for {
		if f := u.top(); f.c.Valid() {
			if f.c = f.c.Next(); f.c.Valid() {
				break
			}
		}
		u.pop()
		if !u.Valid() {
			return
		}
	}
	u.push(u.top().c.cur)
}

func (u *PreIter[K, T]) Clone() *PreIter[K, T] {
	return &PreIter[K, T]{u.clone()}
}

// Equal iterators have equal stacks of frames.
func (u *PreIter[K, T]) Equal(o *PreIter[K, T]) bool {
	return u.equal(&o.frames)
}

// All yields the remaining nodes, advancing u.
func (u *PreIter[K, T]) All() iter.Seq[*Node[K, T]] {
	return func(yield func(*Node[K, T]) bool) {
		for ; u.Valid(); u.Next() {
			if !yield(u.Node()) {
				return
			}
		}
	}
}

// PostIter walks a subtree depth first, visiting children before their
// parent. The exhausted iterator has an empty stack and equals the zero
// value. Copies made by assignment share state, use Clone.
type PostIter[K, T any] struct {
	frames[K, T]
}

func newPostIter[K, T any](n *Node[K, T]) *PostIter[K, T] {
	it := new(PostIter[K, T])
	if n != nil {
		it.push(n)
		it.descend()
	}
	return it
}

// PostBegin depth first post-order iterator starting at the first leaf under u.
func (u *Node[K, T]) PostBegin() *PostIter[K, T] {
	return newPostIter(u)
}

// descend from the top frame along first children to a leaf, which is then
// marked visited.
func (u *PostIter[K, T]) descend() {
	for f := u.top(); ; f = u.top() {
		if !f.c.Valid() {
			f.visited = true
			return
		}
		u.push(f.c.cur)
	}
}

// Next moves to the following node. No-op when exhausted.
func (u *PostIter[K, T]) Next() {
	if !u.Valid() {
		return
	}
	if u.top().visited {
		u.pop()
	}
	if !u.Valid() {
		return
	}
	f := u.top()
	if f.c = f.c.Next(); !f.c.Valid() {
		f.visited = true
		return
	}
	u.push(f.c.cur)
	u.descend()
}

func (u *PostIter[K, T]) Clone() *PostIter[K, T] {
	return &PostIter[K, T]{u.clone()}
}

// Equal iterators have equal stacks of frames.
func (u *PostIter[K, T]) Equal(o *PostIter[K, T]) bool {
	return u.equal(&o.frames)
}

// All yields the remaining nodes, advancing u.
func (u *PostIter[K, T]) All() iter.Seq[*Node[K, T]] {
	return func(yield func(*Node[K, T]) bool) {
		for ; u.Valid(); u.Next() {
			if !yield(u.Node()) {
				return
			}
		}
	}
}

// BreadthFirst iterates over the subtree rooted at u level by level.
func (u *Node[K, T]) BreadthFirst() iter.Seq[*Node[K, T]] {
	return u.BFBegin().All()
}

// PreOrder iterates over the subtree rooted at u, parents before children.
func (u *Node[K, T]) PreOrder() iter.Seq[*Node[K, T]] {
	return u.PreBegin().All()
}

// PostOrder iterates over the subtree rooted at u, children before parents.
func (u *Node[K, T]) PostOrder() iter.Seq[*Node[K, T]] {
	return u.PostBegin().All()
}
