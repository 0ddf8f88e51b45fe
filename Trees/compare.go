package Trees

import "cmp"

// keyCmp returns the key comparison of u's children, nil unless they're keyed.
func (u *Node[K, T]) keyCmp() func(a, b K) int {
	if k, ok := u.kids.(*keyedKids[K, T]); ok {
		return k.pol.cmp
	}
	return nil
}

// Equal returns whether the subtrees rooted at u and o have equal payloads
// by eq and the same shape, children compared in storage order. Keys of
// keyed children are part of the comparison; u's and o's own keys aren't.
// Time: O(min(u.SubtreeSize(), o.SubtreeSize()))
func (u *Node[K, T]) Equal(o *Node[K, T], eq func(a, b T) bool) bool {
	if u == o {
		return true
	}
	if !eq(u.data, o.data) || u.Size() != o.Size() || u.size != o.size {
		return false
	}
	kc := u.keyCmp()
	for a, b := u.Begin(), o.Begin(); a.Valid(); a, b = a.Next(), b.Next() {
		if kc != nil && kc(a.cur.key, b.cur.key) != 0 {
			return false
		}
		if !a.cur.Equal(b.cur, eq) {
			return false
		}
	}
	return true
}

// Compare orders subtrees lexicographically: first by payload, then child
// by child in storage order, a keyed child by its key before its subtree.
// A node whose children are a prefix of the other's sorts first.
func (u *Node[K, T]) Compare(o *Node[K, T], cmp func(a, b T) int) int {
	if u == o {
		return 0
	}
	if c := cmp(u.data, o.data); c != 0 {
		return c
	}
	kc := u.keyCmp()
	a, b := u.Begin(), o.Begin()
	for ; a.Valid() && b.Valid(); a, b = a.Next(), b.Next() {
		if kc != nil {
			if c := kc(a.cur.key, b.cur.key); c != 0 {
				return c
			}
		}
		if c := a.cur.Compare(b.cur, cmp); c != 0 {
			return c
		}
	}
	switch {
	case a.Valid():
		return 1
	case b.Valid():
		return -1
	}
	return 0
}

// Equal returns whether u and o are both empty or have equal roots by Node.Equal.
func (u *Tree[K, T]) Equal(o *Tree[K, T], eq func(a, b T) bool) bool {
	if u.Empty() || o.Empty() {
		return u.Empty() == o.Empty()
	}
	return u.root.Equal(o.root, eq)
}

// Compare orders trees by Node.Compare of their roots; an empty tree sorts first.
func (u *Tree[K, T]) Compare(o *Tree[K, T], cmp func(a, b T) int) int {
	switch ue, oe := u.Empty(), o.Empty(); {
	case ue && oe:
		return 0
	case ue:
		return -1
	case oe:
		return 1
	}
	return u.root.Compare(o.root, cmp)
}

func eqOf[T comparable](a, b T) bool {
	return a == b
}

// Equal is Tree.Equal with ==.
func Equal[K any, T comparable](a, b *Tree[K, T]) bool {
	return a.Equal(b, eqOf[T])
}

// Compare is Tree.Compare with cmp.Compare.
func Compare[K any, T cmp.Ordered](a, b *Tree[K, T]) int {
	return a.Compare(b, cmp.Compare[T])
}
