package Trees

import (
	"math"

	"github.com/google/btree"
)

// DefaultDegree of the B-trees holding ordered children.
const DefaultDegree = 8

// orderedPolicy is shared by every ordered container of one tree.
type orderedPolicy[K, T any] struct {
	cmp    func(a, b T) int
	degree int
	free   *btree.FreeListG[*Node[K, T]]
}

// less orders by payload, then by insertion stamp so equal payloads can coexist.
func (p *orderedPolicy[K, T]) less(a, b *Node[K, T]) bool {
	if c := p.cmp(a.data, b.data); c != 0 {
		return c < 0
	}
	return a.stamp < b.stamp
}

func newOrderedPolicy[K, T any](cmp func(a, b T) int, degree int) *orderedPolicy[K, T] {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &orderedPolicy[K, T]{cmp: cmp, degree: degree, free: btree.NewFreeListG[*Node[K, T]](btree.DefaultFreeListSize)}
}

// orderedKids stores children in a B-tree sorted by payload. The B-tree is
// allocated on first insertion since most nodes are leaves.
type orderedKids[K, T any] struct {
	pol   *orderedPolicy[K, T]
	bt    *btree.BTreeG[*Node[K, T]]
	stamp uint64
}

func (u *orderedKids[K, T]) policy() Policy {
	return Ordered
}

func (u *orderedKids[K, T]) len() int {
	if u.bt == nil {
		return 0
	}
	return u.bt.Len()
}

func (u *orderedKids[K, T]) first() *Node[K, T] {
	if u.bt == nil {
		return nil
	}
	n, _ := u.bt.Min()
	return n
}

func (u *orderedKids[K, T]) last() *Node[K, T] {
	if u.bt == nil {
		return nil
	}
	n, _ := u.bt.Max()
	return n
}

// next Time: O(log n)
func (u *orderedKids[K, T]) next(c *Node[K, T]) (r *Node[K, T]) {
	u.bt.AscendGreaterOrEqual(c, func(n *Node[K, T]) bool {
		if n == c {
			return true
		}
		r = n
		return false
	})
	return
}

// prev Time: O(log n)
func (u *orderedKids[K, T]) prev(c *Node[K, T]) (r *Node[K, T]) {
	u.bt.DescendLessOrEqual(c, func(n *Node[K, T]) bool {
		if n == c {
			return true
		}
		r = n
		return false
	})
	return
}

func (u *orderedKids[K, T]) add(c *Node[K, T]) bool {
	if u.bt == nil {
		u.bt = btree.NewWithFreeListG(u.pol.degree, u.pol.less, u.pol.free)
	}
	u.stamp++
	c.stamp = u.stamp
	u.bt.ReplaceOrInsert(c)
	return true
}

func (u *orderedKids[K, T]) remove(c *Node[K, T]) int {
	u.bt.Delete(c)
	return -1
}

func (u *orderedKids[K, T]) addAt(_ int, c *Node[K, T]) bool {
	return u.add(c)
}

func (u *orderedKids[K, T]) clear() {
	if u.bt != nil {
		u.bt.Clear(true)
	}
}

func (u *orderedKids[K, T]) spawn() kids[K, T] {
	return &orderedKids[K, T]{pol: u.pol}
}

// pivot is a stand-in node comparing below (stamp 0) or above (max stamp)
// every child with payload v.
func pivot[K, T any](v T, above bool) *Node[K, T] {
	p := &Node[K, T]{data: v}
	if above {
		p.stamp = math.MaxUint64
	}
	return p
}

// ceil returns the first child not less than p.
func (u *orderedKids[K, T]) ceil(p *Node[K, T]) (r *Node[K, T]) {
	if u.bt == nil {
		return nil
	}
	u.bt.AscendGreaterOrEqual(p, func(n *Node[K, T]) bool {
		r = n
		return false
	})
	return
}

func (u *orderedKids[K, T]) lowerBound(v T) *Node[K, T] {
	return u.ceil(pivot[K](v, false))
}

func (u *orderedKids[K, T]) upperBound(v T) *Node[K, T] {
	return u.ceil(pivot[K](v, true))
}

func (u *orderedKids[K, T]) find(v T) *Node[K, T] {
	if n := u.lowerBound(v); n != nil && u.pol.cmp(n.data, v) == 0 {
		return n
	}
	return nil
}

// count children equal to v. Time: O(log n + count)
func (u *orderedKids[K, T]) count(v T) (c int) {
	if u.bt == nil {
		return 0
	}
	u.bt.AscendRange(pivot[K](v, false), pivot[K](v, true), func(*Node[K, T]) bool {
		c++
		return true
	})
	return
}
