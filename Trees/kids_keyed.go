package Trees

import "github.com/petar/GoLLRB/llrb"

type keyedPolicy[K any] struct {
	cmp func(a, b K) int
}

// entry binds a key to a child. Entries with a nil node are lookup pivots.
type entry[K, T any] struct {
	key K
	n   *Node[K, T]
	pol *keyedPolicy[K]
}

func (e *entry[K, T]) Less(than llrb.Item) bool {
	return e.pol.cmp(e.key, than.(*entry[K, T]).key) < 0
}

// keyedKids maps unique keys to children using a left-leaning red-black tree.
type keyedKids[K, T any] struct {
	pol *keyedPolicy[K]
	rb  *llrb.LLRB
}

func (u *keyedKids[K, T]) pivot(k K) *entry[K, T] {
	return &entry[K, T]{key: k, pol: u.pol}
}

func (u *keyedKids[K, T]) policy() Policy {
	return Keyed
}

func (u *keyedKids[K, T]) len() int {
	if u.rb == nil {
		return 0
	}
	return u.rb.Len()
}

func unwrap[K, T any](i llrb.Item) *Node[K, T] {
	if i == nil {
		return nil
	}
	return i.(*entry[K, T]).n
}

func (u *keyedKids[K, T]) first() *Node[K, T] {
	if u.rb == nil {
		return nil
	}
	return unwrap[K, T](u.rb.Min())
}

func (u *keyedKids[K, T]) last() *Node[K, T] {
	if u.rb == nil {
		return nil
	}
	return unwrap[K, T](u.rb.Max())
}

// ceil returns the first child whose key isn't less than k, skipping k itself if strict.
func (u *keyedKids[K, T]) ceil(k K, strict bool) (r *Node[K, T]) {
	if u.rb == nil {
		return nil
	}
	u.rb.AscendGreaterOrEqual(u.pivot(k), func(i llrb.Item) bool {
		e := i.(*entry[K, T])
		if strict && u.pol.cmp(e.key, k) == 0 {
			return true
		}
		r = e.n
		return false
	})
	return
}

// next Time: O(log n)
func (u *keyedKids[K, T]) next(c *Node[K, T]) *Node[K, T] {
	return u.ceil(c.key, true)
}

// prev Time: O(log n)
func (u *keyedKids[K, T]) prev(c *Node[K, T]) (r *Node[K, T]) {
	u.rb.DescendLessOrEqual(u.pivot(c.key), func(i llrb.Item) bool {
		e := i.(*entry[K, T])
		if u.pol.cmp(e.key, c.key) == 0 {
			return true
		}
		r = e.n
		return false
	})
	return
}

// add c under c.key, failing if the key is taken.
func (u *keyedKids[K, T]) add(c *Node[K, T]) bool {
	if u.rb == nil {
		u.rb = llrb.New()
	}
	e := &entry[K, T]{key: c.key, n: c, pol: u.pol}
	if u.rb.Has(e) {
		return false
	}
	u.rb.InsertNoReplace(e)
	return true
}

func (u *keyedKids[K, T]) remove(c *Node[K, T]) int {
	u.rb.Delete(u.pivot(c.key))
	return -1
}

func (u *keyedKids[K, T]) addAt(_ int, c *Node[K, T]) bool {
	return u.add(c)
}

func (u *keyedKids[K, T]) clear() {
	u.rb = nil
}

func (u *keyedKids[K, T]) spawn() kids[K, T] {
	return &keyedKids[K, T]{pol: u.pol}
}

func (u *keyedKids[K, T]) find(k K) *Node[K, T] {
	if u.rb == nil {
		return nil
	}
	return unwrap[K, T](u.rb.Get(u.pivot(k)))
}
