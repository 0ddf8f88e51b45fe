package Trees

import "slices"

// rawKids stores children in a slice; each child's slot is its index.
type rawKids[K, T any] struct {
	s []*Node[K, T]
}

func (u *rawKids[K, T]) policy() Policy {
	return Raw
}

func (u *rawKids[K, T]) len() int {
	return len(u.s)
}

func (u *rawKids[K, T]) first() *Node[K, T] {
	if len(u.s) == 0 {
		return nil
	}
	return u.s[0]
}

func (u *rawKids[K, T]) last() *Node[K, T] {
	if len(u.s) == 0 {
		return nil
	}
	return u.s[len(u.s)-1]
}

func (u *rawKids[K, T]) next(c *Node[K, T]) *Node[K, T] {
	if i := c.slot + 1; i < len(u.s) {
		return u.s[i]
	}
	return nil
}

func (u *rawKids[K, T]) prev(c *Node[K, T]) *Node[K, T] {
	if i := c.slot - 1; i >= 0 {
		return u.s[i]
	}
	return nil
}

func (u *rawKids[K, T]) add(c *Node[K, T]) bool {
	c.slot = len(u.s)
	u.s = append(u.s, c)
	return true
}

// renumber slots from i on.
func (u *rawKids[K, T]) renumber(i int) {
	for ; i < len(u.s); i++ {
		u.s[i].slot = i
	}
}

// remove c. Time: O(n-c.slot)
func (u *rawKids[K, T]) remove(c *Node[K, T]) int {
	i := c.slot
	u.s = slices.Delete(u.s, i, i+1)
	u.renumber(i)
	return i
}

func (u *rawKids[K, T]) addAt(slot int, c *Node[K, T]) bool {
	if slot < 0 || slot >= len(u.s) {
		return u.add(c)
	}
	u.s = slices.Insert(u.s, slot, c)
	u.renumber(slot)
	return true
}

func (u *rawKids[K, T]) clear() {
	clear(u.s)
	u.s = u.s[:0]
}

func (u *rawKids[K, T]) spawn() kids[K, T] {
	return new(rawKids[K, T])
}

// sort children stably with cmp.
func (u *rawKids[K, T]) sort(cmp func(a, b *Node[K, T]) int) {
	slices.SortStableFunc(u.s, cmp)
	u.renumber(0)
}
