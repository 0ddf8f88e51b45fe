package internal

import "golang.org/x/exp/constraints"

// Depth is a histogram over small non-negative integers that keeps track of
// its maximum. counts[d] is the number of recorded occurrences of d.
// S is the counter type, it must be wide enough to hold the size of the
// largest subtree the histogram describes.
// The zero value is an empty histogram with Max()==0.
type Depth[S constraints.Unsigned] struct {
	counts []S
	max    int
}

// Max recorded depth. 0 if nothing was recorded.
// Time: O(1)
func (u *Depth[S]) Max() int {
	return u.max
}

// Count of occurrences of d.
func (u *Depth[S]) Count(d int) S {
	if d < 0 || d >= len(u.counts) {
		return 0
	}
	return u.counts[d]
}

// Empty returns whether no occurrence is recorded.
func (u *Depth[S]) Empty() bool {
	return len(u.counts) == 0 || (u.max == 0 && u.counts[0] == 0)
}

func (u *Depth[S]) grow(n int) {
	if n > len(u.counts) {
		u.counts = append(u.counts, make([]S, n-len(u.counts))...)
	}
}

// shrink moves max down past empty buckets.
func (u *Depth[S]) shrink() {
	for u.max > 0 && u.counts[u.max] == 0 {
		u.max--
	}
}

// Insert one occurrence of d.
// Time: amortized O(1)
func (u *Depth[S]) Insert(d int) {
	u.grow(d + 1)
	u.counts[d]++
	if d > u.max {
		u.max = d
	}
}

// Erase one occurrence of d. Erasing a depth that isn't recorded is a no-op.
// Time: O(1) unless the maximum bucket empties, then O(max).
func (u *Depth[S]) Erase(d int) {
	if d > u.max || d < 0 || u.counts[d] == 0 {
		return
	}
	u.counts[d]--
	u.shrink()
}

// Merge adds every bucket of o into u, offset by shift: o.counts[s] goes to
// u.counts[s+shift].
// Time: O(o.Max())
func (u *Depth[S]) Merge(o *Depth[S], shift int) {
	if len(o.counts) == 0 {
		return
	}
	if o.max+shift > u.max {
		u.max = o.max + shift
	}
	u.grow(u.max + 1)
	for s := 0; s <= o.max; s++ {
		u.counts[s+shift] += o.counts[s]
	}
}

// Split is the inverse of Merge. o must have been merged into u with the same
// shift before, otherwise the counters are left undefined.
// Time: O(o.Max())
func (u *Depth[S]) Split(o *Depth[S], shift int) {
	if len(o.counts) == 0 || shift > u.max {
		return
	}
	n := min(o.max, u.max-shift)
	for s := 0; s <= n; s++ {
		u.counts[s+shift] -= o.counts[s]
	}
	u.shrink()
}

// Reset to the single occurrence {d}, reusing the buffer.
func (u *Depth[S]) Reset(d int) {
	clear(u.counts)
	u.counts, u.max = u.counts[:0], 0
	u.Insert(d)
}
