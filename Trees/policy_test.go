package Trees

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdered_Insert(t *testing.T) {
	u := NewOrderedOf[int]()
	assert.Equal(t, Ordered, u.Policy())
	r := u.Insert(0)
	for _, v := range []int{5, 3, 9, 3, 1, 7, 3} {
		it := r.Insert(v)
		assert.Equal(t, v, it.Node().Data())
	}
	assert.Equal(t, []int{1, 3, 3, 3, 5, 7, 9}, datas(r.Children()))
	assert.Equal(t, 3, r.Count(3))
	assert.Equal(t, 0, r.Count(4))

	assert.Equal(t, 3, r.Find(3).Node().Data())
	assert.False(t, r.Find(4).Valid())
	assert.Equal(t, 5, r.LowerBound(4).Node().Data())
	assert.Equal(t, 5, r.UpperBound(3).Node().Data())
	assert.False(t, r.UpperBound(9).Valid())

	lo, hi := r.EqualRange(3)
	n := 0
	for it := lo; !it.Equal(hi); it = it.Next() {
		assert.Equal(t, 3, it.Node().Data())
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, lo.Prev().Node().Data())
	assert.Equal(t, 9, r.End().Prev().Node().Data())
	verifyTree(t, u)
}

func TestOrdered_Stable(t *testing.T) {
	type pair struct{ k, v int }
	u := NewOrdered(func(a, b pair) int { return cmp.Compare(a.k, b.k) })
	r := u.Insert(pair{})
	for i := 0; i < 20; i++ {
		r.Insert(pair{i % 3, i})
	}
	prev := pair{-1, -1}
	for c := range r.Children() {
		d := c.Data()
		require.True(t, prev.k < d.k || prev.k == d.k && prev.v < d.v, "%v after %v", d, prev)
		prev = d
	}
}

func TestOrdered_EraseValue(t *testing.T) {
	u := NewOrderedDegree(cmp.Compare[int], 2)
	r := u.Insert(0)
	for i := 0; i < 50; i++ {
		r.Insert(i % 5).Node().Insert(i)
	}
	assert.Equal(t, 101, u.Size())
	assert.Equal(t, 10, r.EraseValue(2))
	assert.Equal(t, 0, r.EraseValue(2))
	assert.Equal(t, 81, u.Size())
	assert.Equal(t, 0, r.Count(2))
	verifyTree(t, u)

	it := r.EraseAt(r.Find(4))
	assert.Equal(t, 4, it.Node().Data())
	assert.Equal(t, 9, r.Count(4))
	r.EraseRange(r.Begin(), r.LowerBound(3))
	assert.Equal(t, []int{3, 4}, slices.Compact(datas(r.Children())))
	verifyTree(t, u)
}

func TestOrdered_SetData(t *testing.T) {
	u := NewOrderedOf[int]()
	r := u.Insert(0)
	for _, v := range []int{1, 2, 3, 4} {
		r.Insert(v)
	}
	r.Find(1).Node().SetData(3)
	assert.Equal(t, []int{2, 3, 3, 4}, datas(r.Children()))
	// re-seated behind the existing 3
	assert.Equal(t, 3, r.End().Prev().Prev().Node().Data())
	r.Find(4).Node().SetData(0)
	assert.Equal(t, []int{0, 2, 3, 3}, datas(r.Children()))
	r.SetData(100)
	assert.Equal(t, 100, r.Data())
}

func TestOrdered_CopyFromRaw(t *testing.T) {
	u := NewOrderedOf[int]()
	r := u.Insert(0)
	src, _ := sample().Root()
	r.InsertNode(src)
	r.InsertNode(src.At(1))
	assert.Equal(t, []int{0, 2, 3, 7, 11, 5, 13, 17, 5, 13, 17}, datas(u.PreOrder()))
	assert.ErrorAs(t, src.Graft(r), new(*PolicyError))
	var pe *PolicyError
	require.ErrorAs(t, r.Graft(src.At(0)), &pe)
	assert.Equal(t, Raw, pe.Have)
	verifyTree(t, u)
}

func TestKeyed_Insert(t *testing.T) {
	u := NewKeyedOf[string, int]()
	assert.Equal(t, Keyed, u.Policy())
	r := u.Insert(7)
	_, ok := r.InsertKey("0", 8)
	require.True(t, ok)
	_, ok = r.InsertKey("1", 9)
	require.True(t, ok)
	it, ok := r.InsertKey("0", 99)
	assert.False(t, ok)
	assert.Equal(t, 8, it.Node().Data())
	assert.Equal(t, 1, r.CountKey("0"))
	n, err := r.Lookup("0")
	require.NoError(t, err)
	assert.Equal(t, 8, n.Data())
	assert.Equal(t, "0", n.Key())
	assert.Equal(t, 3, u.Size())
	verifyTree(t, u)

	assert.Panics(t, func() { r.Insert(1) })
	assert.Panics(t, func() { r.PushBack(1) })
	assert.Panics(t, func() { r.Find(1) })
}

func TestKeyed_GetLookup(t *testing.T) {
	u := NewKeyedOf[string, int]()
	r := u.Insert(0)

	// read-only lookup of a missing key fails and changes nothing
	_, err := r.Lookup("x")
	var me *MissingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "x", me.Key)
	assert.Equal(t, "Lookup: key x undefined", err.Error())
	assert.Equal(t, 1, u.Size())
	assert.False(t, r.FindKey("x").Valid())

	// mutable access creates it
	x := r.Get("x")
	assert.Equal(t, 0, x.Data())
	assert.Equal(t, 2, u.Size())
	x.SetData(5)
	assert.Same(t, x, r.Get("x"))
	assert.Equal(t, 2, u.Size())
	n, err := r.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 5, n.Data())
	verifyTree(t, u)
}

func TestKeyed_Ranges(t *testing.T) {
	u := NewKeyedOf[int, string]()
	r := u.Insert("root")
	for _, k := range []int{40, 10, 30, 20} {
		r.InsertKey(k, strings.Repeat("x", k/10))
	}
	var ks []int
	for c := range r.Children() {
		ks = append(ks, c.Key())
	}
	assert.Equal(t, []int{10, 20, 30, 40}, ks)
	assert.Equal(t, 20, r.LowerBoundKey(15).Node().Key())
	assert.Equal(t, 20, r.LowerBoundKey(20).Node().Key())
	assert.Equal(t, 30, r.UpperBoundKey(20).Node().Key())
	assert.False(t, r.UpperBoundKey(40).Valid())
	lo, hi := r.EqualRangeKey(30)
	assert.Equal(t, 30, lo.Node().Key())
	assert.True(t, lo.Next().Equal(hi))
	assert.Equal(t, 20, lo.Prev().Node().Key())
	assert.Equal(t, 40, r.End().Prev().Node().Key())

	assert.Equal(t, 1, r.EraseKey(20))
	assert.Equal(t, 0, r.EraseKey(20))
	assert.Equal(t, 0, r.CountKey(20))
	r.EraseAt(r.FindKey(10))
	assert.Equal(t, 30, r.Begin().Node().Key())
	assert.Equal(t, 3, u.Size())
	verifyTree(t, u)
}

func TestKeyed_CopyGraft(t *testing.T) {
	a, b := NewKeyedOf[string, int](), NewKeyedOf[string, int]()
	ra, rb := a.Insert(1), b.Insert(2)
	x, _ := ra.InsertKey("x", 10)
	x.Node().InsertKey("y", 11)
	x.Node().InsertKey("z", 12)

	c, ok := rb.InsertKeyNode("copy", x.Node())
	require.True(t, ok)
	assert.Equal(t, "copy", c.Node().Key())
	assert.Equal(t, []int{2, 10, 11, 12}, datas(b.PreOrder()))
	ks := []string{}
	for n := range c.Node().Children() {
		ks = append(ks, n.Key())
	}
	assert.Equal(t, []string{"y", "z"}, ks)
	_, ok = rb.InsertKeyNode("copy", ra)
	assert.False(t, ok)

	ok, err := rb.GraftKey("moved", x.Node())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "moved", x.Node().Key())
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 7, b.Size())
	verifyTree(t, a)
	verifyTree(t, b)

	// taken key
	ok, err = rb.GraftKey("copy", ra)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, a.Size())

	// cycle
	_, err = x.Node().Get("y").GraftKey("w", x.Node())
	assert.ErrorAs(t, err, new(*CycleError))

	_, ok = rb.InsertKeyTree("t", a)
	assert.True(t, ok)
	ok, err = rb.GraftKeyTree("g", a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, a.Empty())
	assert.Equal(t, 9, b.Size())
	_, ok = rb.InsertKeyTree("e", a)
	assert.False(t, ok)
	ok, _ = rb.GraftKeyTree("e", a)
	assert.False(t, ok)
	verifyTree(t, b)
}

func TestKeyed_Compare(t *testing.T) {
	a, b := NewKeyedOf[string, int](), NewKeyedOf[string, int]()
	a.Insert(0).InsertKey("a", 1)
	b.Insert(0).InsertKey("b", 1)
	assert.False(t, Equal(a, b))
	assert.Equal(t, -1, Compare(a, b))
	c := a.Clone()
	assert.True(t, Equal(a, c))
	assert.Equal(t, 1, Compare(a, NewKeyedOf[string, int]()))
}
