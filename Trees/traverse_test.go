package Trees

import (
	"testing"
	"unsafe"

	"github.com/alphadose/haxmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// random raw tree of about n nodes.
func randomTree(n int) *Tree[NoKey, int] {
	u := NewRaw[int]()
	ns := []*Node[NoKey, int]{u.Insert(0)}
	for i := 1; i < n; i++ {
		p := ns[rg.Intn(len(ns))]
		ns = append(ns, p.Insert(i).Node())
	}
	return u
}

// visitOnce asserts that every node of u is yielded exactly once.
func visitOnce(t *testing.T, u *Tree[NoKey, int], walk func(yield func(*Node[NoKey, int]) bool)) {
	t.Helper()
	seen := haxmap.New[uintptr, int]()
	c := 0
	walk(func(n *Node[NoKey, int]) bool {
		k := uintptr(unsafe.Pointer(n))
		_, dup := seen.Get(k)
		require.False(t, dup, "node %d visited twice", n.Data())
		seen.Set(k, n.Data())
		c++
		return true
	})
	require.Equal(t, u.Size(), c)
	for n := range u.PreOrder() {
		v, ok := seen.Get(uintptr(unsafe.Pointer(n)))
		require.True(t, ok, "node %d not visited", n.Data())
		require.Equal(t, n.Data(), v)
	}
}

func TestTraverse_VisitOnce(t *testing.T) {
	for _, n := range []int{1, 2, 10, 500} {
		u := randomTree(n)
		visitOnce(t, u, u.BreadthFirst())
		visitOnce(t, u, u.PreOrder())
		visitOnce(t, u, u.PostOrder())
	}
}

// traversal orders are checked against recursive definitions.
func TestTraverse_Orders(t *testing.T) {
	u := randomTree(300)
	r, _ := u.Root()

	var pre, post []int
	var rec func(n *Node[NoKey, int])
	rec = func(n *Node[NoKey, int]) {
		pre = append(pre, n.Data())
		for c := range n.Children() {
			rec(c)
		}
		post = append(post, n.Data())
	}
	rec(r)
	assert.Equal(t, pre, datas(u.PreOrder()))
	assert.Equal(t, post, datas(u.PostOrder()))

	bf := datas(u.BreadthFirst())
	ps := plies(u.BreadthFirst())
	require.Len(t, bf, u.Size())
	for i := 1; i < len(ps); i++ {
		require.LessOrEqual(t, ps[i-1], ps[i])
	}
	assert.Equal(t, u.Depth(), ps[len(ps)-1]+1)

	// subtree traversals stay inside the subtree
	sub := r.At(0)
	assert.Len(t, datas(sub.PreOrder()), sub.SubtreeSize())
	assert.Len(t, datas(sub.PostOrder()), sub.SubtreeSize())
	assert.Len(t, datas(sub.BreadthFirst()), sub.SubtreeSize())
}

func TestTraverse_Keyed(t *testing.T) {
	u := NewKeyedOf[int, string]()
	r := u.Insert("r")
	b := r.Get(2)
	b.SetData("b")
	b.Get(1).SetData("b1")
	a := r.Get(1)
	a.SetData("a")
	assert.Equal(t, []string{"r", "a", "b", "b1"}, datas(u.BreadthFirst()))
	assert.Equal(t, []string{"r", "a", "b", "b1"}, datas(u.PreOrder()))
	assert.Equal(t, []string{"a", "b1", "b", "r"}, datas(u.PostOrder()))
}

func TestTraverse_CloneEqual(t *testing.T) {
	u := sample()

	bf := u.BFBegin()
	bf.Next()
	bc := bf.Clone()
	assert.True(t, bf.Equal(bc))
	bf.Next()
	assert.False(t, bf.Equal(bc))
	assert.Equal(t, 3, bc.Node().Data())
	assert.Equal(t, 5, bf.Node().Data())
	for bf.Valid() {
		bf.Next()
	}
	assert.True(t, bf.Equal(&BFIter[NoKey, int]{}))
	assert.Nil(t, bf.Node())
	bf.Next()

	pre := u.PreBegin()
	pre.Next()
	pre.Next()
	pc := pre.Clone()
	assert.Equal(t, 7, pc.Node().Data())
	assert.True(t, pre.Equal(pc))
	assert.Equal(t, []int{7, 11, 5, 13, 17}, datas(pre.All()))
	assert.Equal(t, []int{7, 11, 5, 13, 17}, datas(pc.All()))
	assert.True(t, pre.Equal(&PreIter[NoKey, int]{}))
	assert.False(t, u.PreBegin().Equal(pre))
	assert.True(t, u.PreBegin().Equal(u.PreBegin()))

	post := u.PostBegin()
	assert.Equal(t, 7, post.Node().Data())
	post.Next()
	qc := post.Clone()
	post.Next()
	assert.Equal(t, 3, post.Node().Data())
	assert.Equal(t, 11, qc.Node().Data())
	assert.False(t, post.Equal(qc))
	qc.Next()
	assert.True(t, post.Equal(qc))
	for post.Valid() {
		post.Next()
	}
	assert.True(t, post.Equal(&PostIter[NoKey, int]{}))
	assert.Nil(t, post.Node())
}

// iteration can stop early and mutate through the yielded nodes.
func TestTraverse_Break(t *testing.T) {
	u := sample()
	for n := range u.PreOrder() {
		if n.Data() == 5 {
			n.SetData(50)
			break
		}
	}
	assert.Equal(t, []int{2, 3, 50, 7, 11, 13, 17}, datas(u.BreadthFirst()))
	r, _ := u.Root()
	assert.Equal(t, []int{11}, datas(r.At(0).At(1).PostOrder()))
}
