package Trees

import "github.com/xlab/treeprint"

// render u's subtree into a treeprint tree, breadth first so that no
// recursion is needed. Keyed children show their key as meta.
func (u *Node[K, T]) render() treeprint.Tree {
	out := treeprint.NewWithRoot(u.data)
	branches := map[*Node[K, T]]treeprint.Tree{u: out}
	keyed := u.keyCmp() != nil
	for n := range u.BreadthFirst() {
		b := branches[n]
		delete(branches, n)
		for c := range n.Children() {
			if keyed {
				branches[c] = b.AddMetaBranch(c.key, c.data)
			} else {
				branches[c] = b.AddBranch(c.data)
			}
		}
	}
	return out
}

// String renders the subtree rooted at u, one node per line.
func (u *Node[K, T]) String() string {
	return u.render().String()
}

// String renders the tree, one node per line. An empty tree renders as ".".
func (u *Tree[K, T]) String() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	return u.root.String()
}
