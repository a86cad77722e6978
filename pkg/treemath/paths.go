package treemath

// Paths are ordered from leaf to root.

// Dirpath returns the ancestors of x, excluding both x and the root.
func Dirpath(x TreeIndex, n RosterIndex) []TreeIndex {
	d := []TreeIndex{}
	p := Parent(x, n)
	r := Root(n)
	for p != r {
		d = append(d, p)
		p = Parent(p, n)
	}
	return d
}

// DirpathLong returns x, its ancestors and the root. For the root itself
// the path is the single element [Parent(root)], which is the root.
func DirpathLong(x TreeIndex, n RosterIndex) []TreeIndex {
	r := Root(n)
	if x == r {
		return []TreeIndex{Parent(x, n)}
	}

	d := []TreeIndex{x}
	p := Parent(x, n)
	for p != r {
		d = append(d, p)
		p = Parent(p, n)
	}
	return append(d, r)
}

// DirpathRoot returns the ancestors of x including the root but not x.
func DirpathRoot(x TreeIndex, n RosterIndex) []TreeIndex {
	return append(Dirpath(x, n), Root(n))
}

// Copath returns the sibling of x and of every node on Dirpath(x, n).
func Copath(x TreeIndex, n RosterIndex) []TreeIndex {
	d := append([]TreeIndex{x}, Dirpath(x, n)...)
	c := make([]TreeIndex, len(d))
	for i, y := range d {
		c[i] = Sibling(y, n)
	}
	return c
}

// CommonAncestor returns the lowest common ancestor of the leaves x and y
// in the complete tree. It does not consult the number of leaves.
// For two leaves of any left-balanced tree the result is also their common
// ancestor in that tree; use CommonAncestorInTree for internal nodes.
func CommonAncestor(x, y TreeIndex) TreeIndex {
	if x == y {
		return x
	}

	k := uint32(0)
	for x != y {
		x >>= 1
		y >>= 1
		k++
	}
	return (x << k) + (1 << (k - 1)) - 1
}

// CommonAncestorInTree returns the lowest node that is an ancestor of (or
// equal to) both x and y in a tree with n leaves.
func CommonAncestorInTree(x, y TreeIndex, n RosterIndex) TreeIndex {
	if x == y {
		return x
	}

	onPath := make(map[TreeIndex]struct{})
	for _, a := range DirpathLong(x, n) {
		onPath[a] = struct{}{}
	}
	for _, a := range DirpathLong(y, n) {
		if _, ok := onPath[a]; ok {
			return a
		}
	}
	return Root(n)
}
