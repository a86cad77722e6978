package treemath

import "slices"

// Leaves returns the index of every leaf, left to right.
func Leaves(n RosterIndex) []TreeIndex {
	leaves := make([]TreeIndex, n)
	for i := range leaves {
		leaves[i] = LeafIndex(i).TreeIndex()
	}
	return leaves
}

// Shadow returns the contiguous range of indices covered by the subtree
// rooted at x, clamped to a tree with n leaves.
func Shadow(x TreeIndex, n RosterIndex) []TreeIndex {
	l, r := x, x
	for h := Level(x); h > 0; h-- {
		l = Left(l)
		r = Right(r, n)
	}

	shadow := make([]TreeIndex, r-l+1)
	for i := range shadow {
		shadow[i] = l + TreeIndex(i)
	}
	return shadow
}

// SubtreeLeaves returns the leaves under x.
func SubtreeLeaves(x TreeIndex, n RosterIndex) []TreeIndex {
	var leaves []TreeIndex
	for _, y := range Shadow(x, n) {
		if IsLeaf(y) {
			leaves = append(leaves, y)
		}
	}
	return leaves
}

// Frontier returns the roots of the maximal complete subtrees that together
// cover every leaf, left to right.
func Frontier(n RosterIndex) []TreeIndex {
	last := NodeWidth(n) - 1
	f := Copath(last, n)
	slices.Reverse(f)

	if f[len(f)-1] != last {
		f = append(f, last)
	}

	for len(f) > 1 {
		r := f[len(f)-1]
		p := Parent(r, n)
		if p != parentStep(r) {
			break
		}

		// r and its left neighbour are siblings of a complete subtree
		f = append(f[:len(f)-2], p)
	}
	return f
}
