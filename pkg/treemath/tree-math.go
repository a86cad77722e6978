// Package treemath computes the relationships between nodes of a
// left-balanced binary tree stored as a flat array.
//
// Leaves live at even indices, in order, and internal nodes at odd indices.
// A tree with 5 leaves has 9 slots:
//
//	                      X
//	          X
//	    X           X
//	 X     X     X     X     X
//	 0  1  2  3  4  5  6  7  8
//
// The relationships are computed on the complete tree for the next power of
// two and then pulled back into the truncated tree, so nothing but the
// indices and the number of leaves is ever needed.
package treemath

import "math/bits"

// RosterIndex is the number of leaves (members) in the tree.
type RosterIndex uint32

// TreeIndex is a position in the flat node array.
type TreeIndex uint32

// LeafIndex is the ordinal of a leaf among the leaves.
type LeafIndex uint32

// TreeIndex returns the array position of the leaf.
func (l LeafIndex) TreeIndex() TreeIndex {
	return TreeIndex(2 * l)
}

// LeafIndex returns the ordinal of the leaf at x. x must be even.
func (x TreeIndex) LeafIndex() LeafIndex {
	return LeafIndex(x / 2)
}

// Log2 returns the position of the most significant set bit of x, and 0
// for x == 0.
func Log2(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(bits.Len32(x) - 1)
}

// Pow2 returns 2^x.
func Pow2(x uint32) uint32 {
	if x == 0 {
		return 1
	}
	return 2 << (x - 1)
}

// Level is the number of trailing one bits of x. Leaves are at level 0.
func Level(x TreeIndex) uint32 {
	return uint32(bits.TrailingZeros32(^uint32(x)))
}

// IsLeaf reports whether x holds a leaf.
func IsLeaf(x TreeIndex) bool {
	return x&0x01 == 0
}

// NodeWidth is the number of array slots needed for n leaves.
func NodeWidth(n RosterIndex) TreeIndex {
	return TreeIndex(2*(n-1) + 1)
}

// InTree reports whether x is a slot of the tree with n leaves.
func InTree(x TreeIndex, n RosterIndex) bool {
	return x < NodeWidth(n)
}

// Root returns the index of the root of a tree with n leaves.
func Root(n RosterIndex) TreeIndex {
	w := NodeWidth(n)
	return TreeIndex(1)<<Log2(uint32(w)) - 1
}

// Left returns the left child of x. A leaf is its own left child.
func Left(x TreeIndex) TreeIndex {
	k := Level(x)
	if k == 0 {
		return x
	}
	return x ^ (0x01 << (k - 1))
}

// Right returns the right child of x in a tree with n leaves. When the right
// child of the complete tree was truncated away, the nearest left
// descendant that exists takes its place. A leaf is its own right child.
func Right(x TreeIndex, n RosterIndex) TreeIndex {
	k := Level(x)
	if k == 0 {
		return x
	}

	r := x ^ (0x03 << (k - 1))
	for !InTree(r, n) {
		r = Left(r)
	}
	return r
}

// parentStep is the parent of x in the complete tree: xy01 -> x011.
// The result may lie outside a truncated tree.
func parentStep(x TreeIndex) TreeIndex {
	k := Level(x)
	return (x | (1 << k)) &^ (1 << (k + 1))
}

// Parent returns the parent of x in a tree with n leaves. The root is its
// own parent.
func Parent(x TreeIndex, n RosterIndex) TreeIndex {
	if x == Root(n) {
		return x
	}

	p := parentStep(x)
	for !InTree(p, n) {
		p = parentStep(p)
	}
	return p
}

// Sibling returns the other child of the parent of x. The root is its own
// sibling.
func Sibling(x TreeIndex, n RosterIndex) TreeIndex {
	p := Parent(x, n)
	switch {
	case x < p:
		return Right(p, n)
	case x > p:
		return Left(p)
	}
	return p
}
