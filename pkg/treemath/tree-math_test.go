package treemath

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const maxTestRoster = 64

func forEachNode(n RosterIndex, f func(x TreeIndex)) {
	for x := TreeIndex(0); InTree(x, n); x++ {
		f(x)
	}
}

func TestLog2(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {0x80000000, 31}, {0xffffffff, 31},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Log2(c.in), "Log2(%d)", c.in)
	}
}

func TestPow2(t *testing.T) {
	assert.Equal(t, uint32(1), Pow2(0))
	for x := uint32(1); x < 32; x++ {
		assert.Equalf(t, uint32(1)<<x, Pow2(x), "Pow2(%d)", x)
		assert.Equalf(t, x, Log2(Pow2(x)), "Log2(Pow2(%d))", x)
	}
}

func TestLevel(t *testing.T) {
	cases := []struct {
		x    TreeIndex
		want uint32
	}{
		{0, 0}, {1, 1}, {2, 0}, {3, 2}, {5, 1}, {7, 3}, {11, 2}, {15, 4}, {0xffffffff, 32},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Level(c.x), "Level(%d)", c.x)
	}
}

func TestNodeWidth(t *testing.T) {
	assert.Equal(t, TreeIndex(1), NodeWidth(1))
	assert.Equal(t, TreeIndex(3), NodeWidth(2))
	assert.Equal(t, TreeIndex(5), NodeWidth(3))
	assert.Equal(t, TreeIndex(63), NodeWidth(32))
	assert.True(t, InTree(4, 3))
	assert.False(t, InTree(5, 3))
}

func TestLeafIndexConversion(t *testing.T) {
	for i := LeafIndex(0); i < 16; i++ {
		x := i.TreeIndex()
		assert.True(t, IsLeaf(x))
		assert.Equal(t, i, x.LeafIndex())
	}
}

func TestSingleLeaf(t *testing.T) {
	assert.Equal(t, TreeIndex(0), Root(1))
	assert.Equal(t, TreeIndex(0), Parent(0, 1))
	assert.Equal(t, TreeIndex(0), Sibling(0, 1))
	assert.Equal(t, TreeIndex(0), Right(0, 1))
	assert.Empty(t, Dirpath(0, 1))
}

func TestTwoLeaves(t *testing.T) {
	n := RosterIndex(2)
	assert.Equal(t, TreeIndex(3), NodeWidth(n))
	assert.Equal(t, TreeIndex(1), Root(n))
	assert.Equal(t, TreeIndex(0), Left(1))
	assert.Equal(t, TreeIndex(2), Right(1, n))
	assert.Equal(t, TreeIndex(1), Parent(0, n))
	assert.Equal(t, TreeIndex(1), Parent(2, n))
	assert.Equal(t, TreeIndex(2), Sibling(0, n))
	assert.Equal(t, TreeIndex(0), Sibling(2, n))
}

func TestThreeLeaves(t *testing.T) {
	n := RosterIndex(3)
	assert.Equal(t, TreeIndex(5), NodeWidth(n))
	assert.Equal(t, TreeIndex(3), Root(n))
	assert.Equal(t, TreeIndex(1), Left(3))
	assert.Equal(t, TreeIndex(4), Right(3, n))
	assert.Equal(t, TreeIndex(1), Parent(0, n))
	assert.Equal(t, TreeIndex(1), Parent(2, n))
	assert.Equal(t, TreeIndex(3), Parent(1, n))
	assert.Equal(t, TreeIndex(3), Parent(4, n))
	assert.Equal(t, TreeIndex(4), Sibling(1, n))
	assert.Equal(t, TreeIndex(1), Sibling(4, n))
}

func TestSixLeaves(t *testing.T) {
	n := RosterIndex(6)
	left := []TreeIndex{0, 0, 2, 1, 4, 4, 6, 3, 8, 8, 10}
	right := []TreeIndex{0, 2, 2, 5, 4, 6, 6, 9, 8, 10, 10}
	parent := []TreeIndex{1, 3, 1, 7, 5, 3, 5, 7, 9, 7, 9}
	sibling := []TreeIndex{2, 5, 0, 9, 6, 1, 4, 7, 10, 3, 8}

	require.Equal(t, TreeIndex(len(left)), NodeWidth(n))
	assert.Equal(t, TreeIndex(7), Root(n))
	forEachNode(n, func(x TreeIndex) {
		assert.Equalf(t, left[x], Left(x), "Left(%d)", x)
		assert.Equalf(t, right[x], Right(x, n), "Right(%d)", x)
		assert.Equalf(t, parent[x], Parent(x, n), "Parent(%d)", x)
		assert.Equalf(t, sibling[x], Sibling(x, n), "Sibling(%d)", x)
	})
}

func TestRootIsItsOwnParent(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		r := Root(n)
		assert.Truef(t, InTree(r, n), "root of %d leaves out of tree", n)
		assert.Equalf(t, r, Parent(r, n), "root of %d leaves", n)
		assert.Equalf(t, r, Sibling(r, n), "root of %d leaves", n)
	}
}

func TestSiblingInvolution(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		forEachNode(n, func(x TreeIndex) {
			if x == Root(n) {
				return
			}
			s := Sibling(x, n)
			assert.NotEqualf(t, x, s, "x=%d n=%d", x, n)
			assert.Equalf(t, x, Sibling(s, n), "x=%d n=%d", x, n)
			assert.Equalf(t, Parent(x, n), Parent(s, n), "x=%d n=%d", x, n)
		})
	}
}

func TestLeavesAreTheirOwnChildren(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		for _, x := range Leaves(n) {
			assert.Equal(t, x, Left(x))
			assert.Equal(t, x, Right(x, n))
		}
	}
}

func TestChildrenPointBackToParent(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		forEachNode(n, func(x TreeIndex) {
			if IsLeaf(x) {
				return
			}
			l, r := Left(x), Right(x, n)
			require.Truef(t, InTree(l, n), "left of %d, n=%d", x, n)
			require.Truef(t, InTree(r, n), "right of %d, n=%d", x, n)
			assert.Less(t, uint32(l), uint32(x))
			assert.Greater(t, uint32(r), uint32(x))
			assert.Equalf(t, x, Parent(l, n), "parent of left %d, n=%d", l, n)
			assert.Equalf(t, x, Parent(r, n), "parent of right %d, n=%d", r, n)
		})
	}
}

func TestParentStep(t *testing.T) {
	assert.Equal(t, TreeIndex(1), parentStep(0))
	assert.Equal(t, TreeIndex(1), parentStep(2))
	assert.Equal(t, TreeIndex(3), parentStep(1))
	assert.Equal(t, TreeIndex(3), parentStep(5))
	assert.Equal(t, TreeIndex(9), parentStep(8))
	assert.Equal(t, TreeIndex(11), parentStep(9))
	assert.Equal(t, TreeIndex(7), parentStep(11))
}

func TestPathLengthBound(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		bound := int(Log2(uint32(NodeWidth(n))))
		forEachNode(n, func(x TreeIndex) {
			assert.LessOrEqualf(t, len(Dirpath(x, n)), bound, "x=%d n=%d", x, n)
		})
	}
}

func TestPaths(t *testing.T) {
	n := RosterIndex(6)

	assert.Equal(t, []TreeIndex{1, 3}, Dirpath(0, n))
	assert.Equal(t, []TreeIndex{0, 1, 3, 7}, DirpathLong(0, n))
	assert.Equal(t, []TreeIndex{1, 3, 7}, DirpathRoot(0, n))
	assert.Equal(t, []TreeIndex{2, 5, 9}, Copath(0, n))

	assert.Equal(t, []TreeIndex{9}, Dirpath(10, n))
	assert.Equal(t, []TreeIndex{10, 9, 7}, DirpathLong(10, n))
	assert.Equal(t, []TreeIndex{9, 7}, DirpathRoot(10, n))
	assert.Equal(t, []TreeIndex{8, 3}, Copath(10, n))

	assert.Empty(t, Dirpath(7, n))
	assert.Equal(t, []TreeIndex{7}, DirpathLong(7, n))
	assert.Equal(t, []TreeIndex{7}, DirpathRoot(7, n))
	assert.Equal(t, []TreeIndex{7}, Copath(7, n))
}

func TestPathsStayInTree(t *testing.T) {
	for n := RosterIndex(1); n <= maxTestRoster; n++ {
		r := Root(n)
		forEachNode(n, func(x TreeIndex) {
			dirpath := Dirpath(x, n)
			copath := Copath(x, n)
			long := DirpathLong(x, n)
			withRoot := DirpathRoot(x, n)

			for _, y := range append(append(dirpath, copath...), long...) {
				assert.Truef(t, InTree(y, n), "%d out of tree, x=%d n=%d", y, x, n)
			}
			assert.Equal(t, r, withRoot[len(withRoot)-1])
			assert.Equal(t, r, long[len(long)-1])
			if x == r {
				return
			}

			assert.Len(t, long, len(dirpath)+2)
			assert.Len(t, copath, len(dirpath)+1)
			assert.NotContains(t, dirpath, r)
			for _, c := range copath {
				assert.NotContainsf(t, long, c, "copath and dirpath overlap, x=%d n=%d", x, n)
			}
		})
	}
}

func TestCommonAncestor(t *testing.T) {
	assert.Equal(t, TreeIndex(1), CommonAncestor(0, 2))
	assert.Equal(t, TreeIndex(3), CommonAncestor(0, 4))
	assert.Equal(t, TreeIndex(3), CommonAncestor(2, 4))
	assert.Equal(t, TreeIndex(5), CommonAncestor(4, 6))
	assert.Equal(t, TreeIndex(7), CommonAncestor(0, 8))
	assert.Equal(t, TreeIndex(11), CommonAncestor(8, 14))
	assert.Equal(t, TreeIndex(4), CommonAncestor(4, 4))
}

func TestCommonAncestorInTree(t *testing.T) {
	n := RosterIndex(6)
	assert.Equal(t, TreeIndex(3), CommonAncestorInTree(1, 4, n))
	assert.Equal(t, TreeIndex(9), CommonAncestorInTree(8, 10, n))
	assert.Equal(t, TreeIndex(7), CommonAncestorInTree(5, 9, n))
	assert.Equal(t, TreeIndex(3), CommonAncestorInTree(3, 0, n))
	assert.Equal(t, TreeIndex(7), CommonAncestorInTree(7, 10, n))
	assert.Equal(t, TreeIndex(2), CommonAncestorInTree(2, 2, n))
}

func TestCommonAncestorOfLeavesAgrees(t *testing.T) {
	for n := RosterIndex(2); n <= maxTestRoster; n++ {
		leaves := Leaves(n)
		for i, x := range leaves {
			for _, y := range leaves[i+1:] {
				a := CommonAncestor(x, y)
				require.Truef(t, InTree(a, n), "ancestor of %d and %d out of tree, n=%d", x, y, n)
				assert.Equalf(t, CommonAncestorInTree(x, y, n), a, "x=%d y=%d n=%d", x, y, n)
			}
		}
	}
}

func TestLargeRosterSizes(t *testing.T) {
	for _, n := range []RosterIndex{100, 257, 1000, 1 << 12, 5000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			r := Root(n)
			for _, x := range Leaves(n) {
				long := DirpathLong(x, n)
				assert.Equal(t, x, long[0])
				assert.Equal(t, r, long[len(long)-1])
				for i := 1; i < len(long); i++ {
					assert.Equal(t, long[i], Parent(long[i-1], n))
				}
			}
		})
	}
}
