// Package vectors reads, writes and checks tree math conformance vectors.
//
// A vector records, for a tree with NLeaves leaves, the root of every
// smaller tree and the left child, right child, parent and sibling of every
// node. It is encoded in TLS presentation language:
//
//	struct {
//	    uint32 n_leaves;
//	    uint32 root<0..2^32-1>;
//	    uint32 left<0..2^32-1>;
//	    uint32 right<0..2^32-1>;
//	    uint32 parent<0..2^32-1>;
//	    uint32 sibling<0..2^32-1>;
//	} TreeMathVector;
package vectors

import (
	"errors"
	"fmt"
	syntax "github.com/cisco/go-tls-syntax"
	"go.mau.fi/libsignal/logger"
	"ratchettree-go/pkg/treemath"
)

var (
	// ErrEmptyRoster is returned for a vector describing a tree without leaves.
	ErrEmptyRoster = errors.New("vector has no leaves")
	// ErrLength is returned when a vector's lengths do not match its leaf count.
	ErrLength = errors.New("vector length does not match leaf count")
	// ErrTrailingData is returned when bytes remain after a decoded vector.
	ErrTrailingData = errors.New("trailing data after vector")
)

// TreeMathVector holds the expected navigation results for one tree.
type TreeMathVector struct {
	NLeaves treemath.RosterIndex
	Root    []treemath.TreeIndex `tls:"head=4"`
	Left    []treemath.TreeIndex `tls:"head=4"`
	Right   []treemath.TreeIndex `tls:"head=4"`
	Parent  []treemath.TreeIndex `tls:"head=4"`
	Sibling []treemath.TreeIndex `tls:"head=4"`
}

// Generate computes the vector for a tree with n leaves.
func Generate(n treemath.RosterIndex) *TreeMathVector {
	w := treemath.NodeWidth(n)
	v := &TreeMathVector{
		NLeaves: n,
		Root:    make([]treemath.TreeIndex, n),
		Left:    make([]treemath.TreeIndex, w),
		Right:   make([]treemath.TreeIndex, w),
		Parent:  make([]treemath.TreeIndex, w),
		Sibling: make([]treemath.TreeIndex, w),
	}

	for i := range v.Root {
		v.Root[i] = treemath.Root(treemath.RosterIndex(i + 1))
	}
	for x := treemath.TreeIndex(0); x < w; x++ {
		v.Left[x] = treemath.Left(x)
		v.Right[x] = treemath.Right(x, n)
		v.Parent[x] = treemath.Parent(x, n)
		v.Sibling[x] = treemath.Sibling(x, n)
	}
	return v
}

// Decode parses a binary vector. The whole buffer must be consumed.
func Decode(data []byte) (*TreeMathVector, error) {
	var v TreeMathVector
	read, err := syntax.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("decoding tree math vector: %w", err)
	}
	if read != len(data) {
		return nil, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingData, read, len(data))
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Decoded tree math vector for ", v.NLeaves, " leaves")
	return &v, nil
}

// Encode serializes the vector.
func (v *TreeMathVector) Encode() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return syntax.Marshal(*v)
}

// Validate checks that the vector lengths agree with the leaf count.
func (v *TreeMathVector) Validate() error {
	if v.NLeaves == 0 {
		return ErrEmptyRoster
	}
	if len(v.Root) != int(v.NLeaves) {
		return fmt.Errorf("%w: %d roots for %d leaves", ErrLength, len(v.Root), v.NLeaves)
	}

	w := int(treemath.NodeWidth(v.NLeaves))
	for _, f := range v.fields() {
		if len(f.values) != w {
			return fmt.Errorf("%w: %d %s entries for width %d", ErrLength, len(f.values), f.name, w)
		}
	}
	return nil
}

type field struct {
	name   string
	values []treemath.TreeIndex
	actual func(x treemath.TreeIndex, n treemath.RosterIndex) treemath.TreeIndex
}

// fields lists the per-node vectors in wire order.
func (v *TreeMathVector) fields() []field {
	return []field{
		{"left", v.Left, func(x treemath.TreeIndex, _ treemath.RosterIndex) treemath.TreeIndex { return treemath.Left(x) }},
		{"right", v.Right, treemath.Right},
		{"parent", v.Parent, treemath.Parent},
		{"sibling", v.Sibling, treemath.Sibling},
	}
}
