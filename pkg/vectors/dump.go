package vectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"ratchettree-go/pkg/treemath"
	"ratchettree-go/pkg/util"
)

// dumpedVector is the JSON form of a vector: every list is the hex of its
// big-endian uint32 values.
type dumpedVector struct {
	Size    uint32 `json:"size"`
	Root    string `json:"root"`
	Left    string `json:"left"`
	Right   string `json:"right"`
	Parent  string `json:"parent"`
	Sibling string `json:"sibling"`
}

func hexOf(values []treemath.TreeIndex) string {
	return hex.EncodeToString(util.Uint32sToBytes(values))
}

func fromHex(name, s string) ([]treemath.TreeIndex, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	values, err := util.BytesToUint32s[treemath.TreeIndex](b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return values, nil
}

// Dump writes the vector to w as indented JSON.
func (v *TreeMathVector) Dump(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dumpedVector{
		Size:    uint32(v.NLeaves),
		Root:    hexOf(v.Root),
		Left:    hexOf(v.Left),
		Right:   hexOf(v.Right),
		Parent:  hexOf(v.Parent),
		Sibling: hexOf(v.Sibling),
	})
}

// ParseDump reads a vector written by Dump.
func ParseDump(r io.Reader) (*TreeMathVector, error) {
	var d dumpedVector
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("parsing tree math dump: %w", err)
	}

	v := &TreeMathVector{NLeaves: treemath.RosterIndex(d.Size)}
	var err error
	for _, f := range []struct {
		name string
		src  string
		dst  *[]treemath.TreeIndex
	}{
		{"root", d.Root, &v.Root},
		{"left", d.Left, &v.Left},
		{"right", d.Right, &v.Right},
		{"parent", d.Parent, &v.Parent},
		{"sibling", d.Sibling, &v.Sibling},
	} {
		if *f.dst, err = fromHex(f.name, f.src); err != nil {
			return nil, err
		}
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}
