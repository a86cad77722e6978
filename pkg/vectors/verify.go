package vectors

import (
	"fmt"
	"go.mau.fi/libsignal/logger"
	"io"
	"ratchettree-go/pkg/treemath"
	"strings"
)

// MismatchError reports a vector entry that disagrees with treemath.
type MismatchError struct {
	Function string
	Index    treemath.TreeIndex
	Expected treemath.TreeIndex
	Actual   treemath.TreeIndex
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s(%d): expected %d, got %d", e.Function, e.Index, e.Expected, e.Actual)
}

// Mismatches collects every disagreement found in one vector.
type Mismatches []*MismatchError

func (m Mismatches) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d mismatches: %s", len(m), strings.Join(msgs, "; "))
}

func (m Mismatches) Unwrap() []error {
	errs := make([]error, len(m))
	for i, e := range m {
		errs[i] = e
	}
	return errs
}

// Verify compares every entry of v with the result computed by treemath.
// It returns a *MismatchError for a single disagreement and Mismatches for
// several.
func Verify(v *TreeMathVector) error {
	if err := v.Validate(); err != nil {
		return err
	}

	var mismatches Mismatches
	for i, expected := range v.Root {
		n := treemath.RosterIndex(i + 1)
		if actual := treemath.Root(n); actual != expected {
			// root is indexed by leaf count
			mismatches = append(mismatches, &MismatchError{"root", treemath.TreeIndex(n), expected, actual})
		}
	}
	for _, f := range v.fields() {
		for x, expected := range f.values {
			if actual := f.actual(treemath.TreeIndex(x), v.NLeaves); actual != expected {
				mismatches = append(mismatches, &MismatchError{f.name, treemath.TreeIndex(x), expected, actual})
			}
		}
	}

	switch len(mismatches) {
	case 0:
		return nil
	case 1:
		logger.Error("Tree math vector mismatch: ", mismatches[0])
		return mismatches[0]
	}
	logger.Error("Tree math vector mismatches: ", len(mismatches))
	return mismatches
}

type options struct {
	dump io.Writer
}

// Option configures VerifyBytes.
type Option func(*options)

// WithDump writes the human-readable form of the decoded vector to w before
// it is verified.
func WithDump(w io.Writer) Option {
	return func(o *options) {
		o.dump = w
	}
}

// VerifyBytes decodes a binary vector and verifies it.
func VerifyBytes(data []byte, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v, err := Decode(data)
	if err != nil {
		return err
	}
	if o.dump != nil {
		if err := v.Dump(o.dump); err != nil {
			return fmt.Errorf("dumping tree math vector: %w", err)
		}
	}
	return Verify(v)
}
