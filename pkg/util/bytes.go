package util

import (
	"encoding/binary"
	"fmt"
)

// Uint32sToBytes encodes each value as 4 big-endian bytes.
func Uint32sToBytes[T ~uint32](values []T) []byte {
	b := make([]byte, 0, 4*len(values))
	for _, v := range values {
		b = binary.BigEndian.AppendUint32(b, uint32(v))
	}
	return b
}

// BytesToUint32s is the inverse of Uint32sToBytes.
func BytesToUint32s[T ~uint32](b []byte) ([]T, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("byte length %d is not a multiple of 4", len(b))
	}

	values := make([]T, len(b)/4)
	for i := range values {
		values[i] = T(binary.BigEndian.Uint32(b[4*i:]))
	}
	return values, nil
}
