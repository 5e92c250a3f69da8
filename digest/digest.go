// Package digest implements the TLSH digest value: its in-memory
// representation, the quartile-based compression step that produces it from
// a raw bucket histogram, the canonical packed byte layout, and the
// hexadecimal transport encoding.
package digest

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/gtank/tlsh/lengthcode"
)

// ErrBadFormat is returned by HexToBytes when the input is not valid hex,
// and by Unpack when the buffer length is not a valid packed digest length.
var ErrBadFormat = errors.New("tlsh: bad digest format")

// ErrInvalidParameter is returned by Finalize when the bucket count or
// checksum length it is asked to compress from is not one this module
// supports.
var ErrInvalidParameter = errors.New("tlsh: invalid digest parameter")

// Value is an immutable TLSH digest: a checksum, a length code, two
// quartile-ratio nibbles, and a compressed bucket body.
type Value struct {
	Checksum []byte // length 1 or 3
	LValue   byte
	Q1, Q2   byte // nibbles, 0..15
	Body     []byte
}

// Equal reports whether v and other have element-wise identical fields. It
// is implemented by hand, not reflect.DeepEqual, since this module avoids
// reflection in its own surface.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.Checksum, other.Checksum) &&
		v.LValue == other.LValue &&
		v.Q1 == other.Q1 &&
		v.Q2 == other.Q2 &&
		bytes.Equal(v.Body, other.Body)
}

// Finalize computes the quartile boundaries of buckets[:b] and compresses
// them into a Value. buckets must have at least b valid entries; checksum
// must have length 1 or 3; b must be 48, 128 or 256.
//
// If the top quartile q3 is zero (too little bucket activity to produce any,
// e.g. very short input), both ratio nibbles are defined as zero rather than
// faulting on the division.
func Finalize(buckets [256]uint64, checksum []byte, count uint64, b int) (Value, error) {
	m := b / 4
	switch b {
	case 48, 128, 256:
	default:
		return Value{}, fmt.Errorf("tlsh: bucket count %d must be 48, 128 or 256: %w", b, ErrInvalidParameter)
	}
	if len(checksum) != 1 && len(checksum) != 3 {
		return Value{}, fmt.Errorf("tlsh: checksum length %d must be 1 or 3: %w", len(checksum), ErrInvalidParameter)
	}

	sorted := make([]uint64, b)
	copy(sorted, buckets[:b])
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	k := b / 4
	q1 := sorted[k-1]
	q2 := sorted[2*k-1]
	q3 := sorted[3*k-1]

	body := make([]byte, m)
	for i := 0; i < m; i++ {
		var packed byte
		for j := 0; j < 4; j++ {
			v := buckets[4*i+j]
			var code byte
			switch {
			case v > q3:
				code = 3
			case v > q2:
				code = 2
			case v > q1:
				code = 1
			default:
				code = 0
			}
			packed |= code << uint(2*j)
		}
		body[i] = packed
	}

	var q1Ratio, q2Ratio byte
	if q3 != 0 {
		q1Ratio = byte((q1 * 100 / q3) & 0x0F)
		q2Ratio = byte((q2 * 100 / q3) & 0x0F)
	}

	cs := make([]byte, len(checksum))
	copy(cs, checksum)

	return Value{
		Checksum: cs,
		LValue:   lengthcode.Capture(count),
		Q1:       q1Ratio,
		Q2:       q2Ratio,
		Body:     body,
	}, nil
}
