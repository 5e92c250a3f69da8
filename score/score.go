// Package score computes the bounded integer similarity distance between
// two TLSH digests.
package score

import (
	"errors"
	"fmt"

	"github.com/gtank/tlsh/digest"
)

// ErrMismatched is returned by Score when the two digests have differing
// checksum or body lengths.
var ErrMismatched = errors.New("tlsh: digests are not comparable")

// Score returns the nonnegative distance between the digests packed in a
// and b. If includeLength is true, the length-code component contributes to
// the total; otherwise it is ignored, which is useful when comparing
// digests of inputs known to differ substantially in size.
func Score(a, b []byte, includeLength bool) (int, error) {
	va, err := digest.Unpack(a)
	if err != nil {
		return 0, err
	}
	vb, err := digest.Unpack(b)
	if err != nil {
		return 0, err
	}
	return ScoreValues(va, vb, includeLength)
}

// ScoreValues is Score without the packing step, for callers that already
// hold digest.Value.
func ScoreValues(a, b digest.Value, includeLength bool) (int, error) {
	if len(a.Checksum) != len(b.Checksum) {
		return 0, fmt.Errorf("tlsh: checksum lengths %d and %d differ: %w", len(a.Checksum), len(b.Checksum), ErrMismatched)
	}
	if len(a.Body) != len(b.Body) {
		return 0, fmt.Errorf("tlsh: body lengths %d and %d differ: %w", len(a.Body), len(b.Body), ErrMismatched)
	}

	total := scoreChecksum(a.Checksum, b.Checksum)
	if includeLength {
		total += scoreLength(a.LValue, b.LValue)
	}
	total += scoreQ(a.Q1, b.Q1)
	total += scoreQ(a.Q2, b.Q2)
	total += scoreBody(a.Body, b.Body)
	return total, nil
}

func scoreChecksum(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return 1
		}
	}
	return 0
}

func scoreLength(a, b byte) int {
	d := modDist(int(a), int(b), 256)
	switch d {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return 12 * d
	}
}

func scoreQ(a, b byte) int {
	d := modDist(int(a), int(b), 16)
	if d <= 1 {
		return d
	}
	return 12 * (d - 1)
}

func scoreBody(a, b []byte) int {
	total := 0
	for i := range a {
		total += bitPairDiff[a[i]][b[i]]
	}
	return total
}

// modDist returns the circular distance between x and y modulo r.
func modDist(x, y, r int) int {
	d := x - y
	if d < 0 {
		d = -d
	}
	if alt := r - d; alt < d {
		return alt
	}
	return d
}
