package score

import (
	"testing"

	"github.com/gtank/tlsh/digest"
	"github.com/stretchr/testify/require"
)

func sampleBuckets(seed, b int) [256]uint64 {
	var buckets [256]uint64
	for i := 0; i < b; i++ {
		buckets[i] = uint64((i*seed+13)%101) + 1
	}
	return buckets
}

func mustValue(t *testing.T, seed, b, c int) digest.Value {
	t.Helper()
	checksum := make([]byte, c)
	for i := range checksum {
		checksum[i] = byte(seed + i)
	}
	v, err := digest.Finalize(sampleBuckets(seed, b), checksum, uint64(seed*1000), b)
	require.NoError(t, err)
	return v
}

func TestScoreSelfIdentityIsZero(t *testing.T) {
	for _, b := range []int{48, 128, 256} {
		v := mustValue(t, 7, b, 1)
		packed, err := digest.Pack(v)
		require.NoError(t, err)

		s, err := Score(packed, packed, true)
		require.NoError(t, err)
		require.Equal(t, 0, s)
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := mustValue(t, 3, 128, 1)
	b := mustValue(t, 9, 128, 1)
	pa, err := digest.Pack(a)
	require.NoError(t, err)
	pb, err := digest.Pack(b)
	require.NoError(t, err)

	sab, err := Score(pa, pb, true)
	require.NoError(t, err)
	sba, err := Score(pb, pa, true)
	require.NoError(t, err)
	require.Equal(t, sab, sba)
}

func TestScoreBounded(t *testing.T) {
	a := mustValue(t, 11, 256, 3)
	b := mustValue(t, 41, 256, 3)
	pa, err := digest.Pack(a)
	require.NoError(t, err)
	pb, err := digest.Pack(b)
	require.NoError(t, err)

	s, err := Score(pa, pb, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s, 0)

	bound := 1 + 12*128 + 12*15*2 + 24*len(a.Body)
	require.LessOrEqual(t, s, bound)
}

func TestScoreMismatchedChecksumLength(t *testing.T) {
	a := mustValue(t, 1, 128, 1)
	b := mustValue(t, 1, 128, 3)
	pa, err := digest.Pack(a)
	require.NoError(t, err)
	pb, err := digest.Pack(b)
	require.NoError(t, err)

	_, err = Score(pa, pb, true)
	require.ErrorIs(t, err, ErrMismatched)
}

func TestScoreMismatchedBodyLength(t *testing.T) {
	a := mustValue(t, 1, 48, 1)
	b := mustValue(t, 1, 256, 1)
	pa, err := digest.Pack(a)
	require.NoError(t, err)
	pb, err := digest.Pack(b)
	require.NoError(t, err)

	_, err = Score(pa, pb, true)
	require.ErrorIs(t, err, ErrMismatched)
}

func TestModDist(t *testing.T) {
	require.Equal(t, 0, modDist(5, 5, 256))
	require.Equal(t, 1, modDist(0, 1, 256))
	require.Equal(t, 1, modDist(0, 255, 256))
	require.Equal(t, 128, modDist(0, 128, 256))
}

func TestBitPairDiffRange(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			d := bitPairDiff[x][y]
			if d < 0 || d > 24 {
				t.Fatalf("bitPairDiff[%d][%d] = %d out of [0,24]", x, y, d)
			}
		}
	}
}

func TestBitPairDiffSelfIsZero(t *testing.T) {
	for x := 0; x < 256; x++ {
		if bitPairDiff[x][x] != 0 {
			t.Fatalf("bitPairDiff[%d][%d] = %d, want 0", x, x, bitPairDiff[x][x])
		}
	}
}

func TestBitPairDiffSymmetric(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			if bitPairDiff[x][y] != bitPairDiff[y][x] {
				t.Fatalf("bitPairDiff not symmetric at (%d,%d)", x, y)
			}
		}
	}
}
