package window

import (
	"bytes"
	"testing"
)

func mustConfig(t *testing.T, w, b, c int) Config {
	t.Helper()
	cfg, err := NewConfig(w, b, c)
	if err != nil {
		t.Fatalf("NewConfig(%d,%d,%d) failed: %v", w, b, c, err)
	}
	return cfg
}

func TestNewConfigRejectsInvalid(t *testing.T) {
	cases := []struct {
		w, b, c int
	}{
		{3, 128, 1},
		{9, 128, 1},
		{5, 100, 1},
		{5, 128, 2},
		{5, 48, 3},
	}
	for _, tc := range cases {
		if _, err := NewConfig(tc.w, tc.b, tc.c); err == nil {
			t.Errorf("NewConfig(%d,%d,%d) succeeded, want error", tc.w, tc.b, tc.c)
		}
	}
}

func TestNewConfigAcceptsValid(t *testing.T) {
	for _, w := range []int{4, 5, 6, 7, 8} {
		for _, bc := range [][2]int{{48, 1}, {128, 1}, {128, 3}, {256, 1}, {256, 3}} {
			if _, err := NewConfig(w, bc[0], bc[1]); err != nil {
				t.Errorf("NewConfig(%d,%d,%d) failed: %v", w, bc[0], bc[1], err)
			}
		}
	}
}

func TestWarmUpDoesNotTouchHistogram(t *testing.T) {
	for w := 4; w <= 8; w++ {
		cfg := mustConfig(t, w, 128, 1)
		d := New(cfg)
		input := bytes.Repeat([]byte{0x41}, w-1)
		d.Update(input)
		snap := d.Snapshot()
		for i, v := range snap.Buckets {
			if v != 0 {
				t.Fatalf("w=%d: bucket[%d] = %d during warm-up, want 0", w, i, v)
			}
		}
		if snap.Checksum[0] != 0 {
			t.Fatalf("w=%d: checksum touched during warm-up", w)
		}
	}
}

func TestRunningUpdatesHistogram(t *testing.T) {
	for w := 4; w <= 8; w++ {
		cfg := mustConfig(t, w, 128, 1)
		d := New(cfg)
		input := bytes.Repeat([]byte{0x41, 0x13, 0x99, 0x07, 0xAB, 0xCD, 0xEF, 0x01}, 16)
		d.Update(input)
		snap := d.Snapshot()
		var total uint64
		for _, v := range snap.Buckets {
			total += v
		}
		if total == 0 {
			t.Fatalf("w=%d: expected nonzero histogram activity", w)
		}
	}
}

func TestStreamingLawMatchesSingleWrite(t *testing.T) {
	x := []byte("the quick brown fox jumps over the lazy dog, repeatedly, many times over")
	y := []byte(" and some more trailing bytes to push well past every window length")

	for w := 4; w <= 8; w++ {
		cfg := mustConfig(t, w, 256, 3)

		split := New(cfg)
		split.Update(x)
		split.Update(y)
		splitSnap := split.Snapshot()

		whole := New(cfg)
		whole.Update(append(append([]byte{}, x...), y...))
		wholeSnap := whole.Snapshot()

		if splitSnap.Buckets != wholeSnap.Buckets {
			t.Fatalf("w=%d: bucket histogram differs between split and whole writes", w)
		}
		if !bytes.Equal(splitSnap.Checksum, wholeSnap.Checksum) {
			t.Fatalf("w=%d: checksum differs between split and whole writes", w)
		}
		if splitSnap.Count != wholeSnap.Count {
			t.Fatalf("w=%d: count differs between split and whole writes", w)
		}
	}
}

func TestResetLawMatchesFreshDigester(t *testing.T) {
	x := []byte("some representative payload bytes, long enough to leave warm-up")

	for w := 4; w <= 8; w++ {
		cfg := mustConfig(t, w, 128, 1)

		reused := New(cfg)
		reused.Update([]byte("unrelated prior content that must be forgotten on reset"))
		reused.Reset()
		reused.Update(x)

		fresh := New(cfg)
		fresh.Update(x)

		if reused.Snapshot().Buckets != fresh.Snapshot().Buckets {
			t.Fatalf("w=%d: reset digester diverged from a fresh one", w)
		}
	}
}

func TestOrderingMatters(t *testing.T) {
	cfg := mustConfig(t, 5, 128, 1)
	a := New(cfg)
	a.Update([]byte("abcdefghijklmnopqrstuvwxyz"))
	b := New(cfg)
	b.Update([]byte("zyxwvutsrqponmlkjihgfedcba"))
	if a.Snapshot().Buckets == b.Snapshot().Buckets {
		t.Fatalf("reordered input produced identical histograms")
	}
}
