package tlsh

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gtank/tlsh/digest"
	"github.com/gtank/tlsh/internal/window"
	"github.com/gtank/tlsh/score"
)

// Digester is a streaming TLSH hasher. It is created by New, fed bytes with
// Write, and consumed exactly once by Finalize. Write never fails; Finalize
// leaves the Digester in an undefined state until Reset is called. A
// Digester is not safe for concurrent use; give each producer its own.
type Digester struct {
	cfg  window.Config
	core window.Digester
}

// New builds a Digester for window length w (4..8), bucket count b (48, 128
// or 256) and checksum length c (1 or 3). Bucket count 48 only supports
// checksum length 1.
func New(w, b, c int) (*Digester, error) {
	cfg, err := window.NewConfig(w, b, c)
	if err != nil {
		return nil, err
	}
	return &Digester{cfg: cfg, core: window.New(cfg)}, nil
}

// NewFromAlgorithm builds a Digester from an algorithm name in the grammar
// ParseAlgorithm accepts.
func NewFromAlgorithm(name string) (*Digester, error) {
	w, b, c, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return New(w, b, c)
}

// Write appends p to the stream. It implements io.Writer and never fails.
func (d *Digester) Write(p []byte) (int, error) {
	return d.core.Update(p)
}

// Reset returns the Digester to its empty state.
func (d *Digester) Reset() {
	d.core.Reset()
}

// Finalize computes and returns the digest for everything written so far.
// It is not idempotent: calling it twice without an intervening Reset is
// not supported and leaves the Digester's subsequent behavior undefined.
func (d *Digester) Finalize() (digest.Value, error) {
	snap := d.core.Snapshot()
	return digest.Finalize(snap.Buckets, snap.Checksum, snap.Count, d.cfg.B)
}

// Pack encodes v into its canonical packed byte form.
func Pack(v digest.Value) ([]byte, error) {
	return digest.Pack(v)
}

// Unpack decodes a packed digest buffer into a Value.
func Unpack(buf []byte) (digest.Value, error) {
	return digest.Unpack(buf)
}

// ToHex returns the upper-case hexadecimal encoding of a packed digest.
func ToHex(buf []byte) string {
	return digest.ToHex(buf)
}

// ToHexT1 returns ToHex(buf) prefixed with the "T1" format tag.
func ToHexT1(buf []byte) string {
	return digest.ToHexT1(buf)
}

// HexToBytes decodes a hex string, optionally "T1"-prefixed, back to bytes.
func HexToBytes(s string) ([]byte, error) {
	return digest.HexToBytes(s)
}

// FromHex decodes a hex-encoded packed digest straight to a Value.
func FromHex(s string) (digest.Value, error) {
	return digest.FromHex(s)
}

// Score returns the nonnegative distance between two packed digests. When
// includeLength is false, the length-code component is excluded from the
// total, which is useful when comparing inputs known to differ in size.
func Score(a, b []byte, includeLength bool) (int, error) {
	return score.Score(a, b, includeLength)
}

// algorithmName matches TLSH-(48|128|256)-(1|3)[/([4-8])], with the bucket
// and checksum group entirely optional to support the bare "TLSH" alias.
var algorithmName = regexp.MustCompile(`^TLSH(?:-(48|128|256)-(1|3))?(?:/([4-8]))?$`)

// ParseAlgorithm parses an algorithm name in the grammar
// TLSH-(48|128|256)-(1|3)[/([4-8])]. The "/5" window suffix is the default
// when omitted, and the bare name "TLSH" aliases TLSH-128-1/5. The
// combination of bucket count 48 with checksum length 3 is rejected.
func ParseAlgorithm(name string) (w, b, c int, err error) {
	m := algorithmName.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("tlsh: %q is not a valid algorithm name: %w", name, ErrInvalidParameter)
	}

	bStr, cStr, wStr := m[1], m[2], m[3]
	if bStr == "" {
		b, c = 128, 1
	} else {
		b, _ = strconv.Atoi(bStr)
		c, _ = strconv.Atoi(cStr)
	}
	if wStr == "" {
		w = 5
	} else {
		w, _ = strconv.Atoi(wStr)
	}

	if b == 48 && c == 3 {
		return 0, 0, 0, fmt.Errorf("tlsh: %q combines bucket count 48 with checksum length 3: %w", name, ErrInvalidParameter)
	}
	return w, b, c, nil
}

// MustParseAlgorithm is ParseAlgorithm but panics on error, for use with
// algorithm names known at compile time.
func MustParseAlgorithm(name string) (w, b, c int) {
	w, b, c, err := ParseAlgorithm(name)
	if err != nil {
		panic(err)
	}
	return w, b, c
}

// AlgorithmName formats (w, b, c) back into the TLSH-(b)-(c)[/(w)] grammar,
// omitting the window suffix when w is the default of 5.
func AlgorithmName(w, b, c int) string {
	name := fmt.Sprintf("TLSH-%d-%d", b, c)
	if w != 5 {
		name += fmt.Sprintf("/%d", w)
	}
	return name
}
