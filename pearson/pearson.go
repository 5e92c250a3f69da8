// Package pearson implements the Pearson hashing permutation: a fixed 256-byte
// substitution table used throughout the tlsh module as a cheap, constant-time
// 8-bit mixing primitive.
package pearson

import "errors"

// ErrInvalidPermutation is returned by New when the supplied table is not a
// permutation of 0..255.
var ErrInvalidPermutation = errors.New("pearson: table is not a permutation of 0..255")

// Table is a 256-entry byte substitution table. The zero Table is not valid;
// use Canonical or New.
type Table [256]byte

// Canonical is the classic Pearson permutation table, shared process-wide.
// It is the permutation TLSH itself uses to mix window bytes and checksum
// state; treat it as an immutable constant.
var Canonical = Table{
	1, 87, 49, 12, 176, 178, 102, 166, 121, 193, 6, 84, 249, 230, 44, 163,
	14, 197, 213, 181, 161, 85, 218, 80, 64, 239, 24, 226, 236, 142, 38, 200,
	110, 177, 104, 103, 141, 253, 255, 50, 77, 101, 81, 18, 45, 96, 31, 222,
	25, 107, 190, 70, 86, 237, 240, 34, 72, 242, 20, 214, 244, 227, 149, 235,
	97, 234, 57, 22, 60, 250, 82, 175, 208, 5, 127, 199, 111, 62, 135, 248,
	174, 169, 211, 58, 66, 154, 106, 195, 245, 171, 17, 187, 182, 179, 0, 243,
	132, 56, 148, 75, 128, 133, 158, 100, 130, 126, 91, 13, 153, 246, 216, 219,
	119, 68, 223, 78, 83, 88, 201, 99, 122, 11, 92, 32, 136, 114, 52, 10,
	138, 30, 48, 183, 156, 35, 61, 26, 143, 74, 251, 94, 129, 162, 63, 152,
	170, 7, 115, 167, 241, 206, 3, 150, 55, 59, 151, 220, 90, 53, 23, 131,
	125, 173, 15, 238, 79, 95, 89, 16, 105, 137, 225, 224, 217, 160, 37, 123,
	118, 73, 2, 157, 46, 116, 9, 145, 134, 228, 207, 212, 202, 215, 69, 229,
	27, 188, 67, 124, 168, 252, 42, 4, 29, 108, 21, 247, 19, 205, 39, 203,
	233, 40, 186, 147, 198, 192, 155, 33, 164, 191, 98, 204, 165, 180, 117, 76,
	140, 36, 210, 172, 41, 54, 159, 8, 185, 232, 113, 196, 231, 47, 146, 120,
	51, 65, 28, 144, 254, 221, 93, 189, 194, 139, 112, 43, 71, 109, 184, 209,
}

// New builds a custom Table from perm. It fails unless perm has length 256
// and contains every value in 0..255 exactly once.
func New(perm []byte) (Table, error) {
	if len(perm) != 256 {
		return Table{}, ErrInvalidPermutation
	}
	var seen [256]bool
	var t Table
	for i, v := range perm {
		if seen[v] {
			return Table{}, ErrInvalidPermutation
		}
		seen[v] = true
		t[i] = v
	}
	return t, nil
}

// Hash1 returns P[x].
func (t Table) Hash1(x byte) byte {
	return t[x]
}

// Hash2 returns P[P[a] ^ b].
func (t Table) Hash2(a, b byte) byte {
	return t[t[a]^b]
}

// Hash3 returns P[P[P[a] ^ b] ^ c].
func (t Table) Hash3(a, b, c byte) byte {
	return t[t[t[a]^b]^c]
}

// HashSeq folds the table over seq, starting from 0: h = P[h ^ x] for each
// byte x in seq, in order.
func (t Table) HashSeq(seq []byte) byte {
	var h byte
	for _, x := range seq {
		h = t[h^x]
	}
	return h
}
