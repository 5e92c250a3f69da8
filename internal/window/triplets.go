package window

import "github.com/gtank/tlsh/pearson"

// triplet is one (salt, ordered-pair) bucket update rule. a and b are
// 1-based positions into the lag window (a=1 means the most recently seen
// byte, l1).
type triplet struct {
	salt byte
	a, b int
}

// allTriplets holds every bucket-update rule across all window lengths, in
// the order spec'd for w=4..8: the w=4 rules come first, then each larger
// window's rules are appended after the previous window's. A digester for
// window length w uses allTriplets[:tripletCount[w]].
var allTriplets = buildTriplets()

var tripletCount = map[int]int{4: 3, 5: 6, 6: 10, 7: 15, 8: 21}

func buildTriplets() [21]triplet {
	primes := [21]byte{
		2, 3, 5,
		7, 11, 13,
		17, 19, 23, 29,
		31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73,
	}
	pairs := [21][2]int{
		{1, 2}, {1, 3}, {2, 3},
		{2, 4}, {1, 4}, {3, 4},
		{1, 5}, {2, 5}, {3, 5}, {4, 5},
		{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6},
		{1, 7}, {2, 7}, {3, 7}, {4, 7}, {5, 7}, {6, 7},
	}
	var t [21]triplet
	for i := range t {
		t[i] = triplet{
			salt: pearson.Canonical.Hash1(primes[i]),
			a:    pairs[i][0],
			b:    pairs[i][1],
		}
	}
	return t
}
