package score

// bitPairDiff[x][y] is the precomputed distance between bytes x and y when
// each is read as four 2-bit digits: for each of the four digit positions,
// take the absolute difference of the two digits, replace a difference of 3
// with 6 (the two extreme codes, 0 and 3, are treated as maximally
// dissimilar rather than merely three apart), and sum across all four
// positions. The result is always in [0, 24].
var bitPairDiff = buildBitPairDiff()

func digitAt(v byte, i uint) int {
	return int((v >> (2 * i)) & 0x3)
}

func buildBitPairDiff() [256][256]int {
	var table [256][256]int
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			total := 0
			for i := uint(0); i < 4; i++ {
				d := digitAt(byte(x), i) - digitAt(byte(y), i)
				if d < 0 {
					d = -d
				}
				if d == 3 {
					d = 6
				}
				total += d
			}
			table[x][y] = total
		}
	}
	return table
}
