package tlsh

import (
	"github.com/gtank/tlsh/digest"
	"github.com/gtank/tlsh/internal/window"
	"github.com/gtank/tlsh/pearson"
	"github.com/gtank/tlsh/score"
)

// Sentinel errors, re-exported from the packages that raise them so callers
// can errors.Is against a single tlsh-rooted set of names.
var (
	// ErrInvalidParameter is returned by New when (w, b, c) is not a valid
	// digester configuration, and by ParseAlgorithm for a malformed or
	// disallowed algorithm name.
	ErrInvalidParameter = window.ErrInvalidParameter

	// ErrInvalidPermutation is returned by pearson.New (re-exported here
	// for callers who construct a custom Pearson table) when the supplied
	// table is not a permutation of 0..255.
	ErrInvalidPermutation = pearson.ErrInvalidPermutation

	// ErrBadFormat is returned by HexToBytes when the input is not valid
	// hex, and by Unpack when the buffer is not a validly shaped packed
	// digest.
	ErrBadFormat = digest.ErrBadFormat

	// ErrMismatched is returned by Score when the two digests being
	// compared have differing checksum or body lengths.
	ErrMismatched = score.ErrMismatched
)
