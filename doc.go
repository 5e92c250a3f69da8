// Package tlsh implements the TLSH locality-sensitive fuzzy hash. Unlike a
// cryptographic digest, TLSH is designed so that small perturbations of the
// input produce small changes in the digest: numerical distance between two
// digests, computed by Score, correlates with edit distance between the
// inputs that produced them.
//
// A Digester consumes an arbitrary byte stream in any number of Write calls
// and produces a digest.Value on Finalize. The digest packs to a compact
// binary form and an upper-case hex transport encoding; Score compares two
// packed digests and returns a bounded, nonnegative distance.
package tlsh
