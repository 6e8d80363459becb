package buddy

import "math/bits"

// isPowerOfTwo reports whether v is a power of two. Zero is not.
func isPowerOfTwo(v word) bool {
	return v != 0 && v&(v-1) == 0
}

// roundUpPow2 rounds v up to the next power of two (v itself, if it
// already is one).
//
// Spec §9 flags the original source's fill-the-lower-bits-then-add-one
// routine as buggy on 64-bit targets: it omits the final `>> 32` shift,
// so it under-rounds any v whose high 32 bits are non-zero. Rather than
// reproduce that, this uses the leading-zero-count formulation the spec
// names as an acceptable fix in its place — the same technique
// _examples/other_examples' cloudwego buddy allocator uses for its
// order calculation (bits.Len over the value minus one).
func roundUpPow2(v word) word {
	if v <= 1 {
		return 1
	}
	n := bits.Len64(uint64(v) - 1)
	return word(uint64(1) << uint(n))
}
