//go:build msp430 || avr

package buddy

// word is the natural word of a 16-bit target (spec §4.4 word-width
// build option). The buddysanity tag is not rejected at this width; with
// it, the magic field enlarges the header, so MetadataSize differs
// between the two modes here.
type word = uint16

// wordSize is sizeof(word) in bytes.
const wordSize = 2
