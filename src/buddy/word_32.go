//go:build 386 || arm || mips || mipsle || ppc || riscv32

package buddy

// word is the natural word of a 32-bit target (spec §4.4 word-width
// build option).
type word = uint32

// wordSize is sizeof(word) in bytes.
const wordSize = 4
