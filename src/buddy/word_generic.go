//go:build !amd64 && !arm64 && !ppc64 && !ppc64le && !mips64 && !mips64le && !riscv64 && !s390x && !loong64 && !wasm && !386 && !arm && !mips && !mipsle && !ppc && !riscv32 && !msp430 && !avr

package buddy

// word falls back to uint64 on any target this module does not carry an
// explicit word-width variant for.
type word = uint64

// wordSize is sizeof(word) in bytes.
const wordSize = 8
