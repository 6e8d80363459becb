//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || loong64 || wasm

package buddy

// word is the natural word of a 64-bit target: the type used for
// partition sizes and the pool descriptor's size field, per the build's
// word-width option (spec §4.4).
type word = uint64

// wordSize is sizeof(word) in bytes.
const wordSize = 8
