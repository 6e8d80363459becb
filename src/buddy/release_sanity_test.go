//go:build buddysanity

package buddy

import (
	"fmt"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/alewtschuk/buddypool/src/list"
)

// TestReleaseDetectsCorruptedMagic exercises the checkMagic branch of
// Release directly: the partition is still occupied (the ordinary state
// right after a successful Claim), so only a corrupted magic field can
// fail this release, not the occupied-flag path TestReleaseRejectsDoubleFree
// already covers.
func TestReleaseDetectsCorruptedMagic(t *testing.T) {
	fmt.Fprintln(os.Stderr, "->Testing release rejects a corrupted magic value")
	pool := newPool(t, 1024)

	ptr, err := Claim(pool, word(64)-MetadataSize())
	assert.NoError(t, err)

	partitionAddr := uintptr(ptr) - uintptr(MetadataSize())
	partition := (*list.Node)(unsafe.Pointer(partitionAddr))
	hdr := partitionHeader(partition)
	assert.True(t, hdr.checkMagic(), "magic should be intact right after Claim")

	hdr.magic = magicValue + 1

	assert.ErrorIs(t, Release(pool, ptr), StatusInvalidMemory)
}
