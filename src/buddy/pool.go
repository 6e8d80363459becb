// Package buddy implements a buddy memory pool that sub-allocates from a
// single fixed-size, externally provided byte buffer.
//
// The allocator hands out aligned byte regions of caller-requested size,
// reclaims them on release, and coalesces freed regions with their
// size-matched neighbours so the pool returns to its initial single-
// region state once fully drained. It threads an intrusive, address-
// ordered doubly-linked list (src/list) through the buffer itself: every
// partition begins with a list node, followed by a header carrying its
// total size and occupied flag, followed by the usable region handed to
// callers.
//
// The allocator is single-context: callers serialise their own access
// (spec §5, Non-goals). It never calls into system memory management;
// the caller supplies the buffer (see src/arena for a convenience helper
// that obtains one via mmap) and frees it once the pool is decommissioned.
package buddy

import (
	"unsafe"

	"github.com/alewtschuk/buddypool/src/list"
)

// Pool is the externally-visible descriptor of a managed buffer. The
// caller sets BaseAddr and Size before calling Init; the allocator never
// mutates these two fields afterwards, only the bytes they describe.
type Pool struct {
	// BaseAddr is the base address of the buffer this pool manages.
	BaseAddr unsafe.Pointer
	// Size is the total size of the buffer in bytes. Must be a power of
	// two.
	Size word
}

// MetadataSize returns the number of bytes consumed by a partition's
// list node plus its header — the overhead hidden from every usable
// region. Callers sizing a pool by hand need at least MetadataSize()+1
// bytes to fit a single claim.
func MetadataSize() word {
	return word(unsafe.Sizeof(list.Node{})) + word(unsafe.Sizeof(header{}))
}

// Init prepares pool for use. It must be called once, before any Claim
// or Release, and writes a single free partition spanning the whole
// buffer.
//
// Init validates that pool and pool.BaseAddr are non-nil, that pool.Size
// is a power of two, and that the buffer is large enough to hold at
// least one byte of usable space past the header.
func Init(pool *Pool) error {
	if pool == nil {
		return StatusNullPointer.err()
	}
	if pool.BaseAddr == nil {
		return StatusNullPointer.err()
	}
	if !isPowerOfTwo(pool.Size) {
		return StatusSizeError.err()
	}
	if pool.Size <= MetadataSize() {
		return StatusOutOfMemory.err()
	}

	node := (*list.Node)(pool.BaseAddr)
	hdr := (*header)(unsafe.Pointer(uintptr(pool.BaseAddr) + uintptr(unsafe.Sizeof(list.Node{}))))
	if err := list.InitNode(node, unsafe.Pointer(hdr)); err != nil {
		return StatusGenericError.err()
	}

	hdr.setSize(pool.Size)
	hdr.setOccupied(false)
	hdr.setMagic()

	return nil
}

// NewPool is a convenience constructor that wraps a caller-supplied
// buffer in a Pool descriptor and initializes it in one call.
func NewPool(buf []byte) (*Pool, error) {
	if len(buf) == 0 {
		return nil, StatusNullPointer.err()
	}
	pool := &Pool{
		BaseAddr: unsafe.Pointer(&buf[0]),
		Size:     word(len(buf)),
	}
	if err := Init(pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func headNode(pool *Pool) *list.Node {
	return (*list.Node)(pool.BaseAddr)
}

func partitionHeader(n *list.Node) *header {
	return (*header)(list.UserData(n))
}
