package buddy

import (
	"unsafe"

	"github.com/alewtschuk/buddypool/src/list"
)

// Release returns a previously claimed region to pool.
//
// It recovers the partition from ptr by stepping back MetadataSize()
// bytes, validates it (magic, when sanity checking is compiled in, and
// the occupied flag — this is what catches double-release and release
// of an interior address), clears its occupied flag, and repeatedly
// merges it with a free, same-size buddy until no further merge is
// possible.
func Release(pool *Pool, ptr unsafe.Pointer) error {
	if pool == nil || ptr == nil {
		return StatusNullPointer.err()
	}

	partitionAddr := uintptr(ptr) - uintptr(MetadataSize())
	partition := (*list.Node)(unsafe.Pointer(partitionAddr))
	hdr := partitionHeader(partition)

	if !hdr.checkMagic() {
		return StatusInvalidMemory.err()
	}
	if !hdr.isOccupied() {
		return StatusInvalidMemory.err()
	}
	hdr.setOccupied(false)

	current := partition
	for {
		next, merged, err := mergeStep(pool, current)
		if err != nil {
			return StatusGenericError.err()
		}
		if !merged {
			break
		}
		current = next
	}

	return nil
}

// mergeStep attempts a single merge of partition with its buddy.
//
// Both list neighbours may have the same size as partition, so which
// side to look on is decided by alignment relative to the pool base: if
// partition starts on a 2*size boundary, its buddy is the list
// successor, otherwise the predecessor. That neighbour is merged only if
// it has equal size and is free.
//
// On a successful merge it returns the lower-addressed partition of the
// pair (now double-sized) as the next partition to examine, and true. If
// no merge happened it returns partition unchanged and false.
func mergeStep(pool *Pool, partition *list.Node) (*list.Node, bool, error) {
	hdr := partitionHeader(partition)
	size := hdr.size()

	offset := uintptr(unsafe.Pointer(partition)) - uintptr(pool.BaseAddr)
	buddyIsNext := offset%(uintptr(size)*2) == 0

	var buddy *list.Node
	if buddyIsNext {
		buddy = list.Next(partition)
	} else {
		buddy = list.Prev(partition)
	}
	if buddy == nil {
		return partition, false, nil
	}

	buddyHdr := partitionHeader(buddy)
	if buddyHdr.size() != size || buddyHdr.isOccupied() {
		return partition, false, nil
	}

	left := partition
	if uintptr(unsafe.Pointer(buddy)) < uintptr(unsafe.Pointer(partition)) {
		left = buddy
	}

	leftHdr := partitionHeader(left)
	leftHdr.setSize(size * 2)
	if _, err := list.DeleteAfter(left, nil); err != nil {
		return partition, false, err
	}

	return left, true, nil
}
