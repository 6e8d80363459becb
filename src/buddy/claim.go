package buddy

import (
	"unsafe"

	"github.com/alewtschuk/buddypool/src/list"
)

// Claim returns a pointer to a usable region of at least length bytes,
// carved out of pool.
//
// It rounds length up (after accounting for metadata overhead) to the
// next power of two, walks the partition list head-to-tail for the
// first free partition large enough to hold the request, and
// recursively halves it until its size matches the request exactly.
// Ordering is address order, not size order, so "first fit" here is
// positional: the chosen partition may start out larger than strictly
// necessary and gets trimmed down by splitting.
func Claim(pool *Pool, length word) (unsafe.Pointer, error) {
	if pool == nil {
		return nil, StatusNullPointer.err()
	}
	if length == 0 {
		return nil, StatusSizeError.err()
	}

	required := roundUpPow2(length + MetadataSize())

	partition := list.Find(headNode(pool), func(userData unsafe.Pointer) bool {
		hdr := (*header)(userData)
		return hdr.size() >= required && !hdr.isOccupied()
	})
	if partition == nil {
		return nil, StatusOutOfMemory.err()
	}

	for partitionHeader(partition).size() > required {
		if err := splitPartition(partition); err != nil {
			return nil, StatusGenericError.err()
		}
	}

	hdr := partitionHeader(partition)
	hdr.setOccupied(true)

	usable := unsafe.Add(unsafe.Pointer(partition), MetadataSize())
	return usable, nil
}

// splitPartition halves a free partition in place. The left half keeps
// partition's node and header, shrunk to half size; a fresh node and
// header are written at the partition's midpoint for the right half,
// which is spliced in immediately after partition in the list. Both
// halves come out free; the caller (Claim) may go on to occupy the left
// half once its size reaches the target.
func splitPartition(partition *list.Node) error {
	hdr := partitionHeader(partition)
	newLen := hdr.size() / 2

	buddyNode := (*list.Node)(unsafe.Add(unsafe.Pointer(partition), newLen))
	buddyHdr := (*header)(unsafe.Add(unsafe.Pointer(buddyNode), unsafe.Sizeof(list.Node{})))

	if err := list.InitNode(buddyNode, unsafe.Pointer(buddyHdr)); err != nil {
		return err
	}
	if err := list.InsertAfter(partition, buddyNode); err != nil {
		return err
	}

	hdr.setSize(newLen)
	buddyHdr.setSize(newLen)
	buddyHdr.setOccupied(false)
	buddyHdr.setMagic()

	return nil
}
