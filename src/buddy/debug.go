package buddy

import (
	"unsafe"

	"github.com/alewtschuk/buddypool/src/list"
)

// DebugInfo describes one partition, as reported by DecodeDebugInfo. It
// exists for testing and diagnostics; no API function in this package
// consumes it directly.
type DebugInfo struct {
	IsFirst          bool
	IsLast           bool
	Occupied         bool
	TotalSize        word
	UsableSize       word
	PartitionAddress unsafe.Pointer
	UsableAddress    unsafe.Pointer
}

// PartitionsUsed returns the number of partitions currently in the
// pool's list, occupied or not. It returns zero for a nil pool.
func PartitionsUsed(pool *Pool) word {
	if pool == nil {
		return 0
	}
	return word(list.Count(headNode(pool)))
}

// MemoryUsed returns the total bytes considered "used": every
// partition's header (occupied or not — headers always consume bytes
// regardless of occupancy) plus the usable bytes of occupied partitions.
func MemoryUsed(pool *Pool) word {
	if pool == nil {
		return 0
	}
	var used word
	list.Traverse(headNode(pool), func(n *list.Node, _ any) {
		hdr := partitionHeader(n)
		used += MetadataSize()
		if hdr.isOccupied() {
			used += hdr.size() - MetadataSize()
		}
	}, nil)
	return used
}

// DecodeDebugInfo fills rows with one entry per partition and returns
// the number of rows written. Size rows via a prior PartitionsUsed call;
// extra partitions beyond len(rows) are silently skipped. It returns
// zero if pool or rows is nil.
func DecodeDebugInfo(pool *Pool, rows []DebugInfo) word {
	if pool == nil || rows == nil {
		return 0
	}
	idx := 0
	list.Traverse(headNode(pool), func(n *list.Node, _ any) {
		if idx >= len(rows) {
			return
		}
		hdr := partitionHeader(n)
		rows[idx] = DebugInfo{
			IsFirst:          list.Prev(n) == nil,
			IsLast:           list.Next(n) == nil,
			Occupied:         hdr.isOccupied(),
			TotalSize:        hdr.size(),
			UsableSize:       hdr.size() - MetadataSize(),
			PartitionAddress: unsafe.Pointer(n),
			UsableAddress:    unsafe.Add(unsafe.Pointer(n), MetadataSize()),
		}
		idx++
	}, nil)
	return word(idx)
}
