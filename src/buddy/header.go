package buddy

// size returns the partition's total size, including its node and
// header, i.e. the power-of-two the partition was split down to.
func (h *header) size() word {
	return h.totalSize
}

// setSize overwrites the partition's total size.
func (h *header) setSize(s word) {
	h.totalSize = s
}

// isOccupied reports whether the partition's usable region has been
// handed out and not yet released.
func (h *header) isOccupied() bool {
	return h.occupied
}

// setOccupied overwrites the partition's occupied flag.
func (h *header) setOccupied(o bool) {
	h.occupied = o
}
