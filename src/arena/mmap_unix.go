//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package arena

import "golang.org/x/sys/unix"

// New mmaps an anonymous, zero-filled region of the given size and
// returns it as a byte slice suitable for handing to buddy.NewPool or
// buddy.Init. The caller must Release it once the pool built on top is
// decommissioned.
func New(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

// Release unmaps a buffer obtained from New or NewPowerOfTwo. It is a
// no-op for an empty slice.
func Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munmap(buf)
}
