//go:build unix

package memory

import "golang.org/x/sys/unix"

func init() {
	register("mmap", func() Source { return MmapSource{} })
}

// MmapSource maps fresh anonymous pages for every buffer and unmaps them on
// release.
type MmapSource struct{}

// Name returns "mmap".
func (MmapSource) Name() string { return "mmap" }

// Alloc maps n*4 bytes of zeroed anonymous memory.
func (s MmapSource) Alloc(n int) (*IntBuffer, error) {
	if err := checkCount(s.Name(), n); err != nil {
		return nil, err
	}

	b, err := unix.Mmap(-1, 0, n*intSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &AllocError{Source: s.Name(), Count: n, Err: err}
	}

	return newIntBuffer(bytesToInts(b, n), func() error {
		return unix.Munmap(b)
	}), nil
}
