//go:build cgo

package memory

/*
#include <stdint.h>
#include <stdlib.h>

static inline int32_t *alloc_ints(size_t n) {
    return calloc(n, sizeof(int32_t));
}

static inline void free_ints(int32_t *p) {
    free(p);
}
*/
// #cgo nocallback alloc_ints
// #cgo noescape alloc_ints
// #cgo nocallback free_ints
// #cgo noescape free_ints
import "C"
import (
	"errors"
	"unsafe"
)

// cgo wraps C.malloc so that a NULL return panics; calling calloc through a
// helper keeps the NULL observable.
var errNullPointer = errors.New("libc returned NULL")

func init() {
	register("cgo", func() Source { return CSource{} })
}

// CSource allocates with libc calloc and releases with free.
type CSource struct{}

// Name returns "cgo".
func (CSource) Name() string { return "cgo" }

// Alloc calls calloc for n int32 values.
func (s CSource) Alloc(n int) (*IntBuffer, error) {
	if err := checkCount(s.Name(), n); err != nil {
		return nil, err
	}

	p := C.alloc_ints(C.size_t(n))
	if p == nil {
		return nil, &AllocError{Source: s.Name(), Count: n, Err: errNullPointer}
	}

	data := unsafe.Slice((*int32)(unsafe.Pointer(p)), n)
	return newIntBuffer(data, func() error {
		C.free_ints(p)
		return nil
	}), nil
}
