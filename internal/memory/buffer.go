// Package memory provides the dynamic-memory sources used by the allocation
// programs and the owned integer buffer they hand out.
package memory

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

const intSize = int(unsafe.Sizeof(int32(0)))

var (
	// ErrAllocFailed is reported when a source cannot supply usable storage.
	ErrAllocFailed = errors.New("memory allocation failed")
	// ErrInvalidCount is returned for non-positive element counts.
	ErrInvalidCount = errors.New("element count must be positive")
	// ErrUnknownSource is returned by Lookup for names with no registered source.
	ErrUnknownSource = errors.New("unknown memory source")

	errTooLarge = errors.New("size overflows int")
)

// checkCount validates an element count before any storage is requested.
// Counts whose byte size does not fit in an int are allocation failures.
func checkCount(source string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > math.MaxInt/intSize {
		return &AllocError{Source: source, Count: n, Err: errTooLarge}
	}
	return nil
}

// AllocError wraps a failed acquisition with the source and size requested.
type AllocError struct {
	Source string
	Count  int
	Err    error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("%s: allocating %d ints: %v", e.Source, e.Count, e.Err)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}

// Is reports every AllocError as ErrAllocFailed regardless of the cause.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocFailed
}

// IntBuffer is a contiguous run of int32 values owned by the caller until
// Close is called.
type IntBuffer struct {
	data    []int32
	release func() error
	hooks   []func()
}

func newIntBuffer(data []int32, release func() error) *IntBuffer {
	b := &IntBuffer{data: data, release: release}

	// Set finalizer to ensure cleanup
	runtime.SetFinalizer(b, (*IntBuffer).finalize)

	return b
}

// bytesToInts reinterprets a byte block as int32 values. All sources hand out
// blocks aligned at least to 8 bytes.
func bytesToInts(b []byte, n int) []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Len returns the number of elements in the buffer.
func (b *IntBuffer) Len() int {
	b.mustBeOpen()
	return len(b.data)
}

// At returns element i.
func (b *IntBuffer) At(i int) int32 {
	b.mustBeOpen()
	return b.data[i]
}

// Set stores v at element i.
func (b *IntBuffer) Set(i int, v int32) {
	b.mustBeOpen()
	b.data[i] = v
}

// Ints returns a view of the buffer. The view must not be used after Close.
func (b *IntBuffer) Ints() []int32 {
	b.mustBeOpen()
	return b.data
}

// Closed reports whether the storage has been released.
func (b *IntBuffer) Closed() bool {
	return b.release == nil
}

// Close releases the storage back to its source. Calling Close again is a no-op.
func (b *IntBuffer) Close() error {
	runtime.SetFinalizer(b, nil)
	return b.finalize()
}

func (b *IntBuffer) finalize() error {
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	b.data = nil

	err := release()
	for _, hook := range b.hooks {
		hook()
	}
	b.hooks = nil
	return err
}

func (b *IntBuffer) onClose(hook func()) {
	b.hooks = append(b.hooks, hook)
}

func (b *IntBuffer) mustBeOpen() {
	if b.release == nil {
		panic("memory: use of IntBuffer after Close")
	}
}
