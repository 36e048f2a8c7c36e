package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	mm "modernc.org/memory"
)

// Source hands out IntBuffers. A nil buffer is never returned without an error.
type Source interface {
	Alloc(n int) (*IntBuffer, error)
	Name() string
}

var registry = map[string]func() Source{
	"heap": func() Source { return NewHeapSource() },
}

func register(name string, factory func() Source) {
	registry[name] = factory
}

// Names lists the sources available in this build, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a new instance of the named source.
func Lookup(name string) (Source, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownSource, name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// HeapSource allocates from an mmap-backed heap that the garbage collector
// does not manage.
type HeapSource struct {
	mu    sync.Mutex
	alloc mm.Allocator
}

// NewHeapSource returns a HeapSource with an empty allocator.
func NewHeapSource() *HeapSource {
	return &HeapSource{}
}

// Name returns "heap".
func (s *HeapSource) Name() string { return "heap" }

// Alloc takes n zeroed int32 values from the allocator.
func (s *HeapSource) Alloc(n int) (*IntBuffer, error) {
	if err := checkCount(s.Name(), n); err != nil {
		return nil, err
	}

	b, err := s.calloc(n * intSize)
	if err != nil {
		return nil, &AllocError{Source: s.Name(), Count: n, Err: err}
	}

	return newIntBuffer(bytesToInts(b, n), func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.alloc.Free(b)
	}), nil
}

// calloc holds the allocator lock for one request. The allocator panics on
// sizes it cannot map; that is reported as an error with the lock released.
func (s *HeapSource) calloc(size int) (b []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("calloc(%d): %v", size, r)
		}
	}()
	return s.alloc.Calloc(size)
}

// Close returns every page still held by the allocator to the OS.
func (s *HeapSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alloc.Close()
}

// FailingSource injects allocation failures. The first After calls are passed
// to Source; every later call fails without touching it.
type FailingSource struct {
	Source Source
	After  int

	calls atomic.Int64
}

func (f *FailingSource) Name() string {
	if f.Source == nil {
		return "failing"
	}
	return "failing(" + f.Source.Name() + ")"
}

func (f *FailingSource) Alloc(n int) (*IntBuffer, error) {
	if f.calls.Add(1) > int64(f.After) || f.Source == nil {
		return nil, &AllocError{Source: f.Name(), Count: n, Err: ErrAllocFailed}
	}
	return f.Source.Alloc(n)
}

// ObservedSource reports every acquisition and release made through Source.
type ObservedSource struct {
	Source    Source
	OnAlloc   func(n int, err error)
	OnRelease func(n int)
}

func (o *ObservedSource) Name() string { return o.Source.Name() }

func (o *ObservedSource) Alloc(n int) (*IntBuffer, error) {
	buf, err := o.Source.Alloc(n)
	if o.OnAlloc != nil {
		o.OnAlloc(n, err)
	}
	if err != nil {
		return nil, err
	}
	if o.OnRelease != nil {
		buf.onClose(func() { o.OnRelease(n) })
	}
	return buf, nil
}
