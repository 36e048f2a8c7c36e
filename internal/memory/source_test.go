package memory

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_AllocSetClose(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			src, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, src.Name())

			buf, err := src.Alloc(10)
			require.NoError(t, err)
			require.Equal(t, 10, buf.Len())

			for i := 0; i < buf.Len(); i++ {
				assert.Equal(t, int32(0), buf.At(i), "fresh storage is zeroed")
				buf.Set(i, int32(i*i))
			}
			assert.Equal(t, []int32{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, buf.Ints())

			require.NoError(t, buf.Close())
			assert.True(t, buf.Closed())

			if c, ok := src.(interface{ Close() error }); ok {
				assert.NoError(t, c.Close())
			}
		})
	}
}

func TestSources_RejectNonPositiveCount(t *testing.T) {
	for _, name := range Names() {
		src, err := Lookup(name)
		require.NoError(t, err)

		for _, n := range []int{0, -1} {
			buf, err := src.Alloc(n)
			assert.Nil(t, buf)
			assert.ErrorIs(t, err, ErrInvalidCount, "%s(%d)", name, n)
			assert.NotErrorIs(t, err, ErrAllocFailed)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("stack")
	require.ErrorIs(t, err, ErrUnknownSource)
	assert.Contains(t, err.Error(), "heap")
}

func TestNames_IncludesHeap(t *testing.T) {
	assert.Contains(t, Names(), "heap")
}

func TestIntBuffer_CloseTwice(t *testing.T) {
	src := NewHeapSource()
	defer src.Close()

	buf, err := src.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, buf.Close())
	assert.NoError(t, buf.Close())
}

func TestIntBuffer_UseAfterClosePanics(t *testing.T) {
	src := NewHeapSource()
	defer src.Close()

	buf, err := src.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, buf.Close())

	assert.Panics(t, func() { buf.At(0) })
	assert.Panics(t, func() { buf.Set(0, 1) })
	assert.Panics(t, func() { _ = buf.Len() })
}

func TestFailingSource(t *testing.T) {
	var allocs, releases int
	inner := &ObservedSource{
		Source:    NewHeapSource(),
		OnAlloc:   func(int, error) { allocs++ },
		OnRelease: func(int) { releases++ },
	}
	src := &FailingSource{Source: inner, After: 2}

	for i := 0; i < 2; i++ {
		buf, err := src.Alloc(3)
		require.NoError(t, err)
		require.NoError(t, buf.Close())
	}

	buf, err := src.Alloc(3)
	assert.Nil(t, buf)
	require.ErrorIs(t, err, ErrAllocFailed)

	var allocErr *AllocError
	require.True(t, errors.As(err, &allocErr))
	assert.Equal(t, 3, allocErr.Count)
	assert.Equal(t, "failing(heap)", allocErr.Source)

	assert.Equal(t, 2, allocs, "failed call must not reach the wrapped source")
	assert.Equal(t, 2, releases)
}

func TestFailingSource_NoInner(t *testing.T) {
	src := &FailingSource{}
	buf, err := src.Alloc(10)
	assert.Nil(t, buf)
	assert.ErrorIs(t, err, ErrAllocFailed)
	assert.Equal(t, "failing", src.Name())
}

func TestObservedSource_ReleaseExactlyOnce(t *testing.T) {
	var released []int
	src := &ObservedSource{
		Source:    NewHeapSource(),
		OnRelease: func(n int) { released = append(released, n) },
	}

	buf, err := src.Alloc(10)
	require.NoError(t, err)
	assert.Empty(t, released)

	require.NoError(t, buf.Close())
	require.NoError(t, buf.Close())
	assert.Equal(t, []int{10}, released)
}

func TestAllocError_Wraps(t *testing.T) {
	cause := errors.New("out of pages")
	err := error(&AllocError{Source: "heap", Count: 10, Err: cause})

	assert.ErrorIs(t, err, ErrAllocFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "heap: allocating 10 ints: out of pages", err.Error())
}

func TestSources_OverflowingCountFails(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			src, err := Lookup(name)
			require.NoError(t, err)

			for _, n := range []int{math.MaxInt/intSize + 1, math.MaxInt/2 + 1, math.MaxInt} {
				buf, err := src.Alloc(n)
				assert.Nil(t, buf)
				require.ErrorIs(t, err, ErrAllocFailed, "n=%d", n)

				var allocErr *AllocError
				require.True(t, errors.As(err, &allocErr))
				assert.Equal(t, n, allocErr.Count)
			}

			// the source is still usable afterwards
			buf, err := src.Alloc(2)
			require.NoError(t, err)
			require.NoError(t, buf.Close())

			if c, ok := src.(interface{ Close() error }); ok {
				assert.NoError(t, c.Close())
			}
		})
	}
}

func TestHeapSource_AllocatorPanicReleasesLock(t *testing.T) {
	src := NewHeapSource()

	_, err := src.calloc(-1)
	require.Error(t, err)

	done := make(chan error, 1)
	go func() { done <- src.Close() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked on the allocator lock")
	}
}
