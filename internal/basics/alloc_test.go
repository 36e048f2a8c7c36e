package basics

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-fundamentals/internal/memory"
)

func TestSquares(t *testing.T) {
	var out bytes.Buffer
	var allocs, releases int
	src := &memory.ObservedSource{
		Source:    memory.NewHeapSource(),
		OnAlloc:   func(int, error) { allocs++ },
		OnRelease: func(int) { releases++ },
	}

	require.NoError(t, Squares(&out, src, SquaresCount))
	assert.Equal(t, "0 1 4 9 16 25 36 49 64 81 \n", out.String())
	assert.Equal(t, 1, allocs)
	assert.Equal(t, 1, releases)
}

func TestSquares_EveryValueIsIndexSquared(t *testing.T) {
	for _, name := range memory.Names() {
		t.Run(name, func(t *testing.T) {
			src, err := memory.Lookup(name)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, Squares(&out, src, 25))

			fields := strings.Fields(out.String())
			require.Len(t, fields, 25)
			for i, f := range fields {
				v, err := strconv.Atoi(f)
				require.NoError(t, err)
				assert.Equal(t, i*i, v)
			}
		})
	}
}

func TestSquares_AllocationFailure(t *testing.T) {
	var out bytes.Buffer
	var allocs, releases int
	inner := &memory.ObservedSource{
		Source:    memory.NewHeapSource(),
		OnAlloc:   func(int, error) { allocs++ },
		OnRelease: func(int) { releases++ },
	}

	err := Squares(&out, &memory.FailingSource{Source: inner}, SquaresCount)
	require.ErrorIs(t, err, memory.ErrAllocFailed)
	assert.Equal(t, "Memory allocation failed.\n", out.String())
	assert.Zero(t, allocs)
	assert.Zero(t, releases)
}

func TestSquares_InvalidCountPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	err := Squares(&out, memory.NewHeapSource(), 0)
	require.ErrorIs(t, err, memory.ErrInvalidCount)
	assert.Empty(t, out.String())
}
