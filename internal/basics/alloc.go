package basics

import (
	"errors"
	"fmt"
	"io"

	"go-fundamentals/internal/memory"
)

// AllocFailedMessage is printed when the source cannot supply the buffer.
const AllocFailedMessage = "Memory allocation failed."

// SquaresCount is the number of elements the allocation program requests.
const SquaresCount = 10

// FillSquares sets element i of buf to i*i.
func FillSquares(buf *memory.IntBuffer) {
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, int32(i*i))
	}
}

// Squares acquires n ints from src, fills them with squares, prints them
// space separated and releases the storage. On allocation failure it prints
// AllocFailedMessage and returns the error without touching any storage.
func Squares(w io.Writer, src memory.Source, n int) (err error) {
	buf, err := src.Alloc(n)
	if err != nil {
		if errors.Is(err, memory.ErrAllocFailed) {
			fmt.Fprintln(w, AllocFailedMessage)
		}
		return err
	}
	defer func() {
		if cerr := buf.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("releasing buffer: %w", cerr)
		}
	}()

	FillSquares(buf)
	for _, v := range buf.Ints() {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
	return nil
}
