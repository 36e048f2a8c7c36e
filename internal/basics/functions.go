package basics

import (
	"fmt"
	"io"
)

// DoubleValue returns 2*x. The caller's variable is untouched.
func DoubleValue(x int) int {
	return 2 * x
}

// DoubleInPlace doubles the int x points to.
func DoubleInPlace(x *int) {
	*x *= 2
}

// Functions prints DoubleValue(n), n, then n after DoubleInPlace(&n).
func Functions(w io.Writer, n int) {
	fmt.Fprintln(w, DoubleValue(n))
	fmt.Fprintln(w, n)
	DoubleInPlace(&n)
	fmt.Fprintln(w, n)
}
