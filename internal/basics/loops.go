package basics

import (
	"fmt"
	"io"
)

// Loops counts to n three ways: a range loop, a condition-only loop and an
// unconditional loop left with break. The last loop runs at least once.
func Loops(w io.Writer, n int) {
	for i := range n {
		fmt.Fprintf(w, "Value of i is: %d\n", i)
	}

	j := 0
	for j < n {
		fmt.Fprintf(w, "Value of j is: %d\n", j)
		j++
	}

	k := 0
	for {
		fmt.Fprintf(w, "Value of k is: %d\n", k)
		k++
		if k >= n {
			break
		}
	}
}
