package basics

import (
	"fmt"
	"io"
)

// FindMax returns the largest element of numbers. ok is false when numbers
// is empty.
func FindMax(numbers []int) (largest int, ok bool) {
	if len(numbers) == 0 {
		return 0, false
	}
	largest = numbers[0]
	for _, n := range numbers[1:] {
		if n > largest {
			largest = n
		}
	}
	return largest, true
}

// PrintMax reports the largest element of numbers, or that there is none.
func PrintMax(w io.Writer, numbers []int) {
	if largest, ok := FindMax(numbers); ok {
		fmt.Fprintf(w, "The maximum value is: %d\n", largest)
	} else {
		fmt.Fprintln(w, "The slice is empty")
	}
}
