package basics

import (
	"fmt"
	"io"
)

// Slices walks through append, indexing, len, removal and copy on an int slice.
func Slices(w io.Writer) {
	var numbers []int
	numbers = append(numbers, 10, 20, 30)
	fmt.Fprintln(w, numbers)

	fmt.Fprintln(w, numbers[0])
	fmt.Fprintln(w, numbers[2])

	numbers[1] = 25
	fmt.Fprintln(w, numbers[1])
	fmt.Fprintln(w, len(numbers))

	numbers = append(numbers, 40, 50)
	fmt.Fprintln(w, numbers)

	// drop index 2
	numbers = append(numbers[:2], numbers[3:]...)
	fmt.Fprintln(w, numbers)

	newNumbers := make([]int, len(numbers))
	copy(newNumbers, numbers)
	fmt.Fprintln(w, newNumbers)
}
