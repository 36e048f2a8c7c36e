package basics

import (
	"fmt"
	"io"
	"unsafe"
)

// ArrayLen is the fixed capacity of both arrays in the array program.
const ArrayLen = 5

// Arrays returns the two arrays of the array program: first holds its own
// indices, second is the literal 1..5.
func Arrays() (first, second [ArrayLen]int) {
	second = [...]int{1, 2, 3, 4, 5}
	for i := range len(first) {
		first[i] = i
	}
	return first, second
}

// ElementCount derives the length of a [ArrayLen]int from its storage size,
// the way it is done without a length-carrying array type.
func ElementCount() int {
	var a [ArrayLen]int
	return int(unsafe.Sizeof(a) / unsafe.Sizeof(a[0]))
}

// Array prints element 2 of the index-filled array.
func Array(w io.Writer) {
	first, _ := Arrays()
	fmt.Fprintln(w, first[2])
}

// ArrayWalkthrough assigns, reads, modifies and measures a [5]int.
func ArrayWalkthrough(w io.Writer) {
	var numbers [ArrayLen]int
	numbers[0] = 10
	numbers[1] = 20
	numbers[2] = 30
	numbers[3] = 40
	numbers[4] = 50
	fmt.Fprintln(w, numbers)

	fmt.Fprintln(w, numbers[0])
	fmt.Fprintln(w, numbers[4])

	numbers[1] = 25
	fmt.Fprintln(w, numbers[1])

	fmt.Fprintln(w, len(numbers))
}
