package basics

import (
	"fmt"
	"io"
)

// Pointer prints num, its address, a pointer to it and the value behind that
// pointer. If mutate is not nil its value is then written through the pointer.
func Pointer(w io.Writer, num int, mutate *int) {
	ptr := &num

	fmt.Fprintf(w, "Value of num: %d\n", num)
	fmt.Fprintf(w, "Address of num: %p\n", &num)
	fmt.Fprintf(w, "Value of ptr: %p\n", ptr)
	fmt.Fprintf(w, "Value pointed to by ptr: %d\n", *ptr)

	if mutate == nil {
		return
	}
	*ptr = *mutate
	fmt.Fprintf(w, "Number after change: %d\n", num)
	fmt.Fprintf(w, "Dereferenced pointer: %d\n", *ptr)
}

// PointerToPointer writes first through a pointer to x, then second through
// a pointer to that pointer, printing x after each write.
func PointerToPointer(w io.Writer, x, first, second int) {
	ptr := &x
	*ptr = first
	fmt.Fprintf(w, "The value of x is: %d\n", x)

	ptrPtr := &ptr
	**ptrPtr = second
	fmt.Fprintf(w, "The value of x is: %d\n", x)
}
