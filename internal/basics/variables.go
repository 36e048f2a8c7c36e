package basics

import (
	"fmt"
	"io"
)

// Variables declares an int, a string and a bool and prints each.
func Variables(w io.Writer) {
	x := 5
	y := "Hello, world!"
	z := true

	fmt.Fprintf(w, "The value of x is: %d\n", x)
	fmt.Fprintf(w, "The value of y is: %s\n", y)
	fmt.Fprintf(w, "The value of z is: %t\n", z)
}
