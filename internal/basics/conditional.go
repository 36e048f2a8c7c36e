package basics

import (
	"fmt"
	"io"
)

// Compare prints whether x is greater than threshold.
func Compare(w io.Writer, x, threshold int) {
	if x > threshold {
		fmt.Fprintf(w, "x is greater than %d\n", threshold)
	} else {
		fmt.Fprintf(w, "x is not greater than %d\n", threshold)
	}
}

// CompareThreeWay distinguishes less, equal and greater.
func CompareThreeWay(w io.Writer, x, threshold int) {
	if x > threshold {
		fmt.Fprintf(w, "Number is greater than %d\n", threshold)
	} else if x < threshold {
		fmt.Fprintf(w, "Number is less than %d\n", threshold)
	} else {
		fmt.Fprintf(w, "Number is equal to %d\n", threshold)
	}
}
