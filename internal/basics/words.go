package basics

import (
	"fmt"
	"io"
	"strings"
)

// CountWords returns the number of whitespace-separated words in *text.
// It reads through the pointer and never writes.
func CountWords(text *string) int {
	return len(strings.Fields(*text))
}

// Words counts the words of message through a pointer, then prints the
// message, which the caller still owns.
func Words(w io.Writer, message string) {
	count := CountWords(&message)
	fmt.Fprintf(w, "Words: %d\n", count)
	fmt.Fprintf(w, "Message: %s\n", message)
}
