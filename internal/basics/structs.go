package basics

import (
	"fmt"
	"io"
)

// Person is a plain struct with a name and an age.
type Person struct {
	Name string
	Age  int
}

// PrintPerson prints p's name and age on one line.
func PrintPerson(w io.Writer, p Person) {
	fmt.Fprintf(w, "Name: %s, Age: %d\n", p.Name, p.Age)
}
