package basics

import (
	"fmt"
	"io"
)

// Book is a value type with read-only methods.
type Book struct {
	Pages  uint32
	Rating uint8
}

// NewBook returns a Book by value.
func NewBook(pages uint32, rating uint8) Book {
	return Book{Pages: pages, Rating: rating}
}

// DisplayPageCount prints the page count.
func (b *Book) DisplayPageCount(w io.Writer) {
	fmt.Fprintf(w, "Book has %d pages\n", b.Pages)
}

// DisplayRating prints the rating out of 5.
func (b *Book) DisplayRating(w io.Writer) {
	fmt.Fprintf(w, "Book has a rating of %d/5\n", b.Rating)
}
