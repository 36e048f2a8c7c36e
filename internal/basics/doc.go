// Package basics holds the teaching programs. Each program writes its output
// to the given writer and shares no state with any other program.
package basics
