// Package comments has documented typos.
package comments

// Recieve the messages. // want `possible typo "recieve" in comment`
func Recieve() {}

//go:generate echo mispeled

/* Spelled right. */
