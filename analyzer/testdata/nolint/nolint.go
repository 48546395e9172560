//nolint:typoguard
package nolint

var recieve = "teh"
