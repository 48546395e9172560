package a

import "fmt"

type record struct {
	Valeu int // want `possible typo "Valeu" in identifier`
}

func recieveValue(r record) int { // want `possible typo "recieve" in identifier`
	fmt.Println("teh answer") // want `possible typo "teh" in string`

	return r.Valeu // want `possible typo "Valeu" in property`
}

func ignored() string {
	return "mispeled" //nolint:typoguard
}

func escaped() string {
	return "tab\tseparated\nlines"
}
