package normalize

var Answer = "Lines."

func Escaped() {}

var Valeu = 1 // want `possible typo "Valeu" in identifier`
