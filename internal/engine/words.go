package engine

import "unicode/utf8"

// isWordChar reports whether c belongs to the \w class: ASCII letters, digits
// and underscore. Every other rune, accented letters included, is a non-word
// character.
func isWordChar(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// wordSpan returns the length in runes of the longest prefix of s matching
// \W*\w+\W*, or 0 when s contains no word character.
func wordSpan(s []rune) int {
	i := 0
	for i < len(s) && !isWordChar(s[i]) {
		i++
	}
	start := i
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	for i < len(s) && !isWordChar(s[i]) {
		i++
	}
	return i
}

// runeLen is the number of columns in line.
func runeLen(line string) int {
	return utf8.RuneCountInString(line)
}
