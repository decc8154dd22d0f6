/*
Package transform provides functions for transforming sequences.

Complement takes the complement of a sequence.
(returns a sequence string where each nucleotide has been swapped with its complement A<->T, C<->G)

Reverse takes the reverse of a sequence.
(literally just reverses a string. Exists in stdlib but hey why not have it here too?)

ReverseComplement takes the reverse complement of a sequence.
(Reverses the sequence string and returns the complement of the reversed sequence.)
*/
package transform

import "strings"

// complementBaseRuneMap provides a 1:1 mapping between IUPAC bases
// (upper and lower case) and their complements. The teacher's copy kept
// two versions of this table, one keyed by rune literal and one by
// character literal, of which only the rune-literal one was ever read;
// this is the single merged table.
var complementBaseRuneMap = map[rune]rune{
	'A': 'T',
	'B': 'V',
	'C': 'G',
	'D': 'H',
	'G': 'C',
	'H': 'D',
	'K': 'M',
	'M': 'K',
	'N': 'N',
	'R': 'Y',
	'S': 'S',
	'T': 'A',
	'U': 'A',
	'V': 'B',
	'W': 'W',
	'Y': 'R',
	'a': 't',
	'b': 'v',
	'c': 'g',
	'd': 'h',
	'g': 'c',
	'h': 'd',
	'k': 'm',
	'm': 'k',
	'n': 'n',
	'r': 'y',
	's': 's',
	't': 'a',
	'u': 'a',
	'v': 'b',
	'w': 'w',
	'y': 'r',
}

// ReverseComplement takes the reverse complement of a sequence.
func ReverseComplement(sequence string) string {
	complementString := strings.Map(ComplementBase, sequence)
	length := len(complementString)
	newString := make([]rune, length)
	for _, base := range complementString {
		length--
		newString[length] = base
	}
	return string(newString)
}

// Complement takes the complement of a sequence.
func Complement(sequence string) string {
	complementString := strings.Map(ComplementBase, sequence)
	return complementString
}

// Reverse takes the reverse of a sequence.
func Reverse(sequence string) string {
	length := len(sequence)
	newString := make([]rune, length)
	for _, base := range sequence {
		length--
		newString[length] = base
	}
	return string(newString)
}

// ComplementBase accepts a base pair and returns its complement base pair
func ComplementBase(basePair rune) rune {
	return complementBaseRuneMap[basePair]
}
