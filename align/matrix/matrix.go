/*
Package matrix provides a struct for substitution matrices.
*/

package matrix

import (
	"fmt"

	"github.com/bebop/gas/alphabet"
)

// SubstitutionMatrix is a struct that holds a substitution matrix and the two alphabets that the matrix is defined over.
type SubstitutionMatrix struct {
	FirstAlphabet  *alphabet.Alphabet
	SecondAlphabet *alphabet.Alphabet
	scores         [][]int
}

// NewSubstitutionMatrix creates a new substitution matrix from two alphabets and a 2D array of scores.
func NewSubstitutionMatrix(firstAlphabet, secondAlphabet *alphabet.Alphabet, scores [][]int) (*SubstitutionMatrix, error) {
	if len(firstAlphabet.Symbols()) != len(scores) || len(secondAlphabet.Symbols()) != len(scores[0]) {
		return nil, fmt.Errorf("invalid dimensions of substitution matrix")
	}
	return &SubstitutionMatrix{firstAlphabet, secondAlphabet, scores}, nil
}

// Score returns the score of two symbols in the substitution matrix.
func (matrix *SubstitutionMatrix) Score(a, b string) (int, error) {
	firstSymbolIndex, err := matrix.FirstAlphabet.Encode(a)
	if err != nil {
		return 0, err
	}
	secondSymbolIndex, err := matrix.SecondAlphabet.Encode(b)
	if err != nil {
		return 0, err
	}
	return matrix.scores[firstSymbolIndex][secondSymbolIndex], nil
}

// dnaAlphabet is the symbol ordering NUC_4 is defined over: gap, then the
// four DNA bases.
var dnaAlphabet = alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})

// NUC_4 is a simple DNA substitution matrix: a match scores 5, any
// mismatch scores -4, and a gap against anything scores 0 (the caller
// supplies the actual gap penalty separately). It is defined over
// dnaAlphabet and usable directly with NewSubstitutionMatrix(dnaAlphabet,
// dnaAlphabet, NUC_4).
var NUC_4 = [][]int{ //nolint:stylecheck
	/*       - A  C  G  T */
	/* - */ {0, 0, 0, 0, 0},
	/* A */ {0, 5, -4, -4, -4},
	/* C */ {0, -4, 5, -4, -4},
	/* G */ {0, -4, -4, 5, -4},
	/* T */ {0, -4, -4, -4, 5},
}

// DefaultAlphabet returns the gap-prefixed DNA alphabet NUC_4 is defined over.
func DefaultAlphabet() *alphabet.Alphabet {
	return dnaAlphabet
}
