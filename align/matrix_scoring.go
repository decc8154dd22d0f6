package align

import (
	"github.com/bebop/gas/align/matrix"
)

// NeedlemanWunschMatrix performs global alignment using an arbitrary
// substitution matrix instead of a single match/mismatch pair, for callers
// that need position-independent but symbol-pair-dependent scoring (e.g.
// transition/transversion-weighted DNA scoring, or protein substitution
// matrices). It otherwise follows the same fill and traceback as
// NeedlemanWunsch.
func NeedlemanWunschMatrix(stringA string, stringB string, subMatrix *matrix.SubstitutionMatrix, gapPenalty int) (int, string, string, error) {
	columnLengthM, rowLengthN := len(stringA), len(stringB)

	scores := make([][]int, columnLengthM+1)
	for columnM := range scores {
		scores[columnM] = make([]int, rowLengthN+1)
	}

	for columnM := 1; columnM <= columnLengthM; columnM++ {
		scores[columnM][0] = scores[columnM-1][0] + gapPenalty
	}
	for rowN := 1; rowN <= rowLengthN; rowN++ {
		scores[0][rowN] = scores[0][rowN-1] + gapPenalty
	}

	for columnM := 1; columnM <= columnLengthM; columnM++ {
		for rowN := 1; rowN <= rowLengthN; rowN++ {
			matchScore, err := subMatrix.Score(string(stringA[columnM-1]), string(stringB[rowN-1]))
			if err != nil {
				return 0, "", "", err
			}
			scores[columnM][rowN] = max(
				scores[columnM-1][rowN-1]+matchScore,
				max(scores[columnM-1][rowN]+gapPenalty, scores[columnM][rowN-1]+gapPenalty),
			)
		}
	}

	var alignA, alignB []rune
	columnM, rowN := columnLengthM, rowLengthN
	for columnM > 0 && rowN > 0 {
		matchScore, err := subMatrix.Score(string(stringA[columnM-1]), string(stringB[rowN-1]))
		if err != nil {
			return 0, "", "", err
		}
		switch {
		case scores[columnM][rowN] == scores[columnM-1][rowN-1]+matchScore:
			alignA = append(alignA, rune(stringA[columnM-1]))
			alignB = append(alignB, rune(stringB[rowN-1]))
			columnM--
			rowN--
		case scores[columnM][rowN] == scores[columnM-1][rowN]+gapPenalty:
			alignA = append(alignA, rune(stringA[columnM-1]))
			alignB = append(alignB, '-')
			columnM--
		default:
			alignA = append(alignA, '-')
			alignB = append(alignB, rune(stringB[rowN-1]))
			rowN--
		}
	}

	alignA = reverseRuneArray(alignA)
	alignB = reverseRuneArray(alignB)
	return scores[columnLengthM][rowLengthN], string(alignA), string(alignB), nil
}

// SmithWatermanMatrix is the local-alignment counterpart to
// NeedlemanWunschMatrix: scores are floored at zero and the traceback starts
// from the highest-scoring cell rather than the bottom-right corner.
func SmithWatermanMatrix(stringA string, stringB string, subMatrix *matrix.SubstitutionMatrix, gapPenalty int) (int, string, string, error) {
	columnLengthM, rowLengthN := len(stringA), len(stringB)

	scores := make([][]int, columnLengthM+1)
	for i := range scores {
		scores[i] = make([]int, rowLengthN+1)
	}

	maxScore, maxRow, maxCol := 0, 0, 0
	for i := 1; i <= columnLengthM; i++ {
		for j := 1; j <= rowLengthN; j++ {
			matchScore, err := subMatrix.Score(string(stringA[i-1]), string(stringB[j-1]))
			if err != nil {
				return 0, "", "", err
			}
			diagScore := scores[i-1][j-1] + matchScore
			upScore := scores[i-1][j] + gapPenalty
			leftScore := scores[i][j-1] + gapPenalty
			scores[i][j] = max(0, max(diagScore, max(upScore, leftScore)))

			if scores[i][j] > maxScore {
				maxScore = scores[i][j]
				maxRow = i
				maxCol = j
			}
		}
	}

	alignA, alignB := "", ""
	i, j := maxRow, maxCol
	for scores[i][j] > 0 {
		matchScore, err := subMatrix.Score(string(stringA[i-1]), string(stringB[j-1]))
		if err != nil {
			return 0, "", "", err
		}
		switch {
		case scores[i][j] == scores[i-1][j-1]+matchScore:
			alignA = string(stringA[i-1]) + alignA
			alignB = string(stringB[j-1]) + alignB
			i--
			j--
		case scores[i][j] == scores[i-1][j]+gapPenalty:
			alignA = string(stringA[i-1]) + alignA
			alignB = "-" + alignB
			i--
		case scores[i][j] == scores[i][j-1]+gapPenalty:
			alignA = "-" + alignA
			alignB = string(stringB[j-1]) + alignB
			j--
		default:
			panic("unexpected case in SmithWatermanMatrix traceback")
		}
	}

	return maxScore, alignA, alignB, nil
}
