package aligner

// ScoreMatrix is the result of scoring one (target, query) pair in one
// orientation. Exactly one of Matrix or Exact holds: an exact match is
// synthesized without ever allocating the DP grid. The copy kept on a
// Backtrack may have neither when the grid was dropped after backtracking.
type ScoreMatrix struct {
	Query       string
	Target      string
	TargetID    int
	Score       int
	Reversed    bool
	OriginalSeq string
	Matrix      [][]int
	Exact       bool
}

// buildScoreMatrix fills the DP matrix for target and query and returns the
// max attainable score alongside it. The grid is padded with an implicit
// zero row and column (matrix[0][*] and matrix[*][0]), following the same
// layout align.SmithWaterman uses: matrix[i+1][j+1] holds the cell for
// target[i] vs query[j].
func buildScoreMatrix(target, query string) ([][]int, int) {
	tlen, qlen := len(target), len(query)
	matrix := make([][]int, tlen+1)
	for i := range matrix {
		matrix[i] = make([]int, qlen+1)
	}

	maxScore := 0
	for i := 1; i <= tlen; i++ {
		for j := 1; j <= qlen; j++ {
			match := 0
			if target[i-1] == query[j-1] {
				match = 1
			}
			diag := matrix[i-1][j-1] + match
			up := matrix[i-1][j] - 2
			left := matrix[i][j-1] - 2
			cell := max(0, max(diag, max(up, left)))
			matrix[i][j] = cell
			if cell > maxScore {
				maxScore = cell
			}
		}
	}
	return matrix, maxScore
}

// newScoreMatrix scores target against query and reports ok=false when the
// pair is rejected before ever filling a matrix: either an early-rejection
// on scoreMin, or because exactOnly demanded a perfect match and this pair
// isn't one.
func newScoreMatrix(targetID int, target, query, originalSeq string, reversed bool, scoreMin int, exactOnly, keepMatrix bool) (ScoreMatrix, bool) {
	if scoreMin > len(query) {
		return ScoreMatrix{}, false
	}

	if target == query {
		return ScoreMatrix{
			Query:       query,
			Target:      target,
			TargetID:    targetID,
			Score:       len(query),
			Reversed:    reversed,
			OriginalSeq: originalSeq,
			Exact:       true,
		}, true
	}

	if exactOnly {
		return ScoreMatrix{}, false
	}

	matrix, score := buildScoreMatrix(target, query)
	if !keepMatrix {
		matrix = nil
	}
	return ScoreMatrix{
		Query:       query,
		Target:      target,
		TargetID:    targetID,
		Score:       score,
		Reversed:    reversed,
		OriginalSeq: originalSeq,
		Matrix:      matrix,
	}, true
}

// firstMaxCell scans the unpadded target x query region in row-major order
// and returns the coordinates of the first cell equal to m.Score. Both
// indices are 0-based target/query positions, matching the backtracker's
// f[i][j] notation.
func (m *ScoreMatrix) firstMaxCell() (int, int) {
	tlen, qlen := len(m.Target), len(m.Query)
	for i := 0; i < tlen; i++ {
		for j := 0; j < qlen; j++ {
			if m.Matrix[i+1][j+1] == m.Score {
				return i, j
			}
		}
	}
	return tlen - 1, qlen - 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
