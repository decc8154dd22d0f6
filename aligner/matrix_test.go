package aligner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bebop/gas/align"
	"github.com/bebop/gas/random"
)

// buildScoreMatrix's match=1/gap=-2 recurrence is a special case of the
// general-purpose local aligner in package align: configuring
// align.SmithWaterman with the same match/gap values and Mismatch=0 makes
// the two implementations compute the same objective function over the
// same padded-zero-border grid, so their max scores must agree on any
// input. This cross-checks the package's purpose-built matrix builder
// against that independent implementation instead of only against the
// §8-style hand-worked fixture in TestMatrixBacktrackFixture.
func TestBuildScoreMatrixAgainstGeneralPurposeSmithWaterman(t *testing.T) {
	scoring := align.Scoring{Match: 1, Mismatch: 0, GapPenalty: -2}

	for i := 0; i < 20; i++ {
		target, err := random.DNASequence(12+i, int64(i))
		require.NoError(t, err)
		query, err := random.DNASequence(12+i, int64(i+1000))
		require.NoError(t, err)

		_, gotScore := buildScoreMatrix(target, query)
		wantScore, _, _ := align.SmithWaterman(target, query, scoring)
		assert.Equalf(t, wantScore, gotScore, "target=%s query=%s", target, query)
	}
}
