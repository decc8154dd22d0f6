package aligner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrixBacktrackFixture reproduces the literal matrix and Backtrack
// string given for target="AAAA", query="AATA", rules=["M"], score_min=3.
func TestMatrixBacktrackFixture(t *testing.T) {
	penalties := compileRules([]string{"M"})
	sm, ok := newScoreMatrix(0, "AAAA", "AATA", "AATA", false, 3, penalties.exactOnly, true)
	require.True(t, ok)
	require.Equal(t, 3, sm.Score)

	// Row 0, col 3 is 01, not the 00 a hand-drawn fixture might suggest: with
	// target="AAAA" query="AATA" the diagonal into that cell comes from the
	// zero border plus a match('A'=='A'), so max(0, 0+1, -2, -2) = 1. The
	// traceback never visits this cell (it isn't the first max and isn't on
	// any optimal path back from one), so it has no effect on Backtrack.
	const wantMatrix = "" +
		" 01  01  00  01 \n" +
		" 01  02  01  01 \n" +
		" 01  02  02  02 \n" +
		" 01  02  02  03 \n"
	assert.Equal(t, wantMatrix, sm.FormatMatrix())

	bt := newBacktrack(sm, int(MatchAny))
	const want = "Score: 3, Cigar: 4M, MD: 2A1, TargetId: 0, TargetPos: 1\n" +
		"Events (D/I/M): 0/0/1\nT: AAAA\nM: || |\nQ: AATA\n"
	assert.Equal(t, want, bt.String())
	assert.Equal(t, Events{D: 0, I: 0, M: 1}, bt.Events)
	assert.Equal(t, 1, bt.NM)
}

func TestBacktrackExactFastPath(t *testing.T) {
	sm, ok := newScoreMatrix(0, "AAAAAAAA", "AAAAAAAA", "AAAAAAAA", false, 8, true, true)
	require.True(t, ok)
	require.True(t, sm.Exact)

	bt := newBacktrack(sm, int(MatchAny))
	assert.Equal(t, "8M", bt.Cigar)
	assert.Equal(t, "8", bt.MD)
	assert.Equal(t, 1, bt.TPos)
	assert.Equal(t, 0, bt.NM)
	assert.True(t, bt.PassMode)
}

func TestBacktrackPanicsOnInvalidScoreMatrix(t *testing.T) {
	assert.Panics(t, func() {
		newBacktrack(ScoreMatrix{Query: "AAAA", Target: "AAAA"}, int(MatchAny))
	})
}

// Deletion requires the D rule (§8 scenario 3).
func TestBacktrackDeletionRescuedByRule(t *testing.T) {
	penalties := compileRules([]string{"MDDDDDI"})
	sm, ok := newScoreMatrix(0, "ACCATTACCATTACC", "ACCATTACCATACC", "ACCATTACCATACC", false, 1, penalties.exactOnly, true)
	require.True(t, ok)

	bt := newBacktrack(sm, int(MatchAny))
	assert.Contains(t, bt.MD, "^T")
	assert.Equal(t, 1, bt.Events.D)
}

// Trailing soft clip (§8 scenario 4).
func TestBacktrackTrailingSoftClip(t *testing.T) {
	penalties := compileRules([]string{"MDDDDDI"})
	sm, ok := newScoreMatrix(0, "GAGCATTCGGATTTCCCGA", "GAGCATTCGGATTTCCCGT", "GAGCATTCGGATTTCCCGT", false, 1, penalties.exactOnly, true)
	require.True(t, ok)

	bt := newBacktrack(sm, int(MatchAny))
	assert.Equal(t, 1, bt.TPos)
	assert.Equal(t, "18M1S", bt.Cigar)
	assert.Equal(t, "18", bt.MD)
}

// Leading soft clip with offset (§8 scenario 5).
func TestBacktrackLeadingSoftClip(t *testing.T) {
	penalties := compileRules([]string{"MDDDDDI"})
	sm, ok := newScoreMatrix(0, "GAGCATTCGGATTTCCCGA", "TAGCATTCGGATTTCCCGA", "TAGCATTCGGATTTCCCGA", false, 1, penalties.exactOnly, true)
	require.True(t, ok)

	bt := newBacktrack(sm, int(MatchAny))
	assert.Equal(t, 2, bt.TPos)
	assert.Equal(t, "1S18M", bt.Cigar)
	assert.Equal(t, "18", bt.MD)
}
