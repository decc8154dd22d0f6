package align_test

import (
	"testing"

	"github.com/bebop/gas/align"
)

func TestNeedlemanWunsch(t *testing.T) {
	a := "GATTACA"
	b := "GCATGCU"
	scoring := align.NewScoring()

	score, alignA, alignB := align.NeedlemanWunsch(a, b, scoring)
	if score != 0 {
		t.Errorf("score: %d, A: %s, B: %s", score, alignA, alignB)
	}

	c := "GATTACA"
	d := "GATTACA"

	score, alignC, alignD := align.NeedlemanWunsch(c, d, scoring)
	if score != 7 {
		t.Errorf("score: %d, A: %s, B: %s", score, alignC, alignD)
	}
}

func TestSmithWaterman(t *testing.T) {
	scoring := align.NewScoring()

	score, alignA, alignB := align.SmithWaterman("GATTACA", "GCATGCU", scoring)
	if score != 2 {
		t.Errorf("score: %d, A: %s, B: %s", score, alignA, alignB)
	}
}
