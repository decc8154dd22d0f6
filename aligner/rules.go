package aligner

import "strings"

// penaltyRange holds the derived min/max penalty and exact-only flag for a
// rule list, as described in the package doc under "Rules".
type penaltyRange struct {
	min       int
	max       int
	exactOnly bool
}

// compileRules translates a caller's rule list into (minPenalty, maxPenalty,
// exactOnly). Each rule is any arrangement of I/D/M characters (case
// insensitive); unknown characters contribute nothing. An empty rule list
// means "exact only".
//
// A D or I costs 2 (one gap on each side of the alignment's scoring model),
// an M costs 1. maxPenalty is the matrix-exit threshold: the batch driver
// discards a scored pair whose score is below queryLength-maxPenalty.
func compileRules(rules []string) penaltyRange {
	if len(rules) == 0 {
		return penaltyRange{min: 0, max: 0, exactOnly: true}
	}

	maxPenalty := 0
	minPenalty := 1 << 30
	for _, rule := range rules {
		upper := strings.ToUpper(rule)
		d := strings.Count(upper, "D")
		i := strings.Count(upper, "I")
		m := strings.Count(upper, "M")
		penalty := (d * 2) + (i * 2) + m
		if penalty > maxPenalty {
			maxPenalty = penalty
		}
		if penalty < minPenalty {
			minPenalty = penalty
		}
	}
	return penaltyRange{min: minPenalty, max: maxPenalty, exactOnly: false}
}

// passesRules reports whether the observed D/I/M event counts are accepted
// by at least one rule in the list. An empty rule list requires a perfect,
// event-free alignment.
func passesRules(rules []string, d, i, m int) bool {
	if len(rules) == 0 {
		return d == 0 && i == 0 && m == 0
	}
	for _, rule := range rules {
		upper := strings.ToUpper(rule)
		if d <= strings.Count(upper, "D") && i <= strings.Count(upper, "I") && m <= strings.Count(upper, "M") {
			return true
		}
	}
	return false
}
