// Package aligner implements a simplified Needleman-Wunsch aligner tuned
// for short DNA sequences: given a fixed list of target strings, it scores
// each query against every target (and optionally its reverse complement),
// reduces the winning alignment to a CIGAR string, an MD tag, and D/I/M
// event counts, then accepts or rejects it against a caller-supplied set of
// fuzzy-match rules and a geometric match type.
//
// # Rules
//
// A rule is any arrangement of the letters I, D, and M (case-insensitive);
// its letter counts bound how many insertions, deletions, and mismatches an
// accepted alignment may carry. An empty rule list means only a perfect,
// event-free alignment is accepted. compileRules derives, from the full
// rule list, the minimum and maximum penalty across all rules (a D or I
// costs 2, an M costs 1) and whether the list demands an exact match;
// passesRules reports whether one particular set of observed D/I/M counts
// is accepted by at least one rule.
package aligner

import (
	"fmt"

	"github.com/bebop/gas/alphabet"
)

// MatchType enumerates the accepted alignment shapes (§4.5 of the package's
// governing contract).
type MatchType int

const (
	// MatchTrueExact requires the alignment to start at target position 1
	// with no soft clipping and a query row as long as the target row
	// without its trailing padding. Mismatches and gaps are not checked by
	// the shape; only the rules bound them.
	MatchTrueExact MatchType = 0
	// MatchQueryInTarget requires the query to sit entirely within the
	// target span, with no leading overhang.
	MatchQueryInTarget MatchType = 1
	// MatchTargetInQuery requires the target to sit entirely within the
	// query span, with no leading or trailing overhang on the query.
	MatchTargetInQuery MatchType = 2
	// MatchAny accepts any alignment shape.
	MatchAny MatchType = 3
)

// kmerFilterSeed is the k-mer length used to seed the candidate prefilter:
// a candidate whose query shares no kmerFilterSeed-mer with its target
// cannot contain a run of identity that long, so it is dropped before the
// O(nm) DP pass builds a matrix for it at all.
const kmerFilterSeed = 4

// Aligner holds an immutable configuration: the target list, acceptance
// rules, score floor, reverse-complement policy, and match shape. It has no
// mutable state beyond construction and is safe for concurrent use.
type Aligner struct {
	targets   []string
	rules     []string
	scoreMin  int
	revComp   bool
	matchType MatchType

	penalties penaltyRange
	kmerIndex []*alphabet.KmerCounter
}

// NewAligner constructs an Aligner, validating the configuration eagerly:
// an empty target list, a negative score_min, or a match type outside
// {0,1,2,3} are all configuration errors rejected at construction time
// rather than discovered mid-batch.
func NewAligner(targets []string, rules []string, scoreMin int, revComp bool, matchType MatchType) (*Aligner, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("aligner: targets must not be empty")
	}
	if scoreMin < 0 {
		return nil, fmt.Errorf("aligner: score_min must not be negative, got %d", scoreMin)
	}
	if matchType < MatchTrueExact || matchType > MatchAny {
		return nil, fmt.Errorf("aligner: match_type must be one of 0,1,2,3, got %d", matchType)
	}

	return &Aligner{
		targets:   append([]string(nil), targets...),
		rules:     append([]string(nil), rules...),
		scoreMin:  scoreMin,
		revComp:   revComp,
		matchType: matchType,
		penalties: compileRules(rules),
		kmerIndex: buildKmerIndex(targets),
	}, nil
}

// buildKmerIndex observes every target's overlapping kmerFilterSeed-mers
// once at construction, so alignOneQuery can reject a hopeless candidate in
// O(len(query)) instead of paying for a full DP matrix. A target shorter
// than the seed length, or one that fails to encode (non-DNA symbols),
// gets a nil entry: the prefilter then always admits it and leaves the
// rejection to newScoreMatrix/the rule checks, same as before this existed.
func buildKmerIndex(targets []string) []*alphabet.KmerCounter {
	index := make([]*alphabet.KmerCounter, len(targets))
	for i, target := range targets {
		if len(target) < kmerFilterSeed {
			continue
		}
		counter := alphabet.NewKmerCounter(alphabet.DNA, kmerFilterSeed)
		if err := alphabet.Observe(counter, target); err == nil {
			index[i] = counter
		}
	}
	return index
}

// ExactOnly reports whether this aligner's rule list demands a perfect,
// event-free alignment.
func (a *Aligner) ExactOnly() bool { return a.penalties.exactOnly }

// MinPenalty returns the minimum penalty across the configured rules.
// It is informational only and does not gate any decision.
func (a *Aligner) MinPenalty() int { return a.penalties.min }

// MaxPenalty returns the maximum penalty across the configured rules; it is
// the matrix-exit threshold used to reject candidates early.
func (a *Aligner) MaxPenalty() int { return a.penalties.max }

// AlignQueries aligns every query against every configured target (and,
// when rev_comp is set, its reverse complement), returning the resulting
// AlignmentBatch. keepMatrix controls whether each surviving ScoreMatrix
// retains its DP grid after backtracking; set it to false to bound memory
// when the grids themselves are not needed afterward.
func (a *Aligner) AlignQueries(queries []string, keepMatrix bool) AlignmentBatch {
	return mapQueries(a.targets, a.rules, a.scoreMin, a.revComp, int(a.matchType), queries, keepMatrix, a.kmerIndex)
}
