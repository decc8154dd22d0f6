package aligner

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bebop/gas/alphabet"
	"github.com/bebop/gas/transform"
)

// AlignmentBatch is the outcome of aligning a set of queries against a set
// of targets: every input query ends up in exactly one of Mapped or
// Unmapped.
type AlignmentBatch struct {
	Unmapped []string
	Mapped   [][]Backtrack

	TotalReads int
}

func newAlignmentBatch(unmapped []string, mapped [][]Backtrack) AlignmentBatch {
	return AlignmentBatch{
		Unmapped:   unmapped,
		Mapped:     mapped,
		TotalReads: len(unmapped) + len(mapped),
	}
}

// MappedFraction returns the proportion of input queries that produced at
// least one accepted alignment.
func (ab AlignmentBatch) MappedFraction() float64 {
	if ab.TotalReads == 0 {
		return 0
	}
	return float64(len(ab.Mapped)) / float64(ab.TotalReads)
}

// UnmappedFraction returns the proportion of input queries that produced no
// accepted alignment.
func (ab AlignmentBatch) UnmappedFraction() float64 {
	if ab.TotalReads == 0 {
		return 0
	}
	return float64(len(ab.Unmapped)) / float64(ab.TotalReads)
}

// candidate is one (target, query orientation) pair awaiting scoring.
type candidate struct {
	targetID int
	target   string
	query    string
	reversed bool
}

// admitsByKmer reports whether query could possibly reach scoreMin against
// the target indexed by counter: if scoreMin itself is shorter than the
// seed, a run of identity shorter than the seed could still clear it, so
// the prefilter stands down rather than risk a false rejection.
func admitsByKmer(counter *alphabet.KmerCounter, query string, scoreMin int) bool {
	if counter == nil || scoreMin < kmerFilterSeed || len(query) < kmerFilterSeed {
		return true
	}
	for i := 0; i+kmerFilterSeed <= len(query); i++ {
		if count, err := alphabet.LookupCount(counter, query[i:i+kmerFilterSeed]); err == nil && count > 0 {
			return true
		}
	}
	return false
}

// alignOneQuery tries every target in every requested orientation for a
// single query, discards anything that cannot clear the score floor or the
// rule-derived penalty ceiling, backtracks and classifies what remains, and
// returns the surviving Backtracks (nil when the query is unmapped).
func alignOneQuery(targets []string, rules []string, scoreMin int, revComp bool, matchType int, penalties penaltyRange, keepMatrix bool, kmerIndex []*alphabet.KmerCounter, query string) []Backtrack {
	candidates := buildCandidates(targets, query, revComp)

	var survivors []Backtrack
	for _, c := range candidates {
		if !admitsByKmer(kmerIndex[c.targetID], c.query, scoreMin) {
			continue
		}
		sm, ok := newScoreMatrix(c.targetID, c.target, c.query, query, c.reversed, scoreMin, penalties.exactOnly, true)
		if !ok {
			continue
		}
		if sm.Score < scoreMin {
			continue
		}
		if !penalties.exactOnly && sm.Score < len(c.query)-penalties.max {
			continue
		}

		bt := newBacktrack(sm, matchType)
		if !keepMatrix {
			bt.SM.Matrix = nil
		}
		if !bt.PassMode {
			continue
		}
		if !passesRules(rules, bt.Events.D, bt.Events.I, bt.Events.M) {
			continue
		}
		survivors = append(survivors, bt)
	}
	return survivors
}

// mapQueries is the batch driver described in the package doc. Queries are
// independent, so it fans them out across an errgroup.Group bounded by
// GOMAXPROCS (per §5: "MAY parallelise across queries"), then reassembles
// results by original input index rather than completion order before
// splitting them into mapped/unmapped — this keeps per-query grouping and
// the first-max-cell determinism of each individual matrix untouched, while
// still honoring the contract that ordering across the whole batch need
// not match input order. It is the Go counterpart of pygas's
// matrix.map_queries.
func mapQueries(targets []string, rules []string, scoreMin int, revComp bool, matchType int, queries []string, keepMatrix bool, kmerIndex []*alphabet.KmerCounter) AlignmentBatch {
	penalties := compileRules(rules)

	results := make([][]Backtrack, len(queries))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, query := range queries {
		idx, query := idx, query
		g.Go(func() error {
			results[idx] = alignOneQuery(targets, rules, scoreMin, revComp, matchType, penalties, keepMatrix, kmerIndex, query)
			return nil
		})
	}
	_ = g.Wait() // alignOneQuery never returns an error

	var unmapped []string
	var mapped [][]Backtrack
	for idx, survivors := range results {
		if len(survivors) > 0 {
			mapped = append(mapped, survivors)
		} else {
			unmapped = append(unmapped, queries[idx])
		}
	}

	return newAlignmentBatch(unmapped, mapped)
}

func buildCandidates(targets []string, query string, revComp bool) []candidate {
	variants := []struct {
		seq      string
		reversed bool
	}{{seq: query, reversed: false}}
	if revComp {
		variants = append(variants, struct {
			seq      string
			reversed bool
		}{seq: transform.ReverseComplement(query), reversed: true})
	}

	candidates := make([]candidate, 0, len(targets)*len(variants))
	for ti, target := range targets {
		for _, v := range variants {
			candidates = append(candidates, candidate{
				targetID: ti,
				target:   target,
				query:    v.seq,
				reversed: v.reversed,
			})
		}
	}
	return candidates
}
