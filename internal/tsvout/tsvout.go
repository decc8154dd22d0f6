// Package tsvout renders an aligner.AlignmentBatch as the TSV report the
// gas CLI writes to its -o file: one row per input query, unmapped rows
// padded with dots and mapped rows carrying a 6-tuple per tied-for-best
// Backtrack in that query's group.
package tsvout

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bebop/gas/aligner"
)

const header = "#query\treversed\tt_id\tt_pos\tseq\tcigar\tmd\trepeat_2-7..."

// Write renders batch to w: the header line, one row per unmapped query,
// then one row per mapped query group.
func Write(w io.Writer, batch aligner.AlignmentBatch) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(buffered, header); err != nil {
		return err
	}
	for _, query := range batch.Unmapped {
		if _, err := fmt.Fprintf(buffered, "%s\t.\t.\t.\t.\n", query); err != nil {
			return err
		}
	}
	for _, group := range batch.Mapped {
		if _, err := fmt.Fprintln(buffered, mappedRow(group)); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// mappedRow builds one row for a query's surviving Backtracks: the
// original sequence, then every Backtrack tied for the group's maximum
// score, each contributing a reversed/target_id/t_pos/query_variant/
// cigar/md 6-tuple.
func mappedRow(group []aligner.Backtrack) string {
	best := group[0].SM.Score
	for _, bt := range group {
		if bt.SM.Score > best {
			best = bt.SM.Score
		}
	}

	var cols []string
	cols = append(cols, group[0].SM.OriginalSeq)
	for _, bt := range group {
		if bt.SM.Score != best {
			continue
		}
		cols = append(cols,
			strconv.FormatBool(bt.SM.Reversed),
			strconv.Itoa(bt.SM.TargetID),
			strconv.Itoa(bt.TPos),
			bt.SM.Query,
			bt.Cigar,
			bt.MD,
		)
	}
	return strings.Join(cols, "\t")
}
