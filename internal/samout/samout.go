// Package samout renders an aligner.AlignmentBatch as SAM, for callers who
// want their mapped reads in a format downstream tools already understand
// instead of the native TSV report.
package samout

import (
	"io"
	"strconv"

	"github.com/bebop/gas/aligner"
	samfmt "github.com/bebop/gas/io/sam"
)

// Write emits a minimal single-segment SAM stream for batch: one @HD line,
// one @SQ line per target, and one alignment record per surviving
// Backtrack. Unmapped queries have no SAM representation and are skipped,
// matching samtools convention for a mapped-only stream.
func Write(w io.Writer, targets []string, batch aligner.AlignmentBatch) error {
	header := samfmt.Header{HD: map[string]string{"VN": "1.6", "SO": "unsorted"}}
	for i, target := range targets {
		header.SQ = append(header.SQ, map[string]string{
			"SN": targetName(i),
			"LN": strconv.Itoa(len(target)),
		})
	}
	if _, err := header.WriteTo(w); err != nil {
		return err
	}

	for _, group := range batch.Mapped {
		for _, bt := range group {
			alignment := samfmt.Alignment{
				QNAME: bt.SM.OriginalSeq,
				FLAG:  flagFor(bt.SM.Reversed),
				RNAME: targetName(bt.SM.TargetID),
				POS:   int32(bt.TPos),
				MAPQ:  255,
				CIGAR: bt.Cigar,
				RNEXT: "*",
				PNEXT: 0,
				TLEN:  0,
				SEQ:   bt.SM.Query,
				QUAL:  "*",
				Optionals: map[string]samfmt.Optional{
					"NM": {Type: 'i', Data: strconv.Itoa(bt.NM)},
					"MD": {Type: 'Z', Data: bt.MD},
				},
			}
			if _, err := alignment.WriteTo(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// flagFor reports the SAM FLAG for a query's orientation: bit 0x10 marks a
// segment aligned to the reverse strand.
func flagFor(reversed bool) uint16 {
	if reversed {
		return 0x10
	}
	return 0
}

func targetName(id int) string {
	return "target_" + strconv.Itoa(id)
}
