package fasta_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bebop/gas/bio/fasta"
)

// This example shows how to open a fasta file of target/guide sequences so
// they can be fed into an Aligner alongside plain line-per-sequence input.
func Example_basic() {
	records, _ := fasta.Read("data/targets.fasta")
	fmt.Println(records[1].Sequence)
	// Output: GAGCATTCGGATTTCCCGA
}

// ExampleRead shows basic usage for Read.
func ExampleRead() {
	records, _ := fasta.Read("data/targets.fasta")
	fmt.Println(records[0].Identifier)
	// Output: guide_1 chr1 CRISPR guide
}

// ExampleParse shows basic usage for Parse.
func ExampleParse() {
	file, _ := os.Open("data/targets.fasta")
	defer file.Close()
	records, _ := fasta.Parse(file)

	fmt.Println(records[0].Identifier)
	// Output: guide_1 chr1 CRISPR guide
}

// ExampleRecord_WriteTo shows basic usage of the record writer.
func ExampleRecord_WriteTo() {
	records, _ := fasta.Read("data/targets.fasta")
	var buffer bytes.Buffer
	for _, record := range records {
		_, _ = record.WriteTo(&buffer)
	}
	firstLine := string(bytes.Split(buffer.Bytes(), []byte("\n"))[0])

	fmt.Println(firstLine)
	// Output: >guide_1 chr1 CRISPR guide
}
