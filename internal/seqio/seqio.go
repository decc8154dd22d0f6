// Package seqio loads query/target sequence lists for the gas CLI: one
// sequence per line, plain or gzip-compressed, or a fasta file, with the
// format auto-detected rather than picked by file extension.
package seqio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/bebop/gas/bio/fasta"
)

// gzipMagic is the two leading bytes of every gzip stream (RFC 1952 §2.3.1).
var gzipMagic = [2]byte{0x1f, 0x8b}

// ReadSequences loads the sequences at path, auto-detecting gzip compression
// by magic bytes and fasta formatting by the first non-blank line starting
// with '>'. For plain line-per-sequence input, blank lines are skipped.
func ReadSequences(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader, err := autoDecompress(file)
	if err != nil {
		return nil, err
	}

	buffered := bufio.NewReader(reader)
	isFasta, err := looksLikeFasta(buffered)
	if err != nil {
		return nil, err
	}
	if isFasta {
		records, err := fasta.Parse(buffered)
		if err != nil {
			return nil, err
		}
		sequences := make([]string, len(records))
		for i, record := range records {
			sequences[i] = record.Sequence
		}
		return sequences, nil
	}
	return readLines(buffered)
}

// autoDecompress peeks the first two bytes of r for the gzip magic number
// and wraps r in a gzip.Reader when present, otherwise returns r unchanged.
func autoDecompress(r io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(r)
	magic, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		return gzip.NewReader(buffered)
	}
	return buffered, nil
}

// looksLikeFasta peeks the buffered reader's first non-blank line without
// consuming it.
func looksLikeFasta(r *bufio.Reader) (bool, error) {
	for n := 1; ; n++ {
		peeked, err := r.Peek(n)
		if err != nil {
			if err == io.EOF {
				trimmed := strings.TrimLeft(string(peeked), "\r\n \t")
				return len(trimmed) > 0 && trimmed[0] == '>', nil
			}
			return false, err
		}
		line := string(peeked)
		if idx := strings.IndexByte(line, '\n'); idx >= 0 {
			trimmed := strings.TrimSpace(line[:idx])
			if trimmed == "" {
				continue
			}
			return trimmed[0] == '>', nil
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var sequences []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sequences = append(sequences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sequences, nil
}
