package tsvout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bebop/gas/aligner"
)

func TestWriteUnmappedAndMappedRows(t *testing.T) {
	a, err := aligner.NewAligner([]string{"AAAAAAAA"}, []string{"M"}, 6, false, aligner.MatchAny)
	require.NoError(t, err)

	batch := a.AlignQueries([]string{"AAAAAAAA", "GGGGGGGG"}, true)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, batch))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "GGGGGGGG\t.\t.\t.\t.", lines[1])
	assert.Equal(t, "AAAAAAAA\tfalse\t0\t1\tAAAAAAAA\t8M\t8", lines[2])
}

func TestWriteTiedScoresProduceMultipleTuples(t *testing.T) {
	a, err := aligner.NewAligner([]string{"AAAAAAAA", "AAAAAAAA"}, nil, 8, false, aligner.MatchAny)
	require.NoError(t, err)

	batch := a.AlignQueries([]string{"AAAAAAAA"}, true)
	require.Len(t, batch.Mapped, 1)
	require.Len(t, batch.Mapped[0], 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, batch))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	cols := strings.Split(lines[1], "\t")
	// original_seq + 2 tied tuples of 6 columns each.
	assert.Len(t, cols, 1+2*6)
}
