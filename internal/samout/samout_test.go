package samout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bebop/gas/aligner"
)

func TestWriteEmitsHeaderAndMappedRecordsOnly(t *testing.T) {
	a, err := aligner.NewAligner([]string{"AAAAAAAA"}, []string{"M"}, 6, false, aligner.MatchAny)
	require.NoError(t, err)

	batch := a.AlignQueries([]string{"AAAAAAAA", "TTTTTTTT"}, true)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []string{"AAAAAAAA"}, batch))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "@HD"))
	assert.True(t, strings.HasPrefix(lines[1], "@SQ\tSN:target_0\tLN:8"))
	assert.Equal(t, 3, len(lines)) // header, SQ, one mapped record
	assert.Contains(t, lines[2], "AAAAAAAA")
	assert.Contains(t, lines[2], "8M")
}
