package tag_seq

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "seq_tagger_go/utils"
)

func TestFormatRecordWrapsAtLineWidth(t *testing.T) {
	seq := GenerateDNA(NewRand(5), 150)
	var buf bytes.Buffer
	require.NoError(t, FormatRecord(&buf, RecordHeader("seq1", "demo run"), seq))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">seq1 demo run", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[2], 60)
	assert.Len(t, lines[3], 30)
	assert.Equal(t, seq, strings.Join(lines[1:], ""))
}

func TestFormatRecordExactMultiple(t *testing.T) {
	seq := strings.Repeat("ACGT", 30)
	var buf bytes.Buffer
	require.NoError(t, FormatRecord(&buf, "x ", seq))
	assert.Equal(t, ">x \n"+seq[:60]+"\n"+seq[60:]+"\n", buf.String())
}

func TestRecordNaming(t *testing.T) {
	assert.Equal(t, "seq1.fasta", RecordFileName("seq1"))
	assert.Equal(t, "seq1 some text", RecordHeader("seq1", "some text"))
	assert.Equal(t, "seq1 ", RecordHeader("seq1", ""))
}

func TestWriteRecordOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq1.fasta")

	_, err := WriteRecord(path, "seq1 first", strings.Repeat("A", 200), false)
	require.NoError(t, err)
	written, err := WriteRecord(path, "seq1 second", "ACGT", false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ">seq1 second\nACGT\n", string(data))
}

func TestWriteRecordGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq1.fasta")
	seq := GenerateDNA(NewRand(8), 130)

	written, err := WriteRecord(path, "seq1 zipped", seq, true)
	require.NoError(t, err)
	assert.Equal(t, path+".gz", written)

	records, err := common.ReadFastaFile(written)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "seq1 zipped", records[0].Header)
	assert.Equal(t, seq, records[0].Sequence)
	assert.Equal(t, []int{60, 60, 10}, records[0].LineLengths)
}

func TestWriteRecordMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "seq1.fasta")
	_, err := WriteRecord(path, "seq1 ", "ACGT", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
