package benchplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCSVFile(t *testing.T) {
	p := writeTempCSV(t, "size,seq_time,par_time,speedup\n8,1.00000,0.50000,2.00\n16,4.00000,1.00000,4.00\n")

	table, err := LoadCSVFile(p)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, BenchRow{Size: 8, SeqTime: 1.0, ParTime: 0.5, Speedup: 2.0}, table[0])
	assert.Equal(t, BenchRow{Size: 16, SeqTime: 4.0, ParTime: 1.0, Speedup: 4.0}, table[1])
}

func TestLoadCSVFileSingleRow(t *testing.T) {
	p := writeTempCSV(t, "size,seq_time,par_time,speedup\n200,0.12345,0.06789,1.82\n")

	table, err := LoadCSVFile(p)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, 200, table[0].Size)
}

func TestLoadCSVFileColumnOrder(t *testing.T) {
	// Columns shuffled plus one extra; the loader resolves them by name.
	p := writeTempCSV(t, "speedup,host,par_time,seq_time,size\n2.00,m1,0.50000,1.00000,8\n")

	table, err := LoadCSVFile(p)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, BenchRow{Size: 8, SeqTime: 1.0, ParTime: 0.5, Speedup: 2.0}, table[0])
}

func TestLoadCSVFileMissingFile(t *testing.T) {
	_, err := LoadCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadCSVFileMissingColumn(t *testing.T) {
	p := writeTempCSV(t, "size,seq_time,par_time\n8,1.00000,0.50000\n")

	_, err := LoadCSVFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speedup")
}

func TestLoadCSVFileBadNumber(t *testing.T) {
	p := writeTempCSV(t, "size,seq_time,par_time,speedup\neight,1.00000,0.50000,2.00\n")

	_, err := LoadCSVFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteCSVFileRoundTrip(t *testing.T) {
	table := BenchTable{
		{Size: 8, SeqTime: 1.0, ParTime: 0.5, Speedup: 2.0},
		{Size: 16, SeqTime: 4.0, ParTime: 1.0, Speedup: 4.0},
	}
	p := filepath.Join(t.TempDir(), "results.csv")

	require.NoError(t, WriteCSVFile(p, table))
	got, err := LoadCSVFile(p)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "result")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call on an existing directory is a no-op.
	require.NoError(t, EnsureDir(dir))
}

func TestBest(t *testing.T) {
	_, ok := BenchTable(nil).Best()
	assert.False(t, ok)

	table := BenchTable{
		{Size: 8, Speedup: 2.0},
		{Size: 32, Speedup: 5.5},
		{Size: 16, Speedup: 4.0},
	}
	best, ok := table.Best()
	require.True(t, ok)
	assert.Equal(t, 32, best.Size)
}
