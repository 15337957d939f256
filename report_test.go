package benchplot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdownReport(t *testing.T) {
	table := BenchTable{
		{Size: 8, SeqTime: 1.0, ParTime: 0.5, Speedup: 2.0},
		{Size: 16, SeqTime: 4.0, ParTime: 1.0, Speedup: 4.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdownReport(&buf, table))

	out := buf.String()
	assert.Contains(t, out, "Matrix Multiplication Benchmark")
	assert.Contains(t, out, "1.00000")
	assert.Contains(t, out, "0.50000")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "Best speedup: 4.00x at n=16.")
}

func TestWriteMarkdownReportEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdownReport(&buf, nil))
	assert.NotContains(t, buf.String(), "Best speedup")
}
