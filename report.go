package benchplot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// WriteMarkdownReport writes the measurements as a Markdown summary: the
// full table plus the best observed speedup.
func WriteMarkdownReport(w io.Writer, table BenchTable) error {
	md := markdown.NewMarkdown(w)

	md.H1("Matrix Multiplication Benchmark")
	md.PlainText("")

	rows := make([][]string, len(table))
	for i, r := range table {
		rows[i] = []string{
			strconv.Itoa(r.Size),
			fmt.Sprintf("%.5f", r.SeqTime),
			fmt.Sprintf("%.5f", r.ParTime),
			fmt.Sprintf("%.2f", r.Speedup),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Size (n)", "Sequential (s)", "Parallel (s)", "Speedup"},
		Rows:   rows,
	})
	md.PlainText("")

	if best, ok := table.Best(); ok {
		md.PlainTextf("Best speedup: %.2fx at n=%d.", best.Speedup, best.Size)
	}
	return md.Build()
}
