package benchplot

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the column set the benchmark runner writes.
var csvHeader = []string{"size", "seq_time", "par_time", "speedup"}

// LoadCSVFile reads a benchmark CSV into a table. The header row is
// required; the four columns may appear in any order and extra columns
// are ignored.
func LoadCSVFile(file string) (BenchTable, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", file)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", file, name)
		}
	}

	res := make(BenchTable, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", file, i+2, err)
		}
		res = append(res, row)
	}
	return res, nil
}

func parseRow(rec []string, col map[string]int) (BenchRow, error) {
	var row BenchRow
	var err error
	row.Size, err = strconv.Atoi(rec[col["size"]])
	if err != nil {
		return row, err
	}
	row.SeqTime, err = strconv.ParseFloat(rec[col["seq_time"]], 64)
	if err != nil {
		return row, err
	}
	row.ParTime, err = strconv.ParseFloat(rec[col["par_time"]], 64)
	if err != nil {
		return row, err
	}
	row.Speedup, err = strconv.ParseFloat(rec[col["speedup"]], 64)
	return row, err
}

// WriteCSVFile writes the table in the benchmark's own format:
// integer size, times with five decimals, speedup with two.
func WriteCSVFile(file string, table BenchTable) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range table {
		rec := []string{
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.SeqTime, 'f', 5, 64),
			strconv.FormatFloat(r.ParTime, 'f', 5, 64),
			strconv.FormatFloat(r.Speedup, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// EnsureDir creates the output directory if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
