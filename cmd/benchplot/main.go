package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/udon-zx/matmul-bench"
)

var (
	input    = flag.String("input", "result/results.csv", "benchmark CSV file")
	outdir   = flag.String("outdir", "result", "directory the chart images are written to")
	dsn      = flag.String("dsn", "", "load rows from MySQL instead of the CSV file")
	dbTable  = flag.String("table", "results", "MySQL table name, used with -dsn")
	mdReport = flag.Bool("md", false, "also write report.md into the output directory")
)

func main() {
	flag.Parse()

	if err := benchplot.EnsureDir(*outdir); err != nil {
		log.Fatal(err)
	}

	var (
		table benchplot.BenchTable
		err   error
	)
	if *dsn != "" {
		table, err = benchplot.LoadTableFromDB(*dsn, *dbTable)
	} else {
		table, err = benchplot.LoadCSVFile(*input)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := benchplot.RenderTimeChart(table, filepath.Join(*outdir, "time_vs_size.png")); err != nil {
		log.Fatal(err)
	}
	if err := benchplot.RenderSpeedupChart(table, filepath.Join(*outdir, "speedup_vs_size.png")); err != nil {
		log.Fatal(err)
	}

	if *mdReport {
		if err := writeReport(filepath.Join(*outdir, "report.md"), table); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Graphs saved inside result folder.")
}

func writeReport(file string, table benchplot.BenchTable) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := benchplot.WriteMarkdownReport(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
