package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/udon-zx/matmul-bench"
)

var (
	input = flag.String("input", "result/results.csv", "benchmark CSV file")
	addr  = flag.String("addr", ":18081", "listen address")
)

var (
	table benchplot.BenchTable
	page  *components.Page
	mu    sync.RWMutex
)

func mainHandle(w http.ResponseWriter, _ *http.Request) {
	mu.RLock()
	defer mu.RUnlock()
	page.Render(w)
}

func uploadHandle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method should be POST", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var row benchplot.BenchRow
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&row); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mu.Lock()
	table = append(table, row)
	snapshot := append(benchplot.BenchTable(nil), table...)
	mu.Unlock()

	if err := benchplot.WriteCSVFile(*input, snapshot); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	reGeneratePage(snapshot)
}

func makePage(t benchplot.BenchTable) *components.Page {
	sizes := make([]string, 0, len(t))
	seq := make([]opts.LineData, 0, len(t))
	par := make([]opts.LineData, 0, len(t))
	speedup := make([]opts.LineData, 0, len(t))
	for _, r := range t {
		sizes = append(sizes, strconv.Itoa(r.Size))
		seq = append(seq, opts.LineData{Value: r.SeqTime})
		par = append(par, opts.LineData{Value: r.ParTime})
		speedup = append(speedup, opts.LineData{Value: r.Speedup})
	}

	timeChart := charts.NewLine()
	timeChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sequential vs Parallel Execution Time"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Matrix Size (n)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (seconds)"}))
	timeChart.SetXAxis(sizes)
	timeChart.AddSeries("Sequential", seq)
	timeChart.AddSeries("Parallel", par)

	speedupChart := charts.NewLine()
	speedupChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Speedup vs Matrix Size"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Matrix Size (n)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speedup"}))
	speedupChart.SetXAxis(sizes)
	speedupChart.AddSeries("Speedup", speedup)

	p := components.NewPage()
	p.AddCharts(timeChart, speedupChart)
	return p
}

func reGeneratePage(t benchplot.BenchTable) {
	tmp := makePage(t)
	mu.Lock()
	page = tmp
	mu.Unlock()
}

func main() {
	flag.Parse()

	t, err := benchplot.LoadCSVFile(*input)
	if err != nil {
		panic(err)
	}
	table = t
	reGeneratePage(t)

	http.HandleFunc("/", mainHandle)
	http.HandleFunc("/upload", uploadHandle)
	http.ListenAndServe(*addr, nil)
}
