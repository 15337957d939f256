package benchplot

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const chartDPI = 200

var (
	seqColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	parColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// RenderTimeChart draws the sequential and parallel times against matrix
// size and writes the chart to outPath as a PNG.
func RenderTimeChart(table BenchTable, outPath string) error {
	p := plot.New()
	p.Title.Text = "Sequential vs Parallel Execution Time"
	p.X.Label.Text = "Matrix Size (n)"
	p.Y.Label.Text = "Time (seconds)"
	p.Add(plotter.NewGrid())

	seq, err := addSeries(p, table.points(func(r BenchRow) float64 { return r.SeqTime }), seqColor)
	if err != nil {
		return err
	}
	par, err := addSeries(p, table.points(func(r BenchRow) float64 { return r.ParTime }), parColor)
	if err != nil {
		return err
	}
	p.Legend.Add("Sequential", seq)
	p.Legend.Add("Parallel", par)
	p.Legend.Top = true
	p.Legend.Left = true

	return savePNG(p, outPath)
}

// RenderSpeedupChart draws the recorded speedup against matrix size and
// writes the chart to outPath as a PNG. Single series, so no legend.
func RenderSpeedupChart(table BenchTable, outPath string) error {
	p := plot.New()
	p.Title.Text = "Speedup vs Matrix Size"
	p.X.Label.Text = "Matrix Size (n)"
	p.Y.Label.Text = "Speedup"
	p.Add(plotter.NewGrid())

	if _, err := addSeries(p, table.points(func(r BenchRow) float64 { return r.Speedup }), seqColor); err != nil {
		return err
	}

	return savePNG(p, outPath)
}

func (t BenchTable) points(y func(BenchRow) float64) plotter.XYs {
	pts := make(plotter.XYs, len(t))
	for i, r := range t {
		pts[i].X = float64(r.Size)
		pts[i].Y = y(r)
	}
	return pts
}

// addSeries adds one marked line to the plot: a line plus a scatter of
// the same points, in the same color.
func addSeries(p *plot.Plot, pts plotter.XYs, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = c

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(line, scatter)
	return line, nil
}

// savePNG rasterizes the plot at chartDPI and writes it to outPath,
// overwriting any previous file.
func savePNG(p *plot.Plot, outPath string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(6*vg.Inch, 4*vg.Inch),
		vgimg.UseDPI(chartDPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
