package tag_seq

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CompositionChartSVG renders base percentages as an SVG bar chart
func CompositionChartSVG(title string, comp Composition) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Base Composition: %s", title)
	p.X.Label.Text = "Base"
	p.Y.Label.Text = "Share (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(Nucleotides))
	names := make([]string, len(Nucleotides))
	for i := 0; i < len(Nucleotides); i++ {
		values[i] = comp.Percent[Nucleotides[i]]
		names[i] = string(Nucleotides[i])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	var buf bytes.Buffer
	writer, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteCompositionChart renders the chart and writes it to path
func WriteCompositionChart(path, title string, comp Composition) error {
	svg, err := CompositionChartSVG(title, comp)
	if err != nil {
		return fmt.Errorf("failed to render composition chart: %w", err)
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
