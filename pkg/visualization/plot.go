// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visualization

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// bandAlpha is opacity of the confidence band.
const bandAlpha = 48

// PlotConfig describes plot output and annotations.
type PlotConfig struct {
	// Path of the image; format is taken from extension (png, svg, pdf).
	Path        string
	RunLength   int
	Simulations int
	Confidence  decimal.Decimal
	Width       vg.Length
	Height      vg.Length
}

// DefaultPlotConfig returns 8x5 inch plot for given path.
func DefaultPlotConfig(path string) PlotConfig {
	return PlotConfig{
		Path:       path,
		Confidence: decimal.NewFromInt(99),
		Width:      8 * vg.Inch,
		Height:     5 * vg.Inch,
	}
}

// NewPlot draws mean number of streaks against games played, one line per win
// probability, with confidence interval as translucent band around each line.
func NewPlot(summaries []Summary, config PlotConfig) (*plot.Plot, error) {
	if len(summaries) == 0 {
		return nil, errors.New("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Winning Streaks of Length %d vs Games Played", config.RunLength)
	p.X.Label.Text = fmt.Sprintf("Number of Games Played\n\nNumber of Simulations Conducted: %d\nConfidence level: %s",
		config.Simulations, config.Confidence)
	p.Y.Label.Text = fmt.Sprintf("Number of %d-games winning streaks", config.RunLength)
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	ticks := []plot.Tick{}
	for _, size := range SampleSizes(summaries) {
		ticks = append(ticks, plot.Tick{Value: float64(size), Label: strconv.Itoa(size)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	for i, probability := range Probabilities(summaries) {
		means, band := series(summaries, probability)
		lineColor := plotutil.Color(i)

		polygon, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot draw confidence band for probability %v", probability)
		}
		polygon.Color = translucent(lineColor)
		polygon.LineStyle.Width = 0

		line, err := plotter.NewLine(means)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot draw line for probability %v", probability)
		}
		line.LineStyle.Color = lineColor
		line.LineStyle.Width = vg.Points(1)

		p.Add(polygon, line)
		p.Legend.Add("p = "+formatProbability(probability), line)
	}
	return p, nil
}

// Plot renders summaries to config.Path.
func Plot(summaries []Summary, config PlotConfig) error {
	p, err := NewPlot(summaries, config)
	if err != nil {
		return err
	}
	if err := p.Save(config.Width, config.Height, config.Path); err != nil {
		return errors.Wrapf(err, "cannot save plot to %q", config.Path)
	}
	return nil
}

// series returns means of single probability ordered by sample size, and
// closed outline of its confidence band.
func series(summaries []Summary, probability float64) (means plotter.XYs, band plotter.XYs) {
	for _, summary := range summaries {
		if summary.Probability != probability {
			continue
		}
		x := float64(summary.SampleSize)
		means = append(means, plotter.XY{X: x, Y: summary.Mean})
		band = append(band, plotter.XY{X: x, Y: summary.Upper})
	}
	// Summaries are sorted by sample size, so lower bound goes back right to left.
	for i := len(summaries) - 1; i >= 0; i-- {
		if summaries[i].Probability != probability {
			continue
		}
		band = append(band, plotter.XY{X: float64(summaries[i].SampleSize), Y: summaries[i].Lower})
	}
	return means, band
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: bandAlpha}
}
