// Package figure renders survey series and trajectories to image files.
package figure

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-nav/spatial"
)

// ErrNoData is returned when a figure has nothing to draw.
var ErrNoData = errors.New("figure: no data")

// Line is one labelled curve.
type Line struct {
	Label string
	X, Y  []float64
}

// Figure describes a 2-D line plot.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line

	// Segments are unlabelled line segments drawn after Lines, for example
	// heading vectors.
	Segments [][2]plotter.XY

	// EqualAxes gives both axes the same scale, for planar tracks.
	EqualAxes bool

	Width, Height vg.Length
}

// Plot builds the gonum plot for f.
func (f Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	drawn := 0
	for i, l := range f.Lines {
		if len(l.X) != len(l.Y) {
			return nil, fmt.Errorf("figure: line %q has %d x and %d y values", l.Label, len(l.X), len(l.Y))
		}
		if len(l.X) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(l.X))
		for j := range pts {
			pts[j] = plotter.XY{X: l.X[j], Y: l.Y[j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("figure: line %q: %w", l.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		if l.Label != "" {
			p.Legend.Add(l.Label, line)
		}
		drawn++
	}

	segColor := plotutil.Color(len(f.Lines))
	for _, s := range f.Segments {
		seg, err := plotter.NewLine(plotter.XYs{s[0], s[1]})
		if err != nil {
			return nil, fmt.Errorf("figure: segment: %w", err)
		}
		seg.Color = segColor
		seg.Width = vg.Points(0.5)
		p.Add(seg)
		drawn++
	}

	if drawn == 0 {
		return nil, ErrNoData
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if f.EqualAxes {
		equalise(p)
	}

	return p, nil
}

// Save renders f to path. The format follows the file extension (png, svg,
// pdf, ...). Missing parent directories are created.
func (f Figure) Save(path string) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	w, h := f.Width, f.Height
	if w == 0 {
		w = 4 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}

	return nil
}

// equalise widens the shorter axis so both cover the same span.
func equalise(p *plot.Plot) {
	span := math.Max(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
	if span == 0 {
		span = 1
	}

	cx := (p.X.Min + p.X.Max) / 2
	cy := (p.Y.Min + p.Y.Max) / 2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}

// Headings returns segments from each origin along its direction, projected
// onto the plane spanned by axes (a, b) and scaled to length.
func Headings(origins, directions []spatial.Vec3, a, b int, length float64) ([][2]plotter.XY, error) {
	if len(origins) != len(directions) {
		return nil, fmt.Errorf("figure: %d origins, %d directions", len(origins), len(directions))
	}

	out := make([][2]plotter.XY, len(origins))
	for i, o := range origins {
		tip := o.Add(directions[i].Scale(length))
		out[i] = [2]plotter.XY{{X: o[a], Y: o[b]}, {X: tip[a], Y: tip[b]}}
	}

	return out, nil
}
