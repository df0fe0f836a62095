package figure

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
)

// Comparison overlays one channel of an unfiltered and a filtered series
// against time.
func Comparison(ylabel string, raw, filtered series.TimeSeries, channel int) (Figure, error) {
	if channel < 0 || channel >= raw.Channels() || channel >= filtered.Channels() {
		return Figure{}, fmt.Errorf("figure: channel %d out of range", channel)
	}

	return Figure{
		XLabel: "Epoch [s]",
		YLabel: ylabel,
		Lines: []Line{
			{Label: "Unfiltered", X: raw.Times, Y: raw.Values[channel]},
			{Label: "Filtered", X: filtered.Times, Y: filtered.Values[channel]},
		},
	}, nil
}

// Track is a labelled sequence of (northing, easting, depth) positions.
type Track struct {
	Label     string
	Positions []spatial.Vec3
}

// Planar plots tracks as easting against northing with equal axes.
func Planar(title string, tracks ...Track) Figure {
	f := Figure{
		Title:     title,
		XLabel:    "UTM Easting [m]",
		YLabel:    "UTM Northing [m]",
		EqualAxes: true,
	}

	for _, t := range tracks {
		l := Line{Label: t.Label, X: make([]float64, len(t.Positions)), Y: make([]float64, len(t.Positions))}
		for i, p := range t.Positions {
			l.X[i], l.Y[i] = p[1], p[0]
		}
		f.Lines = append(f.Lines, l)
	}

	return f
}

// DepthProfile plots the depth of tracks against time. times[i] belongs to
// tracks[i].
func DepthProfile(times [][]float64, tracks ...Track) (Figure, error) {
	if len(times) != len(tracks) {
		return Figure{}, fmt.Errorf("figure: %d time axes for %d tracks", len(times), len(tracks))
	}

	f := Figure{XLabel: "Epoch [s]", YLabel: "Depth [m]"}
	for i, t := range tracks {
		if len(times[i]) != len(t.Positions) {
			return Figure{}, fmt.Errorf("figure: track %q has %d times for %d positions", t.Label, len(times[i]), len(t.Positions))
		}
		l := Line{Label: t.Label, X: times[i], Y: make([]float64, len(t.Positions))}
		for j, p := range t.Positions {
			// Plotted as elevation so that deeper is lower.
			l.Y[j] = -p[2]
		}
		f.Lines = append(f.Lines, l)
	}

	return f, nil
}
