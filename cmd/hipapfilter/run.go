package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cwbudde/algo-nav/internal/config"
	"github.com/cwbudde/algo-nav/internal/monitoring"
	"github.com/cwbudde/algo-nav/nav/dataset"
	"github.com/cwbudde/algo-nav/nav/figure"
	"github.com/cwbudde/algo-nav/nav/geodesy"
	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
)

// datetimeLayout is the timestamp format of the survey exports.
const datetimeLayout = "2006:01:02:15:04:05.000000"

type options struct {
	input   string
	output  string
	plotDir string
	geoJSON string
	survey  *config.Survey
}

type result struct {
	raw      series.TimeSeries
	filtered series.TimeSeries
	delay    float64
	lat, lon []float64
	frame    *dataset.Frame
}

func run(opts options) error {
	done := monitoring.Stage("filter %s", opts.input)
	defer done()

	table, err := dataset.LoadCSV(opts.input)
	if err != nil {
		return err
	}
	monitoring.Logf("read %d rows", table.Len())

	res, err := filterTable(table, opts.survey)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}

	output := opts.output
	if output == "" {
		output = defaultOutput(opts.input)
	}
	if err := res.frame.SaveCSV(output); err != nil {
		return err
	}
	monitoring.Logf("wrote %s", output)

	if opts.geoJSON != "" {
		data, err := geodesy.TrackGeoJSON(filepath.Base(opts.input), res.lat, res.lon)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.geoJSON, data, 0o644); err != nil {
			return fmt.Errorf("writing geojson: %w", err)
		}
		monitoring.Logf("wrote %s", opts.geoJSON)
	}

	if opts.plotDir != "" {
		if err := savePlots(opts.plotDir, res); err != nil {
			return err
		}
		monitoring.Logf("wrote figures to %s", opts.plotDir)
	}

	return nil
}

// filterTable smooths the positions of table and returns the output frame.
func filterTable(table dataset.Table, survey *config.Survey) (result, error) {
	raw, err := dataset.PositioningSeries(table)
	if err != nil {
		return result{}, err
	}

	fs, err := raw.SampleFrequency()
	if err != nil {
		return result{}, err
	}
	monitoring.Logf("sample frequency %.4f Hz", fs)

	var res result
	res.raw = raw
	if spec, ok := survey.KaiserSpec(); ok {
		res.filtered, res.delay, err = series.SmoothKaiser(raw, spec, survey.Filter.Boundary)
	} else {
		lp, lpErr := survey.LowPass()
		if lpErr != nil {
			return result{}, lpErr
		}
		res.filtered, res.delay, err = series.Smooth(raw, lp)
	}
	if err != nil {
		return result{}, err
	}
	monitoring.Logf("filter delay %.3f s", res.delay)

	zoneText, err := table.Strings(dataset.ColZone)
	if err != nil {
		return result{}, err
	}
	hemiText, err := table.Strings(dataset.ColHemisphere)
	if err != nil {
		return result{}, err
	}
	zones, hemis, err := geodesy.ParseGrid(zoneText, hemiText)
	if err != nil {
		return result{}, err
	}

	northing, easting, depth := res.filtered.Values[0], res.filtered.Values[1], res.filtered.Values[2]
	res.lat, res.lon, err = geodesy.Track(easting, northing, zones, hemis)
	if err != nil {
		return result{}, err
	}

	datetimes := make([]string, res.filtered.Len())
	for i, e := range res.filtered.Times {
		datetimes[i] = formatEpoch(e)
	}

	res.frame, err = buildFrame(
		column{name: dataset.ColEpoch, floats: res.filtered.Times},
		column{name: dataset.ColNorthing, floats: northing},
		column{name: dataset.ColEasting, floats: easting},
		column{name: dataset.ColDepth, floats: depth},
		column{name: dataset.ColZone, text: zoneText},
		column{name: dataset.ColHemisphere, text: hemiText},
		column{name: dataset.ColLatitude, floats: res.lat},
		column{name: dataset.ColLongitude, floats: res.lon},
		column{name: dataset.ColDatetime, text: datetimes},
	)
	if err != nil {
		return result{}, err
	}

	return res, nil
}

// column is either numeric or text.
type column struct {
	name   string
	floats []float64
	text   []string
}

func buildFrame(cols ...column) (*dataset.Frame, error) {
	f := &dataset.Frame{}
	for _, c := range cols {
		var err error
		if c.text != nil {
			err = f.AddStrings(c.name, c.text)
		} else {
			err = f.AddFloats(c.name, c.floats)
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func savePlots(dir string, res result) error {
	names := []string{"northing", "easting", "depth"}
	for i, name := range names {
		f, err := figure.Comparison(dataset.PositionColumns[i]+" [m]", res.raw, res.filtered, i)
		if err != nil {
			return err
		}
		if err := f.Save(filepath.Join(dir, name+".png")); err != nil {
			return err
		}
	}

	raw := figure.Track{Label: "Unfiltered", Positions: positions(res.raw)}
	filtered := figure.Track{Label: "Filtered", Positions: positions(res.filtered)}

	if err := figure.Planar("HiPAP track", raw, filtered).Save(filepath.Join(dir, "track.png")); err != nil {
		return err
	}

	profile, err := figure.DepthProfile([][]float64{res.raw.Times, res.filtered.Times}, raw, filtered)
	if err != nil {
		return err
	}

	return profile.Save(filepath.Join(dir, "depth_profile.png"))
}

func positions(ts series.TimeSeries) []spatial.Vec3 {
	out := make([]spatial.Vec3, ts.Len())
	for i := range out {
		out[i] = spatial.Vec3{ts.Values[0][i], ts.Values[1][i], ts.Values[2][i]}
	}
	return out
}

// formatEpoch renders Unix seconds in UTC with microsecond resolution.
func formatEpoch(epoch float64) string {
	sec, frac := math.Modf(epoch)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC().Format(datetimeLayout)
}

func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_filtered" + ext
}
