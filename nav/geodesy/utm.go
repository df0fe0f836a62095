// Package geodesy converts survey grid coordinates to geographic ones and
// exports tracks for map viewers.
package geodesy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wroge/wgs84"
)

var (
	// ErrInvalidZone is returned for UTM zones outside 1..60.
	ErrInvalidZone = errors.New("geodesy: invalid UTM zone")
	// ErrInvalidHemisphere is returned for hemisphere codes other than N or S.
	ErrInvalidHemisphere = errors.New("geodesy: invalid hemisphere")
)

// Hemisphere selects the UTM false northing.
type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
)

func (h Hemisphere) String() string {
	return string(h)
}

// ParseHemisphere accepts "N", "S", "North" and "South" in any case.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "S", "SOUTH":
		return South, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHemisphere, s)
	}
}

// ParseZone parses a UTM zone number. Trailing latitude band letters, as in
// "32V", are ignored.
func ParseZone(s string) (int, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "CDEFGHJKLMNPQRSTUVWXcdefghjklmnpqrstuvwx")

	zone, err := strconv.Atoi(s)
	if err != nil {
		// pandas writes integer columns read with NaNs as "32.0"
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidZone, s)
		}
		zone = int(f)
	}

	if zone < 1 || zone > 60 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidZone, zone)
	}

	return zone, nil
}

// CentralMeridian returns the longitude of the centre of a UTM zone.
func CentralMeridian(zone int) float64 {
	return float64(zone*6 - 183)
}

// falseNorthing validates a zone and returns the false northing of its
// hemisphere.
func falseNorthing(zone int, hemi Hemisphere) (float64, error) {
	if zone < 1 || zone > 60 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidZone, zone)
	}

	switch hemi {
	case North:
		return 0, nil
	case South:
		return 10_000_000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHemisphere, string(hemi))
	}
}

const (
	refineTolerance = 1e-6 // grid residual in metres
	refineSteps     = 8
)

// Converter returns a function mapping easting/northing in one UTM zone to
// latitude/longitude in degrees. The grid is the WGS84 transverse Mercator
// with scale 0.9996 and a false easting of 500 km.
//
// The series inverse of wgs84 v1.1.7 misplaces latitude by metres, so its
// estimate is corrected with the forward projection until the position maps
// back onto the requested grid point.
func Converter(zone int, hemi Hemisphere) (func(easting, northing float64) (lat, lon float64), error) {
	fn, err := falseNorthing(zone, hemi)
	if err != nil {
		return nil, err
	}

	grid := wgs84.WGS84().TransverseMercator(CentralMeridian(zone), 0, 0.9996, 500_000, fn)
	proj, ellipsoid := grid.Projection, grid.Datum

	return func(easting, northing float64) (float64, float64) {
		lon0, lat0 := proj.ToLonLat(easting, northing, ellipsoid)
		lon, lat := lon0, lat0

		for range refineSteps {
			e, n := proj.FromLonLat(lon, lat, ellipsoid)
			if math.Hypot(easting-e, northing-n) < refineTolerance {
				break
			}
			lonBack, latBack := proj.ToLonLat(e, n, ellipsoid)
			lon += lon0 - lonBack
			lat += lat0 - latBack
		}

		return lat, lon
	}, nil
}

// UTMToLatLon converts one grid position to latitude/longitude in degrees.
func UTMToLatLon(easting, northing float64, zone int, hemi Hemisphere) (lat, lon float64, err error) {
	conv, err := Converter(zone, hemi)
	if err != nil {
		return 0, 0, err
	}

	lat, lon = conv(easting, northing)

	return lat, lon, nil
}

// Track converts a sequence of grid positions that may cross zones. All
// slices must have the same length.
func Track(easting, northing []float64, zones []int, hemis []Hemisphere) (lat, lon []float64, err error) {
	n := len(easting)
	if len(northing) != n || len(zones) != n || len(hemis) != n {
		return nil, nil, fmt.Errorf("geodesy: track columns differ in length: %d, %d, %d, %d",
			n, len(northing), len(zones), len(hemis))
	}

	type key struct {
		zone int
		hemi Hemisphere
	}
	converters := make(map[key]func(float64, float64) (float64, float64))

	lat = make([]float64, n)
	lon = make([]float64, n)
	for i := range n {
		k := key{zones[i], hemis[i]}
		conv, ok := converters[k]
		if !ok {
			if conv, err = Converter(k.zone, k.hemi); err != nil {
				return nil, nil, fmt.Errorf("geodesy: row %d: %w", i+1, err)
			}
			converters[k] = conv
		}
		lat[i], lon[i] = conv(easting[i], northing[i])
	}

	return lat, lon, nil
}

// ParseGrid parses parallel zone and hemisphere columns as read from a
// survey export.
func ParseGrid(zones, hemis []string) ([]int, []Hemisphere, error) {
	if len(zones) != len(hemis) {
		return nil, nil, fmt.Errorf("geodesy: %d zones, %d hemispheres", len(zones), len(hemis))
	}

	outZones := make([]int, len(zones))
	outHemis := make([]Hemisphere, len(hemis))
	for i := range zones {
		z, err := ParseZone(zones[i])
		if err != nil {
			return nil, nil, fmt.Errorf("geodesy: row %d: %w", i+1, err)
		}
		h, err := ParseHemisphere(hemis[i])
		if err != nil {
			return nil, nil, fmt.Errorf("geodesy: row %d: %w", i+1, err)
		}
		outZones[i], outHemis[i] = z, h
	}

	return outZones, outHemis, nil
}
