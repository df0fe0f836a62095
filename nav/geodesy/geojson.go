package geodesy

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// TrackLine returns the track as an orb line string in lon/lat order.
func TrackLine(lat, lon []float64) (orb.LineString, error) {
	if len(lat) != len(lon) {
		return nil, fmt.Errorf("geodesy: %d latitudes, %d longitudes", len(lat), len(lon))
	}

	ls := make(orb.LineString, len(lat))
	for i := range lat {
		ls[i] = orb.Point{lon[i], lat[i]}
	}

	return ls, nil
}

// TrackLength returns the geodesic length of the track in metres.
func TrackLength(lat, lon []float64) (float64, error) {
	ls, err := TrackLine(lat, lon)
	if err != nil {
		return 0, err
	}

	return geo.Length(ls), nil
}

// TrackGeoJSON encodes the track as a GeoJSON feature collection holding a
// single LineString feature. The feature carries name and its length in
// metres as properties.
func TrackGeoJSON(name string, lat, lon []float64) ([]byte, error) {
	ls, err := TrackLine(lat, lon)
	if err != nil {
		return nil, err
	}

	feature := geojson.NewFeature(ls)
	feature.Properties["name"] = name
	feature.Properties["length_m"] = geo.Length(ls)

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	return fc.MarshalJSON()
}
