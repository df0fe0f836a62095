package dataset

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/nav/trajectory"
	"github.com/cwbudde/algo-nav/spatial"
)

// DefaultQuaternionTolerance is the accepted deviation of |q| from 1.
const DefaultQuaternionTolerance = 1e-6

func columns(t Table, names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}

	return out, nil
}

// PositioningSeries returns the Epoch column as timestamps and the named
// channels as values. Without channels, PositionColumns are used.
func PositioningSeries(t Table, channels ...string) (series.TimeSeries, error) {
	if len(channels) == 0 {
		channels = PositionColumns
	}

	times, err := t.Column(ColEpoch)
	if err != nil {
		return series.TimeSeries{}, err
	}

	values, err := columns(t, channels...)
	if err != nil {
		return series.TimeSeries{}, err
	}

	return series.New(times, values...)
}

// CameraTrajectory reads a visual-odometry export: PositionX..Z and the
// scalar-first attitude Quaternion1..4. Epoch is attached when present.
// Attitudes whose norm differs from 1 by more than tol are rejected.
func CameraTrajectory(t Table, tol float64) (trajectory.Trajectory, error) {
	cols, err := columns(t,
		ColPositionX, ColPositionY, ColPositionZ,
		ColQuaternion1, ColQuaternion2, ColQuaternion3, ColQuaternion4)
	if err != nil {
		return trajectory.Trajectory{}, err
	}

	n := t.Len()
	tr := trajectory.Trajectory{
		Positions: make([]spatial.Vec3, n),
		Attitudes: make([]spatial.Quat, n),
	}

	for i := range n {
		tr.Positions[i] = spatial.Vec3{cols[0][i], cols[1][i], cols[2][i]}

		q := spatial.FromSlice([4]float64{cols[3][i], cols[4][i], cols[5][i], cols[6][i]})
		if !q.IsUnit(tol) {
			return trajectory.Trajectory{}, fmt.Errorf("%w: row %d has |q|=%g", ErrNonUnitQuaternion, i+1, q.Norm())
		}
		tr.Attitudes[i] = q
	}

	if t.Has(ColEpoch) {
		if tr.Times, err = t.Column(ColEpoch); err != nil {
			return trajectory.Trajectory{}, err
		}
	}

	return tr, nil
}

// APSFixes reads acoustic positions as (northing, easting, depth), depth
// positive down. Epochs must not decrease.
func APSFixes(t Table) ([]trajectory.Fix, error) {
	cols, err := columns(t, ColEpoch, ColNorthing, ColEasting, ColDepth)
	if err != nil {
		return nil, err
	}

	out := make([]trajectory.Fix, t.Len())
	for i := range out {
		out[i] = trajectory.Fix{
			Time:     cols[0][i],
			Position: spatial.Vec3{cols[1][i], cols[2][i], cols[3][i]},
		}
	}

	if err := trajectory.CheckFixOrder(out); err != nil {
		return nil, err
	}

	return out, nil
}

// GyroAttitudes reads roll, pitch and heading in degrees and returns them in
// radians.
func GyroAttitudes(t Table) ([]trajectory.AttitudeSample, error) {
	cols, err := columns(t, ColEpoch, ColRoll, ColPitch, ColHeading)
	if err != nil {
		return nil, err
	}

	out := make([]trajectory.AttitudeSample, t.Len())
	for i := range out {
		out[i] = trajectory.AttitudeSample{
			Time:    cols[0][i],
			Roll:    spatial.Deg2Rad(cols[1][i]),
			Pitch:   spatial.Deg2Rad(cols[2][i]),
			Heading: spatial.Deg2Rad(cols[3][i]),
		}
	}

	return out, nil
}
