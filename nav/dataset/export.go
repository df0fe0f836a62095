package dataset

import (
	"github.com/cwbudde/algo-nav/nav/trajectory"
	"github.com/cwbudde/algo-nav/spatial"
)

// TrajectoryFrame returns tr as a table. Epoch is written when tr has
// timestamps and DirectionX..Z when it has directions; positions use the
// survey grid columns and attitudes Quaternion1..4, scalar first.
func TrajectoryFrame(tr trajectory.Trajectory) (*Frame, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	f := &Frame{}
	if tr.Times != nil {
		if err := f.AddFloats(ColEpoch, tr.Times); err != nil {
			return nil, err
		}
	}

	if err := f.AddVectors([3]string{ColNorthing, ColEasting, ColDepth}, tr.Positions); err != nil {
		return nil, err
	}

	quats := [4][]float64{}
	for k := range quats {
		quats[k] = make([]float64, tr.Len())
	}
	for i, q := range tr.Attitudes {
		a := q.Array()
		for k := range quats {
			quats[k][i] = a[k]
		}
	}
	for k, name := range []string{ColQuaternion1, ColQuaternion2, ColQuaternion3, ColQuaternion4} {
		if err := f.AddFloats(name, quats[k]); err != nil {
			return nil, err
		}
	}

	if tr.Directions != nil {
		if err := f.AddVectors([3]string{ColDirectionX, ColDirectionY, ColDirectionZ}, tr.Directions); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// AddVectors appends the components of vs as three numeric columns.
func (f *Frame) AddVectors(names [3]string, vs []spatial.Vec3) error {
	for k, name := range names {
		col := make([]float64, len(vs))
		for i, v := range vs {
			col[i] = v[k]
		}
		if err := f.AddFloats(name, col); err != nil {
			return err
		}
	}

	return nil
}
