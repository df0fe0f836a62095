// Package trajectory georeferences vehicle trajectories with rigid-body
// transforms.
//
// A camera trajectory from visual odometry is carried through three stages:
//
//   - Stage A, ComposeTransducer: the transducer track is the camera track
//     plus the lever arm rotated by each camera attitude.
//   - Stage B, Align: a fixed camera inclination and the axis convention of
//     the odometry frame are removed.
//   - Stage C, Georeference: the levelled trajectory is rotated into the
//     initial roll, pitch and heading of the vehicle and translated so that
//     the first transducer sample sits on an absolute fix.
//
// SLAMRelative runs the three stages. APSRelative is the inverse use case:
// acoustic fixes are authoritative and the camera pose is reconstructed from
// the nearest gyro attitude at each fix.
//
// All functions are pure. Inputs are never modified and every output slice
// is freshly allocated. Attitudes are assumed to be unit quaternions; they
// are validated at ingestion, not here.
package trajectory
