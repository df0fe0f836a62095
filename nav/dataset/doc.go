// Package dataset reads and writes the tabular survey files and turns them
// into the numeric types of the navigation packages.
//
// Tables are column oriented: every named column holds one value per row.
// Files are comma separated with a header row; a leading unnamed index
// column, as written by pandas, is dropped on read.
//
// The ingestion functions (PositioningSeries, CameraTrajectory, APSFixes and
// GyroAttitudes) are the trust boundary of the pipelines. They convert
// degrees to radians and reject attitude quaternions that are not unit
// length; downstream code assumes well-formed input.
package dataset
