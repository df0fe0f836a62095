// Package residual summarises differences between an estimated track and
// reference measurements: mean bias, spread, RMS error and worst case.
//
// Mean and spread are computed on values shifted by their first sample, so
// large absolute offsets such as UTM northings do not cost precision.
package residual
