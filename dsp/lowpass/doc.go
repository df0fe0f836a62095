// Package lowpass smooths sampled navigation data with a causal linear-phase
// FIR low-pass filter and reports the time delay the filter introduces.
//
// A typical run pads the data with constant edge values, filters, strips the
// padding again and shifts the timestamps back by the group delay:
//
//	padded, _ := lowpass.Pad(rows, cfg.Boundary)
//	filtered, delay, _ := lowpass.Filter(padded, cfg, lowpass.AxisSamples)
//	out, _ := lowpass.Unpad(filtered, cfg.Boundary)
//	// t_filtered = t_raw - delay
//
// series.Smooth performs exactly these steps on a time series.
package lowpass
