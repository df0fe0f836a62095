// Package fir provides a causal direct-form FIR filter runtime, windowed-sinc
// low-pass design, and FFT evaluation of a design's frequency response.
//
// [LowPass] with a Hamming window produces the same taps as the usual
// firwin(numtaps, cutoff, fs) design; [Apply] runs them from zero initial
// state like lfilter(b, 1, x).
package fir
