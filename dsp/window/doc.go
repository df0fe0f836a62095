// Package window provides the window functions used for windowed-sinc FIR
// design, together with Kaiser's order and beta estimates.
package window
