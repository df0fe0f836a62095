package window

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidKaiser is returned by KaiserOrder for unreachable tolerances.
var ErrInvalidKaiser = errors.New("window: invalid kaiser specification")

// KaiserBeta returns the Kaiser shape parameter that achieves the given
// stop-band attenuation in dB (Kaiser's empirical formula).
func KaiserBeta(attenuation float64) float64 {
	a := math.Abs(attenuation)

	switch {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a > 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}

// KaiserOrder estimates the number of taps and the window beta for a
// Kaiser-window FIR filter with the given stop-band attenuation (dB) and
// transition width, expressed as a fraction of the Nyquist frequency.
func KaiserOrder(attenuation, width float64) (numTaps int, beta float64, err error) {
	a := math.Abs(attenuation)
	if a < 8 {
		return 0, 0, fmt.Errorf("%w: attenuation must be >= 8 dB, got %g", ErrInvalidKaiser, a)
	}

	if width <= 0 || width >= 1 {
		return 0, 0, fmt.Errorf("%w: transition width must be in (0,1), got %g", ErrInvalidKaiser, width)
	}

	numTaps = int(math.Ceil((a-7.95)/(2.285*math.Pi*width) + 1))

	return numTaps, KaiserBeta(a), nil
}
