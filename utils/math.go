package utils

import (
	"math"
)

// Fl is the scalar type used for angles, distances and matrix entries.
type Fl = float64

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return math.Round(f*n10) / n10
}

// Round rounds f with 6 digits precision
func Round(f Fl) Fl {
	return RoundPrec(f, 6)
}
