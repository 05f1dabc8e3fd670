package common

import (
	"fmt"
	"math"
)

// Fixed is a fixed-point number in hundredths: Fixed(6_00) is 6.00.
type Fixed int64

const FixedScale = 100

func FixedFromFloat(f float64) Fixed {
	return Fixed(math.Round(f * FixedScale))
}

func (f Fixed) Float() float64 {
	return float64(f) / FixedScale
}

// Mul multiplies two fixed values, rounding toward zero.
func (f Fixed) Mul(other Fixed) Fixed {
	return f * other / FixedScale
}

func (f Fixed) String() string {
	sign := ""
	v := int64(f)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/FixedScale, v%FixedScale)
}
