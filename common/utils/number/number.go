package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func FloatToStr(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func DegreeToRadian(degree float64) float64 {
	return degree * (math.Pi / 180.0)
}

func RadianToDegree(radian float64) float64 {
	return radian * (180.0 / math.Pi)
}

func Clamp(f float64, min float64, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}

func Map(value float64, fromA float64, fromB float64, toA float64, toB float64) float64 {
	return (value-fromA)/(fromB-fromA)*(toB-toA) + toA
}
