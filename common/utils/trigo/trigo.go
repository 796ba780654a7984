package trigo

import (
	"math"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/kartarena/kartarena/common/utils/number"
)

// NormalizeAngle folds an angle into (-pi, pi].
//
// The input must be within [-4*pi, 4*pi]; anything outside that range means
// an upstream angle accumulation bug (an unfolded loop would never terminate
// on values like 1e17, where subtracting 2*pi is a no-op in float64). The
// caller decides whether the returned error is fatal.
func NormalizeAngle(angle float64) (float64, error) {
	if angle < -4*math.Pi || angle > 4*math.Pi {
		return 0, bettererrors.
			New("angle out of normalization domain").
			SetContext("angle", number.FloatToStr(angle, 5))
	}

	for angle > 2*math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -2*math.Pi {
		angle += 2 * math.Pi
	}

	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}

	return angle, nil
}

func FullCircleAngleToSignedHalfCircleAngle(rad float64) float64 {
	if rad > math.Pi { // 180° en radians
		rad -= math.Pi * 2 // 360° en radian
	} else if rad < -math.Pi {
		rad += math.Pi * 2 // 360° en radian
	}

	return rad
}
