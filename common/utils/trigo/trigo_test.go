package trigo_test

import (
	"math"
	"testing"

	"github.com/kartarena/kartarena/common/utils/trigo"
)

func TestNormalizeAngleFoldsFullTurns(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
		{2*math.Pi + 0.25, 0.25},
		{-2*math.Pi - 0.25, -0.25},
		{3 * math.Pi, math.Pi},
		{4 * math.Pi, 0},
		{-4 * math.Pi, 0},
	}

	for _, c := range cases {
		got, err := trigo.NormalizeAngle(c.in)
		if err != nil {
			t.Fatalf("NormalizeAngle(%v) returned error: %v", c.in, err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for angle := -4 * math.Pi; angle <= 4*math.Pi; angle += 0.1 {
		once, err := trigo.NormalizeAngle(angle)
		if err != nil {
			t.Fatalf("NormalizeAngle(%v) returned error: %v", angle, err)
		}

		twice, err := trigo.NormalizeAngle(once)
		if err != nil {
			t.Fatalf("NormalizeAngle(%v) returned error: %v", once, err)
		}

		if once != twice {
			t.Fatalf("not idempotent at %v: %v != %v", angle, once, twice)
		}
	}
}

func TestNormalizeAngleDomain(t *testing.T) {
	for _, angle := range []float64{4*math.Pi + 0.1, -4*math.Pi - 0.1, 1e17, -1e17} {
		if _, err := trigo.NormalizeAngle(angle); err == nil {
			t.Fatalf("NormalizeAngle(%v) should reject out-of-domain input", angle)
		}
	}
}

func TestFullCircleAngleToSignedHalfCircleAngle(t *testing.T) {
	if got := trigo.FullCircleAngleToSignedHalfCircleAngle(3 * math.Pi / 2); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Fatalf("expected -pi/2, got %v", got)
	}

	if got := trigo.FullCircleAngleToSignedHalfCircleAngle(math.Pi / 2); got != math.Pi/2 {
		t.Fatalf("expected pi/2, got %v", got)
	}
}
