package vector_test

import (
	"math"
	"testing"

	"github.com/kartarena/kartarena/common/utils/vector"
)

func TestRotateAroundY(t *testing.T) {
	forward := vector.MakeVector3(0, 0, 1)

	right := forward.RotateAroundY(math.Pi / 2)
	if !right.Equals(vector.MakeVector3(1, 0, 0)) {
		t.Fatalf("quarter turn should map +z to +x, got %v", right)
	}

	back := forward.RotateAroundY(math.Pi)
	if !back.Equals(vector.MakeVector3(0, 0, -1)) {
		t.Fatalf("half turn should map +z to -z, got %v", back)
	}

	full := forward.RotateAroundY(2 * math.Pi)
	if !full.Equals(forward) {
		t.Fatalf("full turn should be identity, got %v", full)
	}
}

func TestRotateAroundYPreservesMagnitude(t *testing.T) {
	v := vector.MakeVector3(3, 1, 4)

	rotated := v.RotateAroundY(1.234)

	if math.Abs(rotated.Mag()-v.Mag()) > 1e-12 {
		t.Fatalf("rotation must preserve magnitude: %v != %v", rotated.Mag(), v.Mag())
	}

	if rotated.GetY() != v.GetY() {
		t.Fatal("rotation around Y must not touch the Y component")
	}
}

func TestAngleCompassConvention(t *testing.T) {
	if got := vector.MakeVector2(0, 1).Angle(); got != 0 {
		t.Fatalf("forward should be angle 0, got %v", got)
	}

	if got := vector.MakeVector2(1, 0).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("right should be pi/2, got %v", got)
	}

	if got := vector.MakeVector2(0, 0).Angle(); got != 0 {
		t.Fatalf("null vector angle should be 0, got %v", got)
	}
}

func TestPlaneLifting(t *testing.T) {
	v := vector.MakeVector2(2, 5)

	lifted := v.ToXZPlane()
	if !lifted.Equals(vector.MakeVector3(2, 0, 5)) {
		t.Fatalf("unexpected lift: %v", lifted)
	}

	if !lifted.XZ().Equals(v) {
		t.Fatalf("projection should invert the lift, got %v", lifted.XZ())
	}
}

func TestSetMagAndLimit(t *testing.T) {
	v := vector.MakeVector2(3, 4)

	if got := v.SetMag(10).Mag(); math.Abs(got-10) > 1e-12 {
		t.Fatalf("SetMag(10) should yield magnitude 10, got %v", got)
	}

	if got := v.Limit(2).Mag(); math.Abs(got-2) > 1e-12 {
		t.Fatalf("Limit(2) should cap magnitude at 2, got %v", got)
	}

	if got := v.Limit(10); !got.Equals(v) {
		t.Fatalf("Limit above magnitude should be identity, got %v", got)
	}
}
