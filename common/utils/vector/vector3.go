package vector

import (
	"math"

	"github.com/kartarena/kartarena/common/utils/number"
)

type Vector3 struct {
	x float64
	y float64
	z float64
}

func MakeVector3(x float64, y float64, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Returns a null Vector3
func MakeNullVector3() Vector3 {
	return MakeVector3(0, 0, 0)
}

func (v Vector3) Get() (float64, float64, float64) {
	return v.x, v.y, v.z
}

func (v Vector3) GetX() float64 {
	return v.x
}

func (v Vector3) GetY() float64 {
	return v.y
}

func (v Vector3) GetZ() float64 {
	return v.z
}

func (a Vector3) Add(b Vector3) Vector3 {
	a.x += b.x
	a.y += b.y
	a.z += b.z
	return a
}

func (a Vector3) Sub(b Vector3) Vector3 {
	a.x -= b.x
	a.y -= b.y
	a.z -= b.z
	return a
}

func (a Vector3) MultScalar(f float64) Vector3 {
	a.x *= f
	a.y *= f
	a.z *= f
	return a
}

func (a Vector3) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector3) MagSq() float64 {
	return a.x*a.x + a.y*a.y + a.z*a.z
}

// Rotates the vector around the vertical (Y) axis. Positive angles turn
// +z towards +x, matching the compass heading convention of Vector2.Angle.
func (a Vector3) RotateAroundY(radians float64) Vector3 {
	sin, cos := math.Sincos(radians)

	x := a.x*cos + a.z*sin
	z := -a.x*sin + a.z*cos

	a.x = x
	a.z = z
	return a
}

// Projection on the physics plane; world z becomes box2d y.
func (a Vector3) XZ() Vector2 {
	return MakeVector2(a.x, a.z)
}

func (a Vector3) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y) && number.IsZero(a.z)
}

func (a Vector3) Equals(b Vector3) bool {
	return b.Sub(a).IsNull()
}

func (a Vector3) String() string {
	return "<Vector3(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ", " + number.FloatToStr(a.z, 5) + ")>"
}
