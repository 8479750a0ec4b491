package behavior

import "math"

// Vec3 is a world-space point or direction. Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Right   = Vec3{X: 1}
	Down    = Vec3{Y: -1}
	Forward = Vec3{Z: 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Magnitude() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns the unit vector, or Zero for a zero-length vector.
func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Scale(1 / m)
}

// ClampMagnitude shortens v to at most max.
func (v Vec3) ClampMagnitude(max float64) Vec3 {
	if max <= 0 {
		return Zero
	}
	m := v.Magnitude()
	if m <= max {
		return v
	}
	return v.Scale(max / m)
}

// Lerp interpolates from a to b. t is not clamped.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (v Vec3) Distance(o Vec3) float64 { return o.Sub(v).Magnitude() }

// WithZ returns v with its depth replaced.
func (v Vec3) WithZ(z float64) Vec3 {
	v.Z = z
	return v
}

// SignedAngle returns the angle in degrees from 'from' to 'to', signed by
// the rotation direction around axis. Zero-length inputs yield 0.
func SignedAngle(from, to, axis Vec3) float64 {
	a, b := from.Normalized(), to.Normalized()
	if a == Zero || b == Zero {
		return 0
	}
	cos := math.Max(-1, math.Min(1, a.Dot(b)))
	angle := math.Acos(cos) * 180 / math.Pi
	if a.Cross(b).Dot(axis) < 0 {
		return -angle
	}
	return angle
}

// RotateZ rotates v counter-clockwise by deg degrees about the view axis.
func RotateZ(v Vec3, deg float64) Vec3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Facing is the unit direction an entity with the given rotation points
// along. Rotation 0 faces Down.
func Facing(rotation float64) Vec3 {
	return RotateZ(Down, rotation)
}
