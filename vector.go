package scrollstage

import (
	"math"
	"strconv"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system (right).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of +Y on the right-handed coordinate system (upwards).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of +Z on the right-handed coordinate system (backwards, towards the viewer).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector, which can be used for usual 3D applications (position, direction, scale, etc).
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

func (vec Vector) String() string {
	return "{" + strconv.FormatFloat(vec.X, 'f', -1, 64) + ", " + strconv.FormatFloat(vec.Y, 'f', -1, 64) + ", " + strconv.FormatFloat(vec.Z, 'f', -1, 64) + "}"
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector with all components multiplied by the scalar given.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of the calling Vector and the other Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length). A zero-length Vector is returned as-is.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-12 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp returns a Vector linearly interpolated between the calling Vector and the other Vector by the percentage given.
func (vec Vector) Lerp(other Vector, percentage float64) Vector {
	return vec.Add(other.Sub(vec).Scale(percentage))
}

// Equals returns true if all components of the two Vectors are identical.
func (vec Vector) Equals(other Vector) bool {
	return vec.X == other.X && vec.Y == other.Y && vec.Z == other.Z
}

// IsZero returns true if all components of the Vector are zero.
func (vec Vector) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// Vector4 is a Vector with a fourth (W) component, produced when multiplying by a projection Matrix4.
type Vector4 struct {
	X, Y, Z, W float64
}

// Vector3 drops the W component of the Vector4.
func (vec Vector4) Vector3() Vector {
	return Vector{X: vec.X, Y: vec.Y, Z: vec.Z}
}
