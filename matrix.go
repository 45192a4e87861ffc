package scrollstage

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major and vectors are multiplied
// as rows (v * M), so the translation lives in matrix[3] and transforms combine left to right: scale, then rotation, then translation.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object through by the axis, and then rotated it counter-clockwise by the angle.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := NewVector(x, y, z).Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewMatrix4RotateFromEuler creates a rotation Matrix4 from euler angles (in radians) using XYZ order;
// the Z rotation is applied first, then Y, then X.
func NewMatrix4RotateFromEuler(euler Vector) Matrix4 {
	return NewMatrix4Rotate(0, 0, 1, euler.Z).
		Mult(NewMatrix4Rotate(0, 1, 0, euler.Y)).
		Mult(NewMatrix4Rotate(1, 0, 0, euler.X))
}

// NewLookAtMatrix generates a rotation Matrix4 that turns -Z of an object at from towards to.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	if from.Equals(to) {
		return NewMatrix4()
	}

	z := from.Sub(to).Unit()
	up = up.Unit()

	if math.Abs(z.Dot(up)) > 0.9999 {
		up = WorldBackward
		if math.Abs(z.Dot(up)) > 0.9999 {
			up = WorldRight
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)

	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}

}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, near and far are the
// near and far clipping planes, and aspect is the width / height ratio of the output surface.
func NewProjectionPerspective(fovy, near, far, aspect float64) Matrix4 {

	f := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, (2 * far * near) / (near - far), 0},
	}

}

// Right returns the right-facing (+X) rotational component of the Matrix4.
func (matrix Matrix4) Right() Vector {
	return NewVector(matrix[0][0], matrix[0][1], matrix[0][2]).Unit()
}

// Up returns the upward-facing (+Y) rotational component of the Matrix4.
func (matrix Matrix4) Up() Vector {
	return NewVector(matrix[1][0], matrix[1][1], matrix[1][2]).Unit()
}

// Forward returns the forward-facing (-Z) rotational component of the Matrix4.
func (matrix Matrix4) Forward() Vector {
	return NewVector(-matrix[2][0], -matrix[2][1], -matrix[2][2]).Unit()
}

// Position returns the translation stored in the Matrix4.
func (matrix Matrix4) Position() Vector {
	return NewVector(matrix[3][0], matrix[3][1], matrix[3][2])
}

// Transposed returns a transposed copy of the Matrix4. For pure rotation matrices, this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	transposed := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			transposed[i][j] = matrix[j][i]
		}
	}

	return transposed

}

// Inverted returns an inverted version of the Matrix4, using the cofactor expansion of the 2x2 sub-determinants.
func (matrix Matrix4) Inverted() Matrix4 {

	m := matrix

	s0 := m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s1 := m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s2 := m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s3 := m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s4 := m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s5 := m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c5 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c4 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c3 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c2 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c1 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c0 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0

	if det == 0 {
		return NewMatrix4()
	}

	inv := 1 / det

	var out Matrix4

	out[0][0] = (m[1][1]*c5 - m[1][2]*c4 + m[1][3]*c3) * inv
	out[0][1] = (-m[0][1]*c5 + m[0][2]*c4 - m[0][3]*c3) * inv
	out[0][2] = (m[3][1]*s5 - m[3][2]*s4 + m[3][3]*s3) * inv
	out[0][3] = (-m[2][1]*s5 + m[2][2]*s4 - m[2][3]*s3) * inv

	out[1][0] = (-m[1][0]*c5 + m[1][2]*c2 - m[1][3]*c1) * inv
	out[1][1] = (m[0][0]*c5 - m[0][2]*c2 + m[0][3]*c1) * inv
	out[1][2] = (-m[3][0]*s5 + m[3][2]*s2 - m[3][3]*s1) * inv
	out[1][3] = (m[2][0]*s5 - m[2][2]*s2 + m[2][3]*s1) * inv

	out[2][0] = (m[1][0]*c4 - m[1][1]*c2 + m[1][3]*c0) * inv
	out[2][1] = (-m[0][0]*c4 + m[0][1]*c2 - m[0][3]*c0) * inv
	out[2][2] = (m[3][0]*s4 - m[3][1]*s2 + m[3][3]*s0) * inv
	out[2][3] = (-m[2][0]*s4 + m[2][1]*s2 - m[2][3]*s0) * inv

	out[3][0] = (-m[1][0]*c3 + m[1][1]*c1 - m[1][2]*c0) * inv
	out[3][1] = (m[0][0]*c3 - m[0][1]*c1 + m[0][2]*c0) * inv
	out[3][2] = (-m[3][0]*s3 + m[3][1]*s1 - m[3][2]*s0) * inv
	out[3][3] = (m[2][0]*s3 - m[2][1]*s1 + m[2][2]*s0) * inv

	return out

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component.
func (matrix Matrix4) MultVecW(vect Vector) Vector4 {

	return Vector4{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// MultDirection multiplies the direction vector provided by the rotation and scale of the Matrix4, ignoring translation.
func (matrix Matrix4) MultDirection(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them, applying the calling matrix first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var out Matrix4

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return out

}

// Equals returns true if the matrix equals the other matrix within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(matrix[r][c]-other[r][c]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// ToEuler decomposes the rotation of the Matrix4 into euler angles (in radians), using the same XYZ order that
// NewMatrix4RotateFromEuler composes them with. The Matrix4 is expected to be free of scale.
func (matrix Matrix4) ToEuler() Vector {

	euler := Vector{}

	sy := math.Max(-1, math.Min(1, matrix[2][0]))
	euler.Y = math.Asin(sy)

	if math.Abs(sy) < 0.9999999 {
		euler.X = math.Atan2(-matrix[2][1], matrix[2][2])
		euler.Z = math.Atan2(-matrix[1][0], matrix[0][0])
	} else {
		euler.X = math.Atan2(matrix[1][2], matrix[1][1])
	}

	return euler

}
