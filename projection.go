package mire

import "math"

// Mat4 is a 4x4 matrix in column-major order, the layout GPU constant buffers
// expect. Element (row r, column c) is at index c*4+r.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(x, y, z float64) Mat4 {
	m := Mat4Identity()
	m[12] = float32(x)
	m[13] = float32(y)
	m[14] = float32(z)
	return m
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Mat4Perspective returns a right-handed perspective projection matrix for
// the given vertical field of view in degrees.
func Mat4Perspective(fovyDeg, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovyDeg*math.Pi/360)
	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) / (near - far))
	m[11] = -1
	m[14] = float32(2 * far * near / (near - far))
	return m
}

// ViewMatrix returns the view transform for a camera looking straight down
// the z axis at the world plane from the given distance.
func ViewMatrix(distance float64) Mat4 {
	return Mat4Translation(0, 0, -distance)
}

// Projection is the model/view/projection triple uploaded to the vertex
// stage once per frame. Its layout (three 4x4 matrices) is the fixed contract
// the renderer depends on.
type Projection struct {
	Model Mat4
	View  Mat4
	Proj  Mat4
}

// DefaultProjection returns the projection for a camera at rest at the
// default view distance.
func DefaultProjection() Projection {
	return WorldToProjection(NewCamera())
}

// WorldToProjection builds the per-frame world-to-projection transform from
// the camera state: the model matrix carries the negated camera position, so
// panning the camera shifts the world the opposite way.
func WorldToProjection(cam *Camera) Projection {
	view := ViewMatrix(cam.Distance)
	return Projection{
		Model: view.Mul(Mat4Translation(-cam.X, -cam.Y, 0)),
		View:  view,
		Proj:  Mat4Perspective(60, AspectRatio, 0.1, 4000),
	}
}
