// Package geom implements the workspace mapper: a fixed tetrahedral
// decomposition of the normalized control cube, with per-vertex calibration
// targets and barycentric interpolation into joint space.
package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotConfigured is returned when interpolation is requested before
	// every vertex referenced by a simplex has a calibration target.
	ErrNotConfigured = errors.New("mapper is not calibrated")

	// ErrOutOfRange is returned when the query point lies outside every
	// simplex of the decomposition.
	ErrOutOfRange = errors.New("point is outside the workspace")
)

// SingularError reports a degenerate simplex whose barycentric system could
// not be solved.
type SingularError struct {
	Simplex int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("simplex %d is degenerate: barycentric system is singular", e.Simplex)
}

// VertexCount is the number of calibration vertices in the decomposition.
const VertexCount = 8

// insideEps absorbs floating-point noise in the barycentric weights so points
// on simplex boundaries are not spuriously rejected.
const insideEps = 1e-9

// Point is a position in normalized control space.
type Point struct {
	X, Y, Z float64
}

// Vertex is one corner of the control cube. Target is the joint-space vector
// assigned by calibration; it is nil until the vertex has been calibrated.
type Vertex struct {
	Pos    Point
	Target []float64
}

// Simplex is a tetrahedron over four vertices of the cube, stored as indices
// into the mapper's vertex table.
type Simplex [4]int

// cubeVertices are the eight corners of the control cube in construction
// order. The order is load-bearing: simplex index tuples below refer to it.
var cubeVertices = [8]Point{
	{-1, 1, 1},
	{1, 1, 1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, -1, -1},
	{-1, -1, -1},
}

// cubeSimplices is the five-tetrahedron cover of the cube: four corner
// tetrahedra around the central one. Their barycentric hulls tile the cube
// with no gaps.
var cubeSimplices = [5]Simplex{
	{0, 1, 2, 5},
	{0, 2, 5, 7},
	{0, 4, 5, 7},
	{0, 2, 3, 7},
	{2, 5, 6, 7},
}

// Mapper interpolates a 3-D control point into an N-dimensional joint-space
// vector over a fixed simplicial decomposition of the unit cube. Geometry is
// immutable after construction; only vertex targets change.
type Mapper struct {
	vertices  [8]Vertex
	simplices [5]Simplex

	targetDim      int
	canInterpolate bool
}

// NewMapper builds a mapper over the default cube decomposition. No vertex
// has a target yet, so interpolation is unavailable until calibration.
func NewMapper() *Mapper {
	m := &Mapper{simplices: cubeSimplices}
	for i, p := range cubeVertices {
		m.vertices[i] = Vertex{Pos: p}
	}
	return m
}

// CanInterpolate reports whether every vertex referenced by a simplex has a
// calibration target. It is recomputed on every calibration write.
func (m *Mapper) CanInterpolate() bool { return m.canInterpolate }

// TargetDim returns the output dimension fixed by the first calibrated
// target, or 0 before any calibration.
func (m *Mapper) TargetDim() int { return m.targetDim }

// Vertices returns a copy of the vertex table.
func (m *Mapper) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices[:])
	return out
}

// Calibrate assigns the joint-space target of one vertex and recomputes
// readiness. The target dimension is pinned by the first assignment.
func (m *Mapper) Calibrate(vertex int, target []float64) error {
	if vertex < 0 || vertex >= len(m.vertices) {
		return fmt.Errorf("vertex index %d out of range [0,%d)", vertex, len(m.vertices))
	}
	if len(target) == 0 {
		return errors.New("target vector is empty")
	}
	if m.targetDim != 0 && len(target) != m.targetDim {
		return fmt.Errorf("target has %d elements, mapper is calibrated for %d", len(target), m.targetDim)
	}

	m.vertices[vertex].Target = append([]float64(nil), target...)
	if m.targetDim == 0 {
		m.targetDim = len(target)
	}
	m.revalidate()
	return nil
}

// SetTargets calibrates all eight vertices at once, in vertex order.
func (m *Mapper) SetTargets(targets [][]float64) error {
	if len(targets) != len(m.vertices) {
		return fmt.Errorf("expected %d targets, got %d", len(m.vertices), len(targets))
	}
	for i, t := range targets {
		if err := m.Calibrate(i, t); err != nil {
			return fmt.Errorf("vertex %d: %w", i, err)
		}
	}
	return nil
}

// revalidate recomputes canInterpolate by walking every vertex referenced by
// every simplex. Never cached across calibration writes.
func (m *Mapper) revalidate() {
	for _, s := range m.simplices {
		for _, vi := range s {
			if m.vertices[vi].Target == nil {
				m.canInterpolate = false
				return
			}
		}
	}
	m.canInterpolate = true
}

// barycentric solves the 4x4 homogeneous system whose columns are the
// simplex vertices, giving the weights that express p as their convex
// combination:
//
//	x = l0*a.X + l1*b.X + l2*c.X + l3*d.X
//	y = l0*a.Y + l1*b.Y + l2*c.Y + l3*d.Y
//	z = l0*a.Z + l1*b.Z + l2*c.Z + l3*d.Z
//	1 = l0 + l1 + l2 + l3
func (m *Mapper) barycentric(si int, p Point) ([4]float64, error) {
	s := m.simplices[si]

	a := make([]float64, 0, 16)
	for row := 0; row < 3; row++ {
		for _, vi := range s {
			switch row {
			case 0:
				a = append(a, m.vertices[vi].Pos.X)
			case 1:
				a = append(a, m.vertices[vi].Pos.Y)
			case 2:
				a = append(a, m.vertices[vi].Pos.Z)
			}
		}
	}
	a = append(a, 1, 1, 1, 1)

	A := mat.NewDense(4, 4, a)
	rhs := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})

	var lambda mat.VecDense
	if err := lambda.SolveVec(A, rhs); err != nil {
		return [4]float64{}, &SingularError{Simplex: si}
	}

	var out [4]float64
	for i := range out {
		out[i] = lambda.AtVec(i)
	}
	return out, nil
}

// HitTest reports whether p lies inside simplex si: every barycentric weight
// must be within [0,1].
func (m *Mapper) HitTest(si int, p Point) (bool, error) {
	if si < 0 || si >= len(m.simplices) {
		return false, fmt.Errorf("simplex index %d out of range [0,%d)", si, len(m.simplices))
	}
	lambda, err := m.barycentric(si, p)
	if err != nil {
		return false, err
	}
	for _, l := range lambda {
		if l < -insideEps || l > 1+insideEps {
			return false, nil
		}
	}
	return true, nil
}

// Contains reports whether p lies inside any simplex of the decomposition.
func (m *Mapper) Contains(p Point) (bool, error) {
	for si := range m.simplices {
		hit, err := m.HitTest(si, p)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

// Interpolate maps p to a joint-space vector. Simplices are scanned in
// construction order and the first containing simplex wins; the result is
// the barycentric blend of its four vertex targets.
func (m *Mapper) Interpolate(p Point) ([]float64, error) {
	if !m.canInterpolate {
		return nil, ErrNotConfigured
	}

	for si, s := range m.simplices {
		lambda, err := m.barycentric(si, p)
		if err != nil {
			return nil, err
		}
		inside := true
		for _, l := range lambda {
			if l < -insideEps || l > 1+insideEps {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}

		out := make([]float64, m.targetDim)
		for k, vi := range s {
			for j, v := range m.vertices[vi].Target {
				out[j] += lambda[k] * v
			}
		}
		return out, nil
	}

	return nil, ErrOutOfRange
}
