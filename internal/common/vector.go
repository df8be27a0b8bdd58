package common

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector represents a point or displacement in n-dimensional space.
// The generator only uses 2D vectors: index 0 is x, index 1 is y.
type Vector []float64

// NewVector creates a new zero vector of a given dimension.
func NewVector(dimension int) Vector {
	return make(Vector, dimension)
}

// NewVector2 creates a 2D vector from its coordinates.
func NewVector2(x, y float64) Vector {
	return Vector{x, y}
}

// NewRandomVector creates a vector with coordinates drawn uniformly from rng within bounds.
// bounds should have dimension * 2 elements: [minX, maxX, minY, maxY, ...]
func NewRandomVector(rng *rand.Rand, dimension int, bounds []float64) (Vector, error) {
	if rng == nil {
		return nil, fmt.Errorf("random vector: nil rand source")
	}
	if len(bounds) != dimension*2 {
		return nil, fmt.Errorf("bounds length must be dimension * 2, got %d, expected %d", len(bounds), dimension*2)
	}
	v := NewVector(dimension)
	for i := 0; i < dimension; i++ {
		min := bounds[i*2]
		max := bounds[i*2+1]
		v[i] = min + rng.Float64()*(max-min)
	}
	return v, nil
}

// SquareBounds returns the bounds slice of a square world [0, size] on both axes.
func SquareBounds(size float64) []float64 {
	return []float64{0, size, 0, size}
}

// X returns the first coordinate.
func (v Vector) X() float64 {
	return v[0]
}

// Y returns the second coordinate.
func (v Vector) Y() float64 {
	return v[1]
}

// Dimension returns the dimension of the vector.
func (v Vector) Dimension() int {
	return len(v)
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vector) Distance(other Vector) (float64, error) {
	if v.Dimension() != other.Dimension() {
		return 0, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	return floats.Distance(v, other, 2), nil
}

// Add adds another vector to this vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if v.Dimension() != other.Dimension() {
		return nil, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	result := NewVector(v.Dimension())
	floats.AddTo(result, v, other)
	return result, nil
}

// Subtract subtracts another vector from this vector.
func (v Vector) Subtract(other Vector) (Vector, error) {
	if v.Dimension() != other.Dimension() {
		return nil, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	result := NewVector(v.Dimension())
	floats.SubTo(result, v, other)
	return result, nil
}

// MultiplyByScalar multiplies the vector by a scalar value.
func (v Vector) MultiplyByScalar(scalar float64) Vector {
	result := v.Clone()
	floats.Scale(scalar, result)
	return result
}

// Within reports whether every coordinate lies inside bounds, edges included.
func (v Vector) Within(bounds []float64) bool {
	if len(bounds) != v.Dimension()*2 {
		return false
	}
	for i, val := range v {
		if val < bounds[i*2] || val > bounds[i*2+1] {
			return false
		}
	}
	return true
}

// Round returns a copy with every coordinate rounded to the nearest integer.
func (v Vector) Round() Vector {
	result := NewVector(v.Dimension())
	for i, val := range v {
		result[i] = math.Round(val)
	}
	return result
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	strs := make([]string, len(v))
	for i, val := range v {
		strs[i] = fmt.Sprintf("%.3f", val)
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
}

// Clone creates a deep copy of the vector.
func (v Vector) Clone() Vector {
	clone := make(Vector, len(v))
	copy(clone, v)
	return clone
}

// NormSq calculates the squared Euclidean norm of the vector.
func (v Vector) NormSq() float64 {
	return floats.Dot(v, v)
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.NormSq())
}
