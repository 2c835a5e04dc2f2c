package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones(Shape{2, 3})
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from N(0, 1).
// Uses the Box-Muller transform on rng, so equal seeds give equal tensors.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.Randn(Shape{100, 100}, rng)
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	t := Zeros(shape)
	data := t.data
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // (0, 1], keeps Log finite
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = r * math.Cos(2.0*math.Pi*u2)
		if i+1 < len(data) {
			data[i+1] = r * math.Sin(2.0*math.Pi*u2)
		}
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
//
// Example:
//
//	t := tensor.Rand(Shape{10, 10}, rand.New(rand.NewSource(1)))
func Rand(shape Shape, rng *rand.Rand) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rng.Float64()
	}
	return t
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
// Handy for tests where every element must be distinguishable.
func Arange(shape Shape) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = float64(i)
	}
	return t
}
