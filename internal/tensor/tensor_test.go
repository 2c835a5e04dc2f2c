package tensor

import (
	"math"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{8, 16, 5, 5}, 3200},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3, 4}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0, 4}).Validate(); err == nil {
		t.Error("zero dimension should be rejected")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension should be rejected")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("stride[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{8, 32, 3, 3}).String(); got != "(8, 32, 3, 3)" {
		t.Errorf("String() = %q", got)
	}
}

// Tensor Tests

func TestNew(t *testing.T) {
	x, err := New(Shape{2, 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, x.Shape(), "New shape")
	if x.NumElements() != 6 || x.Rank() != 2 {
		t.Errorf("unexpected size/rank: %d/%d", x.NumElements(), x.Rank())
	}
	for i, v := range x.Data() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}

	if _, err := New(Shape{3, 0}); err == nil {
		t.Error("New should reject zero dimension")
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(src, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	src[0] = 100
	if x.At(0, 0) != 1 {
		t.Error("FromSlice must copy its input")
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %v, want 6", x.At(1, 2))
	}

	if _, err := FromSlice(src, Shape{4, 2}); err == nil {
		t.Error("FromSlice should reject element count mismatch")
	}
}

func TestSetAt(t *testing.T) {
	x := Zeros(Shape{2, 2, 2})
	x.Set(7.5, 1, 0, 1)
	if x.At(1, 0, 1) != 7.5 {
		t.Errorf("At after Set = %v", x.At(1, 0, 1))
	}
	if x.Data()[5] != 7.5 {
		t.Errorf("row-major offset wrong: %v", x.Data())
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	x := Zeros(Shape{2, 2})
	_ = x.At(2, 0)
}

func TestCloneIsDeep(t *testing.T) {
	x := Arange(Shape{3})
	y := x.Clone()
	y.Data()[0] = 42

	if x.At(0) != 0 {
		t.Error("Clone must not share storage")
	}
	if !x.Shape().Equal(y.Shape()) {
		t.Error("Clone must keep shape")
	}
}

func TestEqual(t *testing.T) {
	a := Arange(Shape{2, 2})
	b := Arange(Shape{2, 2})
	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}

	c := Arange(Shape{4})
	if a.Equal(c) {
		t.Error("different shapes should not be equal")
	}

	b.Set(math.Nextafter(3, 4), 1, 1)
	if a.Equal(b) {
		t.Error("a one-ulp difference must be detected")
	}

	n1 := Full(Shape{1}, math.NaN())
	n2 := n1.Clone()
	if !n1.Equal(n2) {
		t.Error("same NaN bits should compare equal")
	}
}
