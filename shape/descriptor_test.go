package shape_test

import (
	"testing"
	"time"

	"shape-mapper/container"
	"shape-mapper/shape"
)

func TestOf(t *testing.T) {
	labeled, err := container.NewLabeled([]float64{1, 2}, []string{"lo", "hi"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		value    any
		expected shape.Descriptor
	}{
		{"int scalar", 42, shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindInt, Length: 1}},
		{"float scalar", 3.14, shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindFloat64, Length: 1}},
		{"string scalar", "hi", shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindString, Length: 1}},
		{"bool scalar", true, shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindBool, Length: 1}},
		{"time scalar", time.Unix(0, 0), shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindTime, Length: 1}},
		{"duration scalar", time.Second, shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindDuration, Length: 1}},

		{"float slice", []float64{1, 4, 9}, shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindFloat64, Length: 3}},
		{"int array", [2]int{1, 2}, shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindInt, Length: 2}},
		{"uniform any slice", []any{1, 2, 3}, shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindInt, Length: 3}},
		{"labeled vector", labeled, shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindFloat64, Length: 2}},
		{"empty slice", []int{}, shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindInvalid, Length: 0}},

		{"mixed any slice", []any{1, "a"}, shape.Descriptor{Shape: shape.ShapeIrregular}},
		{"nested slice", [][]int{{1}, {2}}, shape.Descriptor{Shape: shape.ShapeIrregular}},
		{"map", map[string]int{"a": 1}, shape.Descriptor{Shape: shape.ShapeIrregular}},
		{"struct", struct{ X int }{1}, shape.Descriptor{Shape: shape.ShapeIrregular}},
		{"nil", nil, shape.Descriptor{Shape: shape.ShapeIrregular}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shape.Of(tt.value); got != tt.expected {
				t.Errorf("Of(%v) = %+v, want %+v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestElements(t *testing.T) {
	elems := shape.Elements([]int{7, 8})
	if len(elems) != 2 || elems[0] != 7 || elems[1] != 8 {
		t.Errorf("Elements([]int{7,8}) = %v", elems)
	}

	if shape.Elements(42) != nil {
		t.Error("Elements of a scalar should be nil")
	}

	if shape.Elements(nil) != nil {
		t.Error("Elements of nil should be nil")
	}
}

func TestInnerLabels(t *testing.T) {
	labeled, err := container.NewLabeled([]int{1, 2}, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}

	got := shape.InnerLabels(labeled)
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("InnerLabels = %v", got)
	}

	if shape.InnerLabels([]int{1, 2}) != nil {
		t.Error("plain slices carry no inner labels")
	}
}

func TestDescriptorString(t *testing.T) {
	tests := []struct {
		desc     shape.Descriptor
		expected string
	}{
		{shape.Descriptor{Shape: shape.ShapeScalar, Kind: shape.KindInt, Length: 1}, "KindInt"},
		{shape.Descriptor{Shape: shape.ShapeVector, Kind: shape.KindFloat64, Length: 3}, "KindFloat64[3]"},
		{shape.Descriptor{Shape: shape.ShapeIrregular}, "ShapeIrregular"},
	}

	for _, tt := range tests {
		if got := tt.desc.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
