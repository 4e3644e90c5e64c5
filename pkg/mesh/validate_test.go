package mesh

import (
	"strings"
	"testing"
)

func TestValidateEmptyBuffer(t *testing.T) {
	if errs := Validate(&Buffer{}); len(errs) != 0 {
		t.Errorf("empty buffer should be valid, got %v", errs)
	}
}

func TestValidateIndexOutOfRange(t *testing.T) {
	b := &Buffer{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 3},
	}
	errs := Validate(b)
	if len(errs) == 0 {
		t.Fatal("expected a finding for index 3 with 3 vertices")
	}
	found := false
	for _, e := range errs {
		if e.Severity == SeverityError && strings.Contains(e.Message, "exceeds vertex count") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an out-of-range error, got %v", errs)
	}
}

func TestValidatePartialTriangle(t *testing.T) {
	b := &Buffer{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1},
	}
	errs := Validate(b)
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "not divisible by 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a divisibility error, got %v", errs)
	}
}

func TestValidatePartialVertex(t *testing.T) {
	b := &Buffer{Positions: []float32{0, 0}}
	errs := Validate(b)
	if len(errs) == 0 {
		t.Fatal("expected a finding for a truncated position array")
	}
}

func TestValidatePartialCubeIsWarning(t *testing.T) {
	// 3 whole vertices, valid triangle: renderable, but not a whole
	// number of cubes.
	b := &Buffer{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
	for _, e := range Validate(b) {
		if e.Severity == SeverityError {
			t.Errorf("unexpected error-severity finding: %v", e)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Error("severity strings wrong")
	}
}
