package script

import (
	"strings"
	"testing"

	"github.com/voxtools/orthovox/pkg/view"
)

func eval(t *testing.T, source string) *Result {
	t.Helper()
	res, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return res
}

func TestEvaluateEmptySource(t *testing.T) {
	res := eval(t, "")
	if len(res.Placements) != 0 {
		t.Errorf("empty source placed %d cells, want 0", len(res.Placements))
	}
}

func TestPlaceSingleCell(t *testing.T) {
	res := eval(t, "(place 1 2 3)")
	want := []view.Cell{{X: 1, Y: 2, Z: 3}}
	if len(res.Placements) != 1 || res.Placements[0] != want[0] {
		t.Errorf("placements = %v, want %v", res.Placements, want)
	}
}

func TestPlaceNegativeCoordinates(t *testing.T) {
	res := eval(t, "(place -2 0 -5)")
	if res.Placements[0] != (view.Cell{X: -2, Y: 0, Z: -5}) {
		t.Errorf("placements = %v", res.Placements)
	}
}

func TestPlacementsKeepScriptOrder(t *testing.T) {
	res := eval(t, "(place 0 0 0)\n(place 1 0 0)\n(place 2 0 0)")
	for i, c := range res.Placements {
		if c.X != i {
			t.Fatalf("placement %d = %+v, out of order", i, c)
		}
	}
}

func TestFillRegion(t *testing.T) {
	res := eval(t, "(fill 0 0 0 1 1 1)")
	if len(res.Placements) != 8 {
		t.Fatalf("fill placed %d cells, want 8", len(res.Placements))
	}
	// x varies fastest.
	if res.Placements[0] != (view.Cell{}) || res.Placements[1] != (view.Cell{X: 1}) {
		t.Errorf("fill order wrong: %v", res.Placements[:2])
	}
}

func TestFillSwappedCorners(t *testing.T) {
	a := eval(t, "(fill 0 0 0 2 0 0)")
	b := eval(t, "(fill 2 0 0 0 0 0)")
	if len(a.Placements) != 3 || len(b.Placements) != 3 {
		t.Fatalf("fill lengths = %d/%d, want 3/3", len(a.Placements), len(b.Placements))
	}
}

func TestFillRegionLimit(t *testing.T) {
	_, evalErrs, err := NewEngine().Evaluate("(fill 0 0 0 999 999 999)")
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("oversized fill should produce an eval error")
	}
	if !strings.Contains(evalErrs[0].Message, "exceeds limit") {
		t.Errorf("error = %q, want region limit message", evalErrs[0].Message)
	}
}

func TestFillRegionLimitSurvivesOverflow(t *testing.T) {
	// 2^21 x 2^21 x 2^22 cells: the naive product wraps a 64-bit int to
	// zero, which would slip under the cap and loop for a very long
	// time. The limit must still fire as an eval error.
	_, evalErrs, err := NewEngine().Evaluate("(fill 0 0 0 2097151 2097151 4194303)")
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("wrapping fill region should produce an eval error")
	}
	if !strings.Contains(evalErrs[0].Message, "exceeds limit") {
		t.Errorf("error = %q, want region limit message", evalErrs[0].Message)
	}
}

func TestScriptWithComments(t *testing.T) {
	source := `; build a short wall
(place 0 0 0)
(place 1 0 0) ; second block
(fill 2 0 0 3 0 0)`
	res := eval(t, source)
	if len(res.Placements) != 4 {
		t.Errorf("placed %d cells, want 4", len(res.Placements))
	}
}

func TestPlaceArgumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"too few args", "(place 1 2)"},
		{"non-numeric", `(place "a" 2 3)`},
		{"fractional", "(place 1.5 2 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("fatal error: %v", err)
			}
			if len(evalErrs) == 0 {
				t.Error("expected an eval error")
			}
		})
	}
}

func TestSyntaxErrorReported(t *testing.T) {
	_, evalErrs, err := NewEngine().Evaluate("(place 1 2 3")
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("unmatched paren should produce an eval error")
	}
	if evalErrs[0].Message == "" {
		t.Error("eval error should carry a message")
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comment", "; hi\n(place 1 2 3)", "// hi\n(place 1 2 3)"},
		{"kebab", "(my-func 1)", "(my_func 1)"},
		{"minus untouched", "(place (- 0 2) 0 0)", "(place (- 0 2) 0 0)"},
		{"string untouched", `(print "a-b ; c")`, `(print "a-b ; c")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWholeFloatAccepted(t *testing.T) {
	res := eval(t, "(place 1.0 2.0 3.0)")
	if res.Placements[0] != (view.Cell{X: 1, Y: 2, Z: 3}) {
		t.Errorf("placements = %v", res.Placements)
	}
}
