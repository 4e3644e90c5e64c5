package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/voxtools/orthovox/pkg/view"
)

// maxFillCells bounds a single (fill ...) region so a script cannot
// allocate an absurd amount of geometry in one call.
const maxFillCells = 100000

// recorder collects the placements a script requests, in order.
type recorder struct {
	cells []view.Cell
}

// preprocessSource converts Lisp surface syntax that zygomys does not
// accept:
//
//  1. ; line comments become // comments.
//  2. Kebab-case identifiers become underscore form (zygomys parses a
//     hyphen between identifiers as subtraction).
//
// Both transformations respect double-quoted string literals.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/8)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// alpha-alpha -> alpha_alpha, but leave minus operators alone.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// toInt extracts an integer grid coordinate from a Sexp. Floats are
// accepted when they are whole numbers.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		n := int(v.Val)
		if float64(n) != v.Val {
			return 0, fmt.Errorf("grid coordinate must be a whole number, got %v", v.Val)
		}
		return n, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// registerBuiltins installs the placement DSL into a zygomys
// environment. The builtins record cells on rec during evaluation.
func registerBuiltins(env *zygo.Zlisp, rec *recorder) {

	// -----------------------------------------------------------------
	// (place x y z) — append one cube anchored at the given cell.
	// -----------------------------------------------------------------
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("place: want 3 arguments (x y z), got %d", len(args))
		}
		var coords [3]int
		for i, a := range args {
			n, err := toInt(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place: argument %d: %w", i+1, err)
			}
			coords[i] = n
		}
		rec.cells = append(rec.cells, view.Cell{X: coords[0], Y: coords[1], Z: coords[2]})
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------
	// (fill x1 y1 z1 x2 y2 z2) — place every cell in the inclusive box
	// spanned by the two corners, x fastest, then y, then z.
	// -----------------------------------------------------------------
	env.AddFunction("fill", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 6 {
			return zygo.SexpNull, fmt.Errorf("fill: want 6 arguments (x1 y1 z1 x2 y2 z2), got %d", len(args))
		}
		var c [6]int
		for i, a := range args {
			n, err := toInt(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill: argument %d: %w", i+1, err)
			}
			c[i] = n
		}

		x1, x2 := ordered(c[0], c[3])
		y1, y2 := ordered(c[1], c[4])
		z1, z2 := ordered(c[2], c[5])

		dx, dy, dz := x2-x1+1, y2-y1+1, z2-z1+1

		// Multiply in stages so a huge region cannot wrap the product
		// past the cap. A non-positive dimension means the subtraction
		// itself overflowed.
		total := 1
		for _, dim := range [3]int{dx, dy, dz} {
			if dim <= 0 || dim > maxFillCells/total {
				return zygo.SexpNull, fmt.Errorf("fill: region of %dx%dx%d cells exceeds limit of %d",
					dx, dy, dz, maxFillCells)
			}
			total *= dim
		}

		for z := z1; z <= z2; z++ {
			for y := y1; y <= y2; y++ {
				for x := x1; x <= x2; x++ {
					rec.cells = append(rec.cells, view.Cell{X: x, Y: y, Z: z})
				}
			}
		}
		return &zygo.SexpInt{Val: int64(total)}, nil
	})
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
