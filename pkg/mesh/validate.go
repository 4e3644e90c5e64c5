package mesh

import "fmt"

// ValidationSeverity indicates whether a validation finding means the
// buffer is unrenderable or merely suspicious.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // buffer violates an invariant
	SeverityWarning                           // advisory
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
}

// Validate checks the buffer invariants that every placement must
// preserve. An empty result means the buffer is valid. Validate is
// read-only and never mutates the buffer.
//
// Invariants:
//   - len(Positions) is divisible by 3 (whole vertices only)
//   - len(Indices) is divisible by 3 (whole triangles only)
//   - every index references an existing vertex
func Validate(b *Buffer) []ValidationError {
	var errs []ValidationError

	if len(b.Positions)%3 != 0 {
		errs = append(errs, ValidationError{
			Message:  fmt.Sprintf("position array length %d is not divisible by 3", len(b.Positions)),
			Severity: SeverityError,
		})
	}
	if len(b.Indices)%3 != 0 {
		errs = append(errs, ValidationError{
			Message:  fmt.Sprintf("index array length %d is not divisible by 3", len(b.Indices)),
			Severity: SeverityError,
		})
	}

	count := uint32(b.VertexCount())
	for pos, idx := range b.Indices {
		if idx >= count {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("index %d at position %d exceeds vertex count %d", idx, pos, count),
				Severity: SeverityError,
			})
		}
	}

	// A vertex count that is not a multiple of 8 means some placement
	// appended a partial cube. Renderable, but worth flagging.
	if count%8 != 0 {
		errs = append(errs, ValidationError{
			Message:  fmt.Sprintf("vertex count %d is not a whole number of cubes", count),
			Severity: SeverityWarning,
		})
	}

	return errs
}
