package store

import (
	"sync"
	"testing"

	"github.com/voxtools/orthovox/pkg/mesh"
	"github.com/voxtools/orthovox/pkg/placer"
	"github.com/voxtools/orthovox/pkg/view"
)

func TestUnknownModelIsEmpty(t *testing.T) {
	s := New()
	if got := s.Positions("nope"); len(got) != 0 {
		t.Errorf("Positions of unknown model = %v, want empty", got)
	}
	if got := s.Indices("nope"); len(got) != 0 {
		t.Errorf("Indices of unknown model = %v, want empty", got)
	}
	if !s.Buffer("nope").IsEmpty() {
		t.Error("Buffer of unknown model should be empty")
	}
}

func TestWholeBufferReplace(t *testing.T) {
	s := New()
	s.SetPositions("m", []float32{1, 2, 3})
	s.SetIndices("m", []uint32{0})

	pos := s.Positions("m")
	if len(pos) != 3 || pos[0] != 1 {
		t.Fatalf("Positions = %v", pos)
	}

	// Returned slices are copies; mutating them must not leak back.
	pos[0] = 99
	if s.Positions("m")[0] != 1 {
		t.Error("Positions must return a copy, not store internals")
	}

	// Replace wholesale.
	s.SetPositions("m", []float32{7, 8, 9, 10, 11, 12})
	if got := s.Positions("m"); len(got) != 6 || got[0] != 7 {
		t.Errorf("after replace, Positions = %v", got)
	}
}

func TestAppendGrowth(t *testing.T) {
	s := New()
	const id = "m"

	for n := 1; n <= 5; n++ {
		offset := mesh.NextIndex(s.Indices(id))
		positions, indices := placer.Cube(view.Cell{X: n}, 1, offset)
		s.Append(id, positions, indices)

		b := s.Buffer(id)
		if b.VertexCount() != n*8 {
			t.Fatalf("after %d placements, vertices = %d, want %d", n, b.VertexCount(), n*8)
		}
		if len(b.Indices) != n*36 {
			t.Fatalf("after %d placements, indices = %d, want %d", n, len(b.Indices), n*36)
		}
		if errs := mesh.Validate(b); len(errs) != 0 {
			t.Fatalf("after %d placements, invariants violated: %v", n, errs)
		}
		if got := mesh.NextIndex(b.Indices); got != uint32(b.VertexCount()) {
			t.Fatalf("max(index)+1 = %d, vertex count = %d, must match", got, b.VertexCount())
		}
	}
}

func TestSequentialOffsets(t *testing.T) {
	s := New()
	const id = "m"

	// First cube on an empty buffer, second on a non-empty one.
	p1, i1 := placer.Cube(view.Cell{}, 1, mesh.NextIndex(s.Indices(id)))
	s.Append(id, p1, i1)
	p2, i2 := placer.Cube(view.Cell{X: 1}, 1, mesh.NextIndex(s.Indices(id)))
	s.Append(id, p2, i2)

	for _, i := range i1 {
		if i > 7 {
			t.Fatalf("first placement index %d outside {0..7}", i)
		}
	}
	for _, i := range i2 {
		if i < 8 || i > 15 {
			t.Fatalf("second placement index %d outside {8..15}", i)
		}
	}
}

// TestConcurrentReadersSeeValidBuffers drives appends from one
// goroutine while five readers snapshot the buffer, mirroring the five
// passive view surfaces re-rendering during edits. Every snapshot must
// satisfy the index validity invariant.
func TestConcurrentReadersSeeValidBuffers(t *testing.T) {
	s := New()
	const id = "m"
	const placements = 50

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				b := s.Buffer(id)
				if errs := mesh.Validate(b); len(errs) != 0 {
					t.Errorf("reader observed invalid buffer: %v", errs)
					return
				}
			}
		}()
	}

	for n := 0; n < placements; n++ {
		offset := mesh.NextIndex(s.Indices(id))
		positions, indices := placer.Cube(view.Cell{X: n}, 1, offset)
		s.Append(id, positions, indices)
	}
	close(stop)
	wg.Wait()

	if got := s.Buffer(id).VertexCount(); got != placements*8 {
		t.Errorf("final vertex count = %d, want %d", got, placements*8)
	}
}

func TestModels(t *testing.T) {
	s := New()
	s.SetPositions("a", []float32{0, 0, 0})
	s.SetPositions("b", []float32{0, 0, 0})
	if got := len(s.Models()); got != 2 {
		t.Errorf("Models count = %d, want 2", got)
	}
}
