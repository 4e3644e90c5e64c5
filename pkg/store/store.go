// Package store holds the shared model buffers for an editing session.
// Each model maps an entity id to one mesh buffer. The six view
// surfaces read concurrently; all mutation funnels through Append so a
// reader never observes indices referencing not-yet-appended vertices.
package store

import (
	"sync"

	"github.com/voxtools/orthovox/pkg/mesh"
)

// ModelStore maps entity ids to mesh buffers. The zero value is not
// usable; call New.
type ModelStore struct {
	mu     sync.RWMutex
	models map[string]*mesh.Buffer
	db     *modelDB // nil until Open
}

// New creates an empty ModelStore.
func New() *ModelStore {
	return &ModelStore{
		models: make(map[string]*mesh.Buffer),
	}
}

// buffer returns the model's buffer, creating it on first use.
// Callers must hold s.mu.
func (s *ModelStore) buffer(id string) *mesh.Buffer {
	b, ok := s.models[id]
	if !ok {
		b = &mesh.Buffer{}
		s.models[id] = b
	}
	return b
}

// Positions returns a copy of the model's position array. The copy
// keeps read-modify-write callers from aliasing store internals.
func (s *ModelStore) Positions(id string) []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.models[id]
	if !ok {
		return nil
	}
	out := make([]float32, len(b.Positions))
	copy(out, b.Positions)
	return out
}

// SetPositions replaces the model's position array wholesale.
func (s *ModelStore) SetPositions(id string, positions []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer(id).Positions = positions
}

// Indices returns a copy of the model's index array.
func (s *ModelStore) Indices(id string) []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.models[id]
	if !ok {
		return nil
	}
	out := make([]uint32, len(b.Indices))
	copy(out, b.Indices)
	return out
}

// SetIndices replaces the model's index array wholesale.
func (s *ModelStore) SetIndices(id string, indices []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer(id).Indices = indices
}

// Append adds new geometry to a model under a single lock, so both
// arrays grow as one atomic unit. All placement paths (pointer clicks,
// scripts, examples) go through here rather than the Set methods.
func (s *ModelStore) Append(id string, positions []float32, indices []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer(id).Append(positions, indices)
}

// Buffer returns a snapshot clone of the model's buffer, or an empty
// buffer for an unknown id.
func (s *ModelStore) Buffer(id string) *mesh.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.models[id]
	if !ok {
		return &mesh.Buffer{}
	}
	return b.Clone()
}

// Models returns the ids of all models in the store.
func (s *ModelStore) Models() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.models))
	for id := range s.models {
		ids = append(ids, id)
	}
	return ids
}
