package grid

import "sync"

// Synchronized wraps a Grid with a mutex held during every method call, including
// the bounds queries, which may update the cache of the underlying grid.
//
// Operations composed of multiple calls (e.g. read a stack, then add on top of it)
// should be done within Do.
type Synchronized[P Piece] struct {
	mu   sync.Mutex
	grid Grid[P]
}

// Assert Synchronized is a Grid.
var _ Grid[Piece] = (*Synchronized[Piece])(nil)

// NewSynchronized returns g protected by a mutex. g must not be used directly afterwards.
func NewSynchronized[P Piece](g Grid[P]) *Synchronized[P] {
	return &Synchronized[P]{grid: g}
}

// Do calls fn with the underlying grid while holding the lock.
func (s *Synchronized[P]) Do(fn func(g Grid[P])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// Height implements Grid.
func (s *Synchronized[P]) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Height()
}

// Width implements Grid.
func (s *Synchronized[P]) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Width()
}

// Min implements Grid.
func (s *Synchronized[P]) Min() Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Min()
}

// Max implements Grid.
func (s *Synchronized[P]) Max() Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Max()
}

// Add implements Grid.
func (s *Synchronized[P]) Add(coord Coord, piece P) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Add(coord, piece)
}

// Remove implements Grid.
func (s *Synchronized[P]) Remove(coord Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Remove(coord)
}

// At implements Grid.
func (s *Synchronized[P]) At(coord Coord) (P, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.At(coord)
}

// Occupied implements Grid.
func (s *Synchronized[P]) Occupied(coord Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Occupied(coord)
}

// NumPieces implements Grid.
func (s *Synchronized[P]) NumPieces() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.NumPieces()
}

// Adjacents doesn't depend on the grid contents, but it is delegated under the lock
// anyway, since the underlying implementation is unknown.
func (s *Synchronized[P]) Adjacents(coord Coord) []Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Adjacents(coord)
}
