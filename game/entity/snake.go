package entity

import (
	"rock-snake/game/types"
)

type Snake struct {
	Body      []types.Point // head first
	Length    int           // target segment count
	Direction types.Direction
	LastTail  *types.Point // cell vacated by the last Move, if any
	Color     types.Color
	HeadColor types.Color

	start   types.Point
	pending *types.Direction
}

func NewSnake(start types.Point) *Snake {
	s := &Snake{
		Direction: types.Right, // Start moving right
		Color:     types.SnakeColor,
		HeadColor: types.SnakeHeadColor,
		start:     start,
	}
	s.Reset()
	return s
}

// GetHead returns the head segment.
func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Start returns the cell the snake respawns on.
func (s *Snake) Start() types.Point {
	return s.start
}

// BufferDirection queues d for the next tick. A reversal of the current
// direction is ignored; otherwise the latest call wins.
func (s *Snake) BufferDirection(d types.Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.pending = &d
	return true
}

// Pending returns the buffered direction, if any.
func (s *Snake) Pending() (types.Direction, bool) {
	if s.pending == nil {
		return 0, false
	}
	return *s.pending, true
}

// ApplyBufferedDirection makes the buffered direction current and clears
// the buffer.
func (s *Snake) ApplyBufferedDirection() {
	if s.pending != nil {
		s.Direction = *s.pending
		s.pending = nil
	}
}

// Move advances the head one cell, wrapping around the board, and trims the
// tail down to Length.
func (s *Snake) Move(grid types.Grid) {
	newHead := grid.Step(s.GetHead(), s.Direction)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.LastTail = nil
	for len(s.Body) > s.Length {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		s.LastTail = &tail
	}
}

func (s *Snake) Grow() {
	s.Length++
}

// Shrink decrements the target length, never below a single segment.
func (s *Snake) Shrink() {
	if s.Length > 1 {
		s.Length--
	}
}

// Reset puts the snake back on its start cell with a single segment.
func (s *Snake) Reset() {
	s.Body = []types.Point{s.start}
	s.Length = 1
	s.LastTail = nil
	s.pending = nil
}

// Occupies reports whether p is any segment of the snake.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// BitesItself reports whether the head overlaps a body segment.
func (s *Snake) BitesItself() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
