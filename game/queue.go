package game

import "iter"

const minQueueCapacity = 8

// Queue is the snake body: a FIFO of positions backed by a ring buffer.
// The front is the oldest segment (the tail of the snake), the back is the
// newest segment (the head).
type Queue struct {
	buf   []Position
	front int
	n     int
}

// NewQueue returns an empty queue with room for capacity segments before it
// has to grow.
func NewQueue(capacity int) *Queue {
	if capacity < minQueueCapacity {
		capacity = minQueueCapacity
	}
	return &Queue{buf: make([]Position, capacity)}
}

// Len returns the number of segments.
func (q *Queue) Len() int { return q.n }

// Enqueue appends p at the back (head end).
func (q *Queue) Enqueue(p Position) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.front+q.n)%len(q.buf)] = p
	q.n++
}

// Dequeue removes and returns the front (tail end) segment.
func (q *Queue) Dequeue() (Position, error) {
	if q.n == 0 {
		return Position{}, ErrEmptyQueue
	}
	p := q.buf[q.front]
	q.front = (q.front + 1) % len(q.buf)
	q.n--
	return p, nil
}

// PeekFront returns the tail segment without removing it.
func (q *Queue) PeekFront() (Position, error) {
	if q.n == 0 {
		return Position{}, ErrEmptyQueue
	}
	return q.buf[q.front], nil
}

// PeekBack returns the head segment without removing it.
func (q *Queue) PeekBack() (Position, error) {
	if q.n == 0 {
		return Position{}, ErrEmptyQueue
	}
	return q.buf[(q.front+q.n-1)%len(q.buf)], nil
}

// All iterates the segments front to back.
func (q *Queue) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i := 0; i < q.n; i++ {
			if !yield(q.buf[(q.front+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// Contains reports whether any segment sits on p.
func (q *Queue) Contains(p Position) bool {
	for seg := range q.All() {
		if seg == p {
			return true
		}
	}
	return false
}

// Slice copies the segments into a new slice, front first.
func (q *Queue) Slice() []Position {
	out := make([]Position, 0, q.n)
	for seg := range q.All() {
		out = append(out, seg)
	}
	return out
}

// grow doubles the buffer and unwraps the ring so front lands at index 0.
func (q *Queue) grow() {
	buf := make([]Position, len(q.buf)*2)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.front+i)%len(q.buf)]
	}
	q.buf = buf
	q.front = 0
}
