package loop

// queue is an unbounded FIFO backed by a ring buffer.
type queue[E any] struct {
	s    []E
	head int
	size int
}

func (q *queue[E]) Empty() bool {
	return q.size == 0
}

func (q *queue[E]) Push(v E) {
	if q.size == len(q.s) {
		q.grow()
	}
	q.s[(q.head+q.size)%len(q.s)] = v
	q.size++
}

func (q *queue[E]) Pop() (v E) {
	var zero E
	v, q.s[q.head] = q.s[q.head], zero
	q.head = (q.head + 1) % len(q.s)
	q.size--
	return v
}

func (q *queue[E]) grow() {
	n := len(q.s) * 2
	if n == 0 {
		n = 8
	}
	s := make([]E, n)
	for i := range q.size {
		s[i] = q.s[(q.head+i)%len(q.s)]
	}
	q.s, q.head = s, 0
}
