package nativelist

// ListMetrics contains statistical information about a list buffer.
type ListMetrics struct {
	Count       int     // Live elements
	Capacity    int     // Allocated slots
	ElementSize int     // Bytes per slot
	SizeInUse   int     // Bytes holding live elements
	Allocated   int     // Bytes allocated for all slots
	Utilization float64 // Ratio of live to allocated slots (0.0-1.0)
}

func newMetrics(count int, b *Buffer) ListMetrics {
	m := ListMetrics{
		Count:       count,
		Capacity:    b.capacity,
		ElementSize: int(b.elemSize),
		SizeInUse:   count * int(b.elemSize),
		Allocated:   b.capacity * int(b.elemSize),
	}
	if b.capacity > 0 {
		m.Utilization = float64(count) / float64(b.capacity)
	}
	return m
}

// SizeInUse returns the number of bytes occupied by live elements.
func (l *List[T]) SizeInUse() int {
	return l.count * int(sizeOf[T]())
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if l.buf.capacity == 0 {
		return 0
	}
	return float64(l.count) / float64(l.buf.capacity)
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() ListMetrics {
	b := l.buf
	// a zero List records its element size only when it first grows
	b.elemSize = sizeOf[T]()
	return newMetrics(l.count, &b)
}

// Metrics returns a snapshot of list statistics.
func (l *ErasedList) Metrics() ListMetrics {
	return newMetrics(l.count, &l.buf)
}

// Metrics thread-safely returns a snapshot of list statistics.
func (s *SafeList[T]) Metrics() ListMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Metrics()
}
