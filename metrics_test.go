package nativelist

import (
	"testing"
)

func TestListMetrics(t *testing.T) {
	l := NewList[int64](8)
	defer l.Dispose()

	for i := 0; i < 3; i++ {
		l.Add(int64(i))
	}

	m := l.Metrics()
	if m.Count != 3 || m.Capacity != 8 {
		t.Errorf("Count/Capacity = %d/%d, want 3/8", m.Count, m.Capacity)
	}
	if m.ElementSize != 8 {
		t.Errorf("ElementSize = %d, want 8", m.ElementSize)
	}
	if m.SizeInUse != 24 || m.SizeInUse != l.SizeInUse() {
		t.Errorf("SizeInUse = %d, want 24", m.SizeInUse)
	}
	if m.Allocated != 64 {
		t.Errorf("Allocated = %d, want 64", m.Allocated)
	}
	if m.Utilization != 0.375 || l.Utilization() != 0.375 {
		t.Errorf("Utilization = %f, want 0.375", m.Utilization)
	}
}

func TestListMetricsZeroList(t *testing.T) {
	var l List[int32]

	m := l.Metrics()
	if m.ElementSize != 4 {
		t.Errorf("zero list ElementSize = %d, want 4", m.ElementSize)
	}
	if m.Capacity != 0 || m.Allocated != 0 || m.Utilization != 0 {
		t.Errorf("zero list metrics = %+v", m)
	}
	if l.Utilization() != 0 {
		t.Errorf("Utilization() = %f, want 0", l.Utilization())
	}
}

func TestSafeListMetrics(t *testing.T) {
	s := NewSafeList[uint8](4)
	defer s.Dispose()
	s.Add(1)
	s.Add(2)

	m := s.Metrics()
	if m.Count != 2 || m.SizeInUse != 2 || m.Utilization != 0.5 {
		t.Errorf("metrics = %+v", m)
	}
}
