package sparse

import (
	"testing"
)

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	// Empty set
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	// Insert and contain
	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5) // duplicate insert is a no-op
	if s.Size() != 1 {
		t.Errorf("size should be 1, got %d", s.Size())
	}

	// Multiple inserts
	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Size() != 4 {
		t.Errorf("size should be 4, got %d", s.Size())
	}

	// Clear
	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSparseSet_Remove(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after remove")
	}
	if s.Size() != 2 {
		t.Errorf("size should be 2 after remove, got %d", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}

	s.Remove(2) // removing an absent value is a no-op
	if s.Size() != 2 {
		t.Errorf("size should stay 2, got %d", s.Size())
	}
}

func TestSparseSet_ClearPreservesCapacity(t *testing.T) {
	s := NewSparseSet(100)
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	s.Clear()

	// Should be able to insert again without issues
	for i := uint32(0); i < 50; i++ {
		s.Insert(i)
	}
	if s.Size() != 50 {
		t.Errorf("size should be 50, got %d", s.Size())
	}
}

func TestSparseSet_CrossValidation(t *testing.T) {
	// Test that garbage values in sparse don't cause false positives
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	// After clear, contains should return false even though
	// sparse[5] and sparse[10] still have old values
	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not contain old values")
	}

	// Insert new values
	s.Insert(3)
	if !s.Contains(3) {
		t.Error("should contain 3")
	}
	if s.Contains(5) || s.Contains(10) {
		t.Error("should not contain old values")
	}
}

func TestSparseSet_ContainsOutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Error("Contains on a value beyond capacity should be false, not panic")
	}
}

func TestSparseSet_Iter(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(4)
	s.Insert(2)
	s.Insert(9)

	var got []uint32
	s.Iter(func(v uint32) { got = append(got, v) })

	want := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Iter visited %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at index %d: Iter gave %d, Values gave %d", i, got[i], want[i])
		}
	}
}

func BenchmarkSparseSet_Insert(b *testing.B) {
	s := NewSparseSet(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for j := uint32(0); j < 100; j++ {
			s.Insert(j)
		}
	}
}

func BenchmarkSparseSet_Contains(b *testing.B) {
	s := NewSparseSet(1000)
	for j := uint32(0); j < 100; j++ {
		s.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < 100; j++ {
			s.Contains(j)
		}
	}
}

func BenchmarkSparseSet_Clear(b *testing.B) {
	s := NewSparseSet(1000)
	for j := uint32(0); j < 1000; j++ {
		s.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear()
		s.Insert(0) // Re-add one element so Clear has work to "undo"
	}
}
