package util

import (
	"testing"
)

func TestNewIDGeneratesValidUUIDs(t *testing.T) {
	gen := NewIDGenerator()

	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if !IsValidID(id) {
			t.Fatalf("generated invalid UUID: %s", id)
		}
		if id[14] != '7' {
			t.Fatalf("expected version 7 UUID, got %s", id)
		}
	}
}

func TestNewIDUniqueness(t *testing.T) {
	gen := NewIDGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 10000; i++ {
		id := gen.NewID()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewIDMonotonicOrdering(t *testing.T) {
	gen := NewIDGenerator()

	prev := gen.NewID()
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if id <= prev {
			t.Fatalf("IDs not monotonically increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestNewIDConcurrency(t *testing.T) {
	gen := NewIDGenerator()

	const goroutines = 10
	const perGoroutine = 100

	results := make(chan string, goroutines*perGoroutine)
	for g := 0; g < goroutines; g++ {
		go func() {
			for i := 0; i < perGoroutine; i++ {
				results <- gen.NewID()
			}
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < goroutines*perGoroutine; i++ {
		id := <-results
		if seen[id] {
			t.Fatalf("duplicate ID under concurrency: %s", id)
		}
		seen[id] = true
	}
}

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(id)
	if err != nil {
		t.Fatalf("ParseID(%q): %v", id, err)
	}
	if parsed != id {
		t.Errorf("ParseID changed the ID: %q -> %q", id, parsed)
	}

	if _, err := ParseID("not-a-uuid"); err == nil {
		t.Error("expected error for malformed ID")
	}
}

func TestDeterministicID(t *testing.T) {
	a := DeterministicID(42)
	b := DeterministicID(42)
	c := DeterministicID(43)

	if a != b {
		t.Errorf("same seed produced different IDs: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different seeds produced the same ID")
	}
	if !IsValidID(a) {
		t.Errorf("deterministic ID is not a valid UUID: %s", a)
	}
}
