package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 256; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestChanceEdges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if r.Chance(0) {
			t.Fatalf("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatalf("Chance(1) returned false")
		}
	}
}
