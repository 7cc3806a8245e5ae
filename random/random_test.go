package random

import (
	"sync"
	"testing"
)

func TestSeededRepeatable(t *testing.T) {
	a, b := Seeded(7), Seeded(7)
	for i := 0; i < 10; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}

func TestSeededConcurrentUse(t *testing.T) {
	src := Seeded(42)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if v := src.Float64(); v < 0 || v >= 1 {
					t.Errorf("out of range: %v", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
