package store

import (
	"strings"
	"sync"
	"testing"
)

func TestIDGeneratorUniqueUnderPressure(t *testing.T) {
	var g idGenerator

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next("offer_")
		if !strings.HasPrefix(id, "offer_") {
			t.Fatalf("unexpected id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIDGeneratorConcurrent(t *testing.T) {
	var g idGenerator

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.Next("u")
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
