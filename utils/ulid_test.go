package utils

import (
	"sync"
	"testing"
)

func TestGenerateULIDString(t *testing.T) {
	id := GenerateULIDString()
	if len(id) != 26 {
		t.Errorf("Expected 26-character ULID, got %d: %s", len(id), id)
	}

	if _, err := ParseULID(id); err != nil {
		t.Errorf("Generated ULID should parse back: %v", err)
	}
}

func TestGenerateULIDUniqueness(t *testing.T) {
	const n = 100
	seen := make(map[string]struct{}, n)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GenerateULIDString()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("Expected %d unique ULIDs, got %d", n, len(seen))
	}
}

func TestParseULIDInvalid(t *testing.T) {
	if _, err := ParseULID("not-a-ulid"); err == nil {
		t.Error("Expected error for invalid ULID")
	}
}
