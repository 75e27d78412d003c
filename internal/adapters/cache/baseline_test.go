package cache

import "testing"

func TestBaselinesEvictOldest(t *testing.T) {
	b, err := NewBaselines(2)
	if err != nil {
		t.Fatalf("NewBaselines: %v", err)
	}

	b.Add("cot", 933.3)
	b.Add("cat", 933.3)
	b.Add("rose", 1000)

	if _, ok := b.Get("cot"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if got, ok := b.Get("rose"); !ok || got != 1000 {
		t.Errorf("Get(rose) = %v, %v, want 1000, true", got, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestNewBaselinesDefaultSize(t *testing.T) {
	b, err := NewBaselines(0)
	if err != nil {
		t.Fatalf("NewBaselines(0): %v", err)
	}
	b.Add("a", 600)
	if _, ok := b.Get("a"); !ok {
		t.Error("expected entry to be cached")
	}
}
