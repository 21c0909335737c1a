package uniqueid_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/enginekit/containers/uniqueid"
)

func TestGenerator_NewID(t *testing.T) {
	g := uniqueid.New()

	a := g.NewID()
	b := g.NewID()
	if a == "" {
		t.Fatal("NewID() = empty string")
	}
	if a == b {
		t.Errorf("NewID() returned %q twice", a)
	}
	if got := len(strings.Split(a, "-")); got != 5 {
		t.Errorf("NewID() = %q, want canonical UUID with 5 groups", a)
	}
}

func TestGenerator_WithPrefix(t *testing.T) {
	g := uniqueid.New(uniqueid.WithPrefix("node"))

	id := g.NewID()
	if !strings.HasPrefix(id, "node-") {
		t.Errorf("NewID() = %q, want node- prefix", id)
	}
}

func TestGenerator_WithShort(t *testing.T) {
	g := uniqueid.New(uniqueid.WithShort())

	id := g.NewID()
	if len(id) != 12 {
		t.Errorf("NewID() = %q (len %d), want 12 hex chars", id, len(id))
	}
	if strings.Contains(id, "-") {
		t.Errorf("NewID() = %q, want no dashes", id)
	}
}

func TestGenerator_ZeroValue(t *testing.T) {
	var g uniqueid.Generator
	if g.NewID() == "" {
		t.Error("NewID() on zero-value generator = empty string")
	}
}

func TestRegistry_Claim(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   []string
		wantErr error
	}{
		{name: "fresh id", id: "boulder-01"},
		{name: "empty id", id: "", wantErr: uniqueid.ErrEmptyID},
		{name: "taken id", id: "boulder-01", setup: []string{"boulder-01"}, wantErr: uniqueid.ErrIDTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := uniqueid.NewRegistry(nil)
			for _, id := range tt.setup {
				if err := r.Claim(id); err != nil {
					t.Fatalf("setup Claim(%q) error = %v", id, err)
				}
			}

			err := r.Claim(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Claim(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Claim(%q) unexpected error: %v", tt.id, err)
			}
			if !r.Has(tt.id) {
				t.Errorf("Has(%q) = false after Claim", tt.id)
			}
		})
	}
}

func TestRegistry_Next(t *testing.T) {
	r := uniqueid.NewRegistry(uniqueid.New(uniqueid.WithPrefix("obj")))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := r.Next()
		if seen[id] {
			t.Fatalf("Next() returned duplicate id %q", id)
		}
		seen[id] = true
		if !r.Has(id) {
			t.Fatalf("Has(%q) = false after Next", id)
		}
	}
	if got := r.Len(); got != 100 {
		t.Errorf("Len() = %d, want 100", got)
	}
}

func TestRegistry_Release(t *testing.T) {
	r := uniqueid.NewRegistry(nil)

	if err := r.Claim("x"); err != nil {
		t.Fatalf("Claim(x) error = %v", err)
	}
	r.Release("x")
	if r.Has("x") {
		t.Error("Has(x) = true after Release")
	}
	if err := r.Claim("x"); err != nil {
		t.Errorf("Claim(x) after Release error = %v", err)
	}

	// Releasing an unknown id is a no-op.
	r.Release("never-claimed")
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := uniqueid.NewRegistry(nil)
	for _, id := range []string{"c", "a", "b"} {
		if err := r.Claim(id); err != nil {
			t.Fatalf("Claim(%q) error = %v", id, err)
		}
	}

	got := r.IDs()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := uniqueid.NewRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Next()
			}
		}()
	}
	wg.Wait()

	if got := r.Len(); got != 500 {
		t.Errorf("Len() = %d, want 500", got)
	}
}
