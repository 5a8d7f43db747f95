package catalog

import (
	"testing"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
)

func TestCatalog(t *testing.T) {
	c := New([]*domain.Service{
		{Name: "b", Port: 2},
		{Name: "a", Port: 1},
		nil,
		{Name: "b", Port: 3}, // duplicate, ignored
	})

	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("Names() = %v, want configuration order [b a]", names)
	}

	svc, ok := c.Get("b")
	if !ok || svc.Port != 2 {
		t.Errorf("Get(b) = %+v, %v; want first definition with port 2", svc, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) returned ok")
	}

	services := c.Services()
	services[0] = nil
	if c.Services()[0] == nil {
		t.Error("Services() exposed the internal slice")
	}

	if c.LoadedAt().IsZero() {
		t.Error("LoadedAt() is zero")
	}
}
