package catalog

import (
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
)

// Catalog holds the configured services. It is built once at startup and
// is read-only afterwards, so no locking is needed.
type Catalog struct {
	services []*domain.Service          // file order
	byName   map[string]*domain.Service // Name -> Service
	loadedAt time.Time
}

// New creates a catalog from services. Later duplicates are ignored;
// the service file mapper already rejects them.
func New(services []*domain.Service) *Catalog {
	c := &Catalog{
		services: make([]*domain.Service, 0, len(services)),
		byName:   make(map[string]*domain.Service, len(services)),
		loadedAt: time.Now(),
	}
	for _, svc := range services {
		if svc == nil {
			continue
		}
		if _, dup := c.byName[svc.Name]; dup {
			continue
		}
		c.byName[svc.Name] = svc
		c.services = append(c.services, svc)
	}
	return c
}

// Get retrieves a service by name
func (c *Catalog) Get(name string) (*domain.Service, bool) {
	svc, ok := c.byName[name]
	return svc, ok
}

// Services returns all services in configuration order.
// The slice is a copy; the services themselves must not be mutated.
func (c *Catalog) Services() []*domain.Service {
	out := make([]*domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Names returns service names in configuration order.
func (c *Catalog) Names() []string {
	return domain.Names(c.services)
}

// Count returns the number of services
func (c *Catalog) Count() int {
	return len(c.services)
}

// LoadedAt returns when the catalog was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
