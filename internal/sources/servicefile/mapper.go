package servicefile

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
)

// Mapper converts parsed entries to domain services.
type Mapper struct {
	defaultHost string
}

// NewMapper creates a mapper. defaultHost is used when neither the entry
// nor the file sets a host.
func NewMapper(defaultHost string) *Mapper {
	if defaultHost == "" {
		defaultHost = domain.DefaultProbeHost
	}
	return &Mapper{defaultHost: defaultHost}
}

// MapServices validates the file and returns services in file order.
// Names must be unique and non-empty, ports must be in 1..65535.
func (m *Mapper) MapServices(file *File) ([]*domain.Service, error) {
	if file == nil || len(file.Services) == 0 {
		return nil, fmt.Errorf("no services defined")
	}

	fileHost := strings.TrimSpace(file.Host)
	seen := make(map[string]bool, len(file.Services))
	services := make([]*domain.Service, 0, len(file.Services))

	for i, entry := range file.Services {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("service #%d: name is required", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("service %q: duplicate name", name)
		}
		seen[name] = true

		if entry.Port < 1 || entry.Port > 65535 {
			return nil, fmt.Errorf("service %q: port %d out of range 1-65535", name, entry.Port)
		}

		host := strings.TrimSpace(entry.Host)
		if host == "" {
			host = fileHost
		}
		if host == "" {
			host = m.defaultHost
		}

		services = append(services, &domain.Service{
			Name:   name,
			Host:   host,
			Port:   entry.Port,
			Emoji:  entry.Emoji,
			Domain: strings.TrimSpace(entry.Domain),
		})
	}

	return services, nil
}

// LoadServices is the startup entry point: it reads path when set and
// falls back to the built-in list otherwise.
func LoadServices(path, defaultHost string) ([]*domain.Service, error) {
	mapper := NewMapper(defaultHost)
	if path == "" {
		return mapper.MapServices(Defaults())
	}

	file, err := NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	services, err := mapper.MapServices(file)
	if err != nil {
		return nil, fmt.Errorf("invalid services file %s: %w", path, err)
	}
	return services, nil
}
