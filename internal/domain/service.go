package domain

import (
	"net"
	"strconv"
	"strings"
)

// DefaultProbeHost is where services are expected to listen when the
// service file does not say otherwise.
const DefaultProbeHost = "127.0.0.1"

// Service describes one monitored endpoint.
//
// It is built once at startup from static configuration and never mutated
// afterwards. Name is the key used in every status and duration map.
type Service struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Name is the unique identifier of the service.
	// Example: jellyfin
	Name string `json:"name"`

	// Host and Port form the TCP endpoint that gets probed.
	Host string `json:"host"`
	Port int    `json:"port"`

	// ─────────────────────────────
	// Presentation metadata
	// (not used by the monitor itself)
	// ─────────────────────────────

	// Emoji is displayed on the dashboard tile.
	Emoji string `json:"emoji,omitempty"`

	// Domain is the LAN hostname users open in a browser.
	// Example: jellyfin.lan
	Domain string `json:"domain,omitempty"`
}

// Addr returns the host:port pair to dial.
func (s *Service) Addr() string {
	host := s.Host
	if host == "" {
		host = DefaultProbeHost
	}
	return net.JoinHostPort(host, strconv.Itoa(s.Port))
}

// SearchKey returns the dotted name used for fuzzy matching.
// The domain wins when present so "jelly.lan" style queries work.
func (s *Service) SearchKey() string {
	if s.Domain != "" {
		return strings.ToLower(s.Domain)
	}
	return strings.ToLower(s.Name)
}

// URL returns the address the dashboard links to.
func (s *Service) URL() string {
	if s.Domain != "" {
		return "http://" + s.Domain
	}
	return "http://" + s.Addr()
}

// Names returns the names of the given services in order.
func Names(services []*Service) []string {
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}
	return names
}
