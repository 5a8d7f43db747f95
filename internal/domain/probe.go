package domain

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/utils"
)

// DefaultProbeTimeout bounds a single connect attempt.
const DefaultProbeTimeout = 300 * time.Millisecond

// Prober answers whether a TCP endpoint accepts connections.
type Prober interface {
	Probe(ctx context.Context, service *Service) bool
}

// TCPProber probes with a plain TCP connect.
type TCPProber struct {
	Timeout time.Duration
}

// NewTCPProber returns a prober using timeout, or DefaultProbeTimeout when timeout <= 0.
func NewTCPProber(timeout time.Duration) *TCPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &TCPProber{Timeout: timeout}
}

// Probe implements Prober.
func (p *TCPProber) Probe(ctx context.Context, service *Service) bool {
	if service == nil {
		return false
	}
	return IsPortOpen(ctx, service.Host, service.Port, p.Timeout)
}

// IsPortOpen reports whether host:port accepts a TCP connection within timeout.
// Refused, timed out, unresolvable and cancelled attempts all return false.
// The connection is closed right away.
func IsPortOpen(ctx context.Context, host string, port int, timeout time.Duration) bool {
	if host == "" {
		host = DefaultProbeHost
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1,
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	utils.Close(conn)
	return true
}
