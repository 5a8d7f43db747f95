package domain

import (
	"context"
	"net"
	"testing"
	"time"
)

// listen opens a loopback listener and returns its port.
func listen(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	return ln, ln.Addr().(*net.TCPAddr).Port
}

// closedPort returns a loopback port with nothing listening on it.
func closedPort(t *testing.T) int {
	t.Helper()
	ln, port := listen(t)
	if err := ln.Close(); err != nil {
		t.Fatalf("failed to close listener: %v", err)
	}
	return port
}

func TestIsPortOpen(t *testing.T) {
	ln, openPort := listen(t)
	defer func() {
		_ = ln.Close()
	}()

	tests := []struct {
		name string
		host string
		port int
		want bool
	}{
		{name: "listener bound", host: "127.0.0.1", port: openPort, want: true},
		{name: "empty host defaults to loopback", host: "", port: openPort, want: true},
		{name: "connection refused", host: "127.0.0.1", port: closedPort(t), want: false},
		{name: "unresolvable host", host: "invalid-hostname-that-does-not-exist-12345.", port: 80, want: false},
		{name: "port out of range", host: "127.0.0.1", port: 70000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPortOpen(context.Background(), tt.host, tt.port, time.Second)
			if got != tt.want {
				t.Errorf("IsPortOpen(%q, %d) = %v, want %v", tt.host, tt.port, got, tt.want)
			}
		})
	}
}

func TestIsPortOpenCancelledContext(t *testing.T) {
	ln, port := listen(t)
	defer func() {
		_ = ln.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if IsPortOpen(ctx, "127.0.0.1", port, time.Second) {
		t.Error("IsPortOpen() with cancelled context should return false")
	}
}

func TestIsPortOpenRespectsTimeout(t *testing.T) {
	// 10.255.255.1 is non-routable on most networks, so the SYN goes unanswered.
	start := time.Now()
	got := IsPortOpen(context.Background(), "10.255.255.1", 9, 100*time.Millisecond)
	elapsed := time.Since(start)

	if got {
		t.Skip("non-routable address answered; network setup does not allow this test")
	}
	if elapsed > time.Second {
		t.Errorf("IsPortOpen() took %v, want about 100ms", elapsed)
	}
}

func TestTCPProber(t *testing.T) {
	ln, port := listen(t)
	defer func() {
		_ = ln.Close()
	}()

	p := NewTCPProber(0)
	if p.Timeout != DefaultProbeTimeout {
		t.Errorf("NewTCPProber(0).Timeout = %v, want %v", p.Timeout, DefaultProbeTimeout)
	}

	if !p.Probe(context.Background(), &Service{Name: "up", Host: "127.0.0.1", Port: port}) {
		t.Error("Probe() on bound port = false, want true")
	}
	if p.Probe(context.Background(), &Service{Name: "down", Host: "127.0.0.1", Port: closedPort(t)}) {
		t.Error("Probe() on closed port = true, want false")
	}
	if p.Probe(context.Background(), nil) {
		t.Error("Probe(nil) = true, want false")
	}
}
