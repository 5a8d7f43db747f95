package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable read by Load.
const EnvPrefix = "LANSCOUT_"

type Config struct {
	ListenPort      string        // ex: ":5050"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Monitor
	ServiceFile      string        // path to services.yaml (empty = built-in service list)
	ProbeHost        string        // default host for services that do not set one
	ProbeTimeout     time.Duration // connect timeout for one probe (default: 300ms)
	CacheDuration    time.Duration // how long a scan result is reused (default: 2s)
	ProbeWorkers     int           // max concurrent probes per scan (0 = one per service)
	OfflineThreshold time.Duration // dashboard hides tiles offline longer than this (default: 5s)
	WarmInterval     time.Duration // background refresh interval (0 = disabled)

	// Dashboard
	IconsDir string // directory served under /icons (empty = disabled)

	// Metrics
	MetricsEnabled bool // expose /metrics

	// Manual refresh endpoint
	RefreshBurst  int // tokens per client before throttling
	RefreshPerMin int // token refill per client per minute

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

// Load reads .env files (if present) and the process environment.
// It never fails: malformed values fall back to defaults. Call Validate afterwards.
func Load() *Config {
	LoadEnv()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LISTEN_PORT", ":5050"),
		ShutdownTimeout: mustDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LOG_LEVEL", "info"),
		PrettyLog: mustBool("PRETTY_LOG", true),

		// Monitor
		ServiceFile:      getenv("SERVICE_FILE", ""),
		ProbeHost:        getenv("PROBE_HOST", "127.0.0.1"),
		ProbeTimeout:     mustDuration("PROBE_TIMEOUT", 300*time.Millisecond),
		CacheDuration:    mustDuration("CACHE_DURATION", 2*time.Second),
		ProbeWorkers:     getenvInt("PROBE_WORKERS", 0),
		OfflineThreshold: mustDuration("OFFLINE_THRESHOLD", 5*time.Second),
		WarmInterval:     mustDuration("WARM_INTERVAL", 0),

		// Dashboard
		IconsDir: getenv("ICONS_DIR", ""),

		// Metrics
		MetricsEnabled: mustBool("METRICS_ENABLED", true),

		// Manual refresh
		RefreshBurst:  getenvInt("REFRESH_BURST", 3),
		RefreshPerMin: getenvInt("REFRESH_PER_MIN", 6),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("TRUST_PROXY", false),
	}

	// Log config only in debug mode
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// LoadEnv loads variables from .env files in the working directory.
// Variables already set in the process environment win.
func LoadEnv() {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			log.Printf("[WARN] failed to load %s: %v\n", file, err)
		}
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.ListenPort == "" {
		errs = append(errs, errors.New("listen port must not be empty"))
	}
	if c.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("probe timeout must be > 0, got %v", c.ProbeTimeout))
	}
	if c.CacheDuration <= 0 {
		errs = append(errs, fmt.Errorf("cache duration must be > 0, got %v", c.CacheDuration))
	}
	if c.ProbeWorkers < 0 {
		errs = append(errs, fmt.Errorf("probe workers must be >= 0, got %d", c.ProbeWorkers))
	}
	if c.OfflineThreshold < 0 {
		errs = append(errs, fmt.Errorf("offline threshold must be >= 0, got %v", c.OfflineThreshold))
	}
	if c.WarmInterval < 0 {
		errs = append(errs, fmt.Errorf("warm interval must be >= 0, got %v", c.WarmInterval))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be > 0, got %v", c.ShutdownTimeout))
	}
	if c.IconsDir != "" {
		if info, err := os.Stat(c.IconsDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("icons dir %q is not a readable directory", c.IconsDir))
		}
	}
	return errors.Join(errs...)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
