package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantNil bool
		want    string
	}{
		{in: "debug", want: "debug"},
		{in: "info", want: "info"},
		{in: "warn", want: "warn"},
		{in: "WARNING", want: "warn"},
		{in: " Error ", want: "error"},
		{in: "fatal", wantNil: true},
		{in: "verbose", wantNil: true},
		{in: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl := parseLevel(tt.in)
			if tt.wantNil {
				if lvl != nil {
					t.Errorf("parseLevel(%q) = %v, want nil", tt.in, lvl)
				}
				return
			}
			if lvl == nil || lvl.String() != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %s", tt.in, lvl, tt.want)
			}
		})
	}
}

func TestNamedAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core)).Named("monitor").With(String("component", "cache"))

	log.Debug("dropped")
	log.Info("status refreshed", Int("online", 3), Bool("cached", false), Float64("age", 1.5))
	log.Warnf("slow scan: %d ms", 400)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "monitor", entries[0].LoggerName)
	assert.Equal(t, "status refreshed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cache", fields["component"])
	assert.Equal(t, int64(3), fields["online"])
	assert.Equal(t, "slow scan: 400 ms", entries[1].Message)
}

func TestNewBuildsBothEncoders(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		log := New("error", pretty)
		log.Info("dropped below error level")
		_ = log.Sync()
	}
}
