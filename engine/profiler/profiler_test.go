package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBelowInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(time.Millisecond)
	p.Tick()
	time.Sleep(5 * time.Millisecond)
	assert.True(t, p.Tick())
	// Counter resets after logging, so the next tick starts a fresh window.
	assert.False(t, p.Tick())
}

func TestSetUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(0)
	assert.Equal(t, time.Second, p.updateInterval)
	p.SetUpdateInterval(-time.Second)
	assert.Equal(t, time.Second, p.updateInterval)
}
