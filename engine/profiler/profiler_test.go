package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickReportsOnlyAfterInterval(t *testing.T) {
	p := NewProfiler(WithInterval(time.Hour))

	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestTickReportsAndResetsWindow(t *testing.T) {
	p := NewProfiler(WithInterval(time.Nanosecond))

	time.Sleep(time.Millisecond)
	assert.True(t, p.Tick())

	// the window restarts after a report
	p.interval = time.Hour
	assert.False(t, p.Tick())
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	assert.Equal(t, time.Second, p.interval)
}
