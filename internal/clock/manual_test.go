package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualFiresDueTimersInOrder(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	var fired []string
	m.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	m.AfterFunc(time.Second, func() { fired = append(fired, "early") })
	require.Equal(t, 2, m.Pending())

	m.Advance(500 * time.Millisecond)
	require.Empty(t, fired)

	m.Advance(2 * time.Second)
	require.Equal(t, []string{"early", "late"}, fired)
	require.Equal(t, 0, m.Pending())
}

func TestManualStoppedTimerNeverFires(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	called := false
	timer := m.AfterFunc(time.Second, func() { called = true })
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	m.Advance(time.Minute)
	require.False(t, called)
}

func TestManualStopAfterFireReportsFalse(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	timer := m.AfterFunc(time.Second, func() {})
	m.Advance(time.Second)
	require.False(t, timer.Stop())
	require.Equal(t, time.Unix(1, 0), m.Now())
}
