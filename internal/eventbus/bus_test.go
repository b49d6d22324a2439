package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSendAndReceive(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(TapEvent{}))
	require.NoError(t, eb.SendToCore(AddContactEvent{Name: "Jane", Phone: "1"}))

	require.Equal(t, TapEvent{}, <-eb.UIToCore())
	require.Equal(t, AddContactEvent{Name: "Jane", Phone: "1"}, <-eb.UIToCore())
}

func TestFullChannelReportsError(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	require.NoError(t, eb.SendToUI(ToastEvent{}))
	err := eb.SendToUI(ToastEvent{})
	require.ErrorIs(t, err, ErrChannelFull)
	require.Len(t, reported, 1)
	require.Equal(t, "SendToUI", reported[0].Operation)
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	require.NoError(t, eb.SendToCore(TapEvent{}))
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, eb.SendToCore(TapEvent{}), ErrChannelFull)
	}
	require.Equal(t, CircuitOpen, eb.CoreCircuitState())

	<-eb.UIToCore()
	require.ErrorIs(t, eb.SendToCore(TapEvent{}), ErrCircuitOpen)
}

func TestCongestedUIDoesNotBlockTaps(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	require.NoError(t, eb.SendToUI(StateUpdateEvent{}))
	for i := 0; i < 6; i++ {
		require.Error(t, eb.SendToUI(StateUpdateEvent{}))
	}
	require.Equal(t, CircuitOpen, eb.UICircuitState())
	require.Equal(t, CircuitClosed, eb.CoreCircuitState())

	require.NoError(t, eb.SendToCore(TapEvent{}))
	require.Equal(t, TapEvent{}, <-eb.UIToCore())
}

func TestCircuitHalfOpensAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Second)
	now := time.Unix(100, 0)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	require.False(t, cb.IsOpen())
	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	now = now.Add(2 * time.Second)
	require.False(t, cb.IsOpen())
	require.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	require.Equal(t, CircuitClosed, cb.State())
}

func TestSendAfterCloseFails(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	require.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrClosed)
	require.ErrorIs(t, eb.SendToCore(MarkSafeEvent{}), ErrClosed)

	_, ok := <-eb.CoreToUI()
	require.False(t, ok)
}
