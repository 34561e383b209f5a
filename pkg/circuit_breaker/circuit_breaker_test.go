package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/practicum/shareit-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	okService := func() error { return nil }
	failService := func() error { return errors.New("service error") }

	const (
		recordLength     = 10
		timeout          = 50 * time.Millisecond
		percentile       = 0.5
		recoveryRequests = 3
	)

	cb := circuit_breaker.New(recordLength, timeout, percentile, recoveryRequests)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(okService))
	}

	// enough failures to exceed the percentile and open the breaker
	for i := 0; i < recordLength; i++ {
		_ = cb.Call(failService)
	}
	require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open and recovers
	time.Sleep(timeout + 10*time.Millisecond)
	for i := 0; i < recoveryRequests+2; i++ {
		require.NoError(t, cb.Call(okService))
	}
	require.NoError(t, cb.Call(okService))

	// a failure while half-open flips it back to open
	for i := 0; i < recordLength; i++ {
		_ = cb.Call(failService)
	}
	require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)
	time.Sleep(timeout + 10*time.Millisecond)
	require.Error(t, cb.Call(failService))
	require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(okService))
}
