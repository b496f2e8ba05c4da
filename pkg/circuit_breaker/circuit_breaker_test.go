package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookswap/exchange-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	cb := circuit_breaker.New(10, 100*time.Millisecond, 0.30, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// enough failures to cross the percentile and open the breaker
	for i := 0; i < 10; i++ {
		_ = cb.Call(fail)
	}
	err := cb.Call(ok)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open state
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// a failure in half-open trips it back to open
	for i := 0; i < 10; i++ {
		_ = cb.Call(fail)
	}
	time.Sleep(150 * time.Millisecond)
	require.Error(t, cb.Call(fail))
	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(ok))
}
