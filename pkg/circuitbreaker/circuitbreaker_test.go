package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(Settings{Name: "smtp", MaxFailures: 2, Timeout: time.Minute})
	fail := errors.New("dial failed")
	calls := 0
	fn := func() error {
		calls++
		return fail
	}

	assert.ErrorIs(t, cb.Execute(fn), fail)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(fn), fail)
	assert.Equal(t, StateOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(fn), ErrOpen)
	assert.Equal(t, 2, calls)
}

func TestBreakerHalfOpenRecovers(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(Settings{Name: "smtp", MaxFailures: 1, Timeout: 10 * time.Second})
	cb.now = func() time.Time { return now }

	assert.Error(t, cb.Execute(func() error { return errors.New("x") }))
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(11 * time.Second)
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(Settings{Name: "smtp", MaxFailures: 3, Timeout: time.Second})
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("x") })
	}
	now = now.Add(2 * time.Second)

	assert.Error(t, cb.Execute(func() error { return errors.New("still down") }))
	assert.Equal(t, StateOpen, cb.State())
}
