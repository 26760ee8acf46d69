package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_HealthCheckFailureBlocksScheduling(t *testing.T) {
	var ticks atomic.Int32

	s := New(
		"* * * * *",
		func(context.Context) error { return fmt.Errorf("pair not found") },
		func(context.Context) { ticks.Add(1) },
		zerolog.Nop(),
	)

	err := s.Start(context.Background())

	require.Error(t, err)
	assert.False(t, s.Running())
	// The recurring trigger was never registered.
	assert.Empty(t, s.cron.Entries())
	assert.Equal(t, int32(0), ticks.Load())
}

func TestStart_HealthCheckSuccessRegistersTrigger(t *testing.T) {
	s := New(
		"* * * * *",
		func(context.Context) error { return nil },
		func(context.Context) {},
		zerolog.Nop(),
	)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.True(t, s.Running())
	assert.Len(t, s.cron.Entries(), 1)
}

func TestStart_InvalidScheduleExpression(t *testing.T) {
	s := New(
		"not a cron spec",
		func(context.Context) error { return nil },
		func(context.Context) {},
		zerolog.Nop(),
	)

	err := s.Start(context.Background())

	require.Error(t, err)
	assert.False(t, s.Running())
}

func TestStop(t *testing.T) {
	s := New(
		"* * * * *",
		func(context.Context) error { return nil },
		func(context.Context) {},
		zerolog.Nop(),
	)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())

	// Stopping twice is a no-op.
	s.Stop()
	assert.False(t, s.Running())
}

func TestFire_SkipsWhileTickInFlight(t *testing.T) {
	var ticks atomic.Int32

	started := make(chan struct{})
	release := make(chan struct{})

	s := New(
		"* * * * *",
		func(context.Context) error { return nil },
		func(context.Context) {
			ticks.Add(1)
			close(started)
			<-release
		},
		zerolog.Nop(),
	)

	go s.fire(context.Background())

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for first tick to start")
	}

	// A firing that arrives while the first tick is still running is dropped.
	s.fire(context.Background())
	assert.Equal(t, int32(1), ticks.Load())

	close(release)
}
