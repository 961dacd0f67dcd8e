package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TennisHub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Probes(t *testing.T) {
	prober := mocks.NewMockHealthProber(t)
	log := newTestLogger(t)

	s := New(prober, 50*time.Millisecond, log)

	prober.EXPECT().Probe(mock.Anything).Return(true, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(prober.Calls), 1)
	assert.True(t, s.healthy)
}

func TestScheduler_Tick_TracksTransitions(t *testing.T) {
	prober := mocks.NewMockHealthProber(t)
	s := New(prober, time.Hour, newTestLogger(t))

	prober.EXPECT().Probe(mock.Anything).Return(false, errors.New("connection refused")).Once()
	s.tick(context.Background())
	assert.False(t, s.healthy)

	prober.EXPECT().Probe(mock.Anything).Return(false, nil).Once()
	s.tick(context.Background())
	assert.False(t, s.healthy)

	prober.EXPECT().Probe(mock.Anything).Return(true, nil).Once()
	s.tick(context.Background())
	assert.True(t, s.healthy)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	prober := mocks.NewMockHealthProber(t)
	log := newTestLogger(t)

	s := New(prober, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	prober := mocks.NewMockHealthProber(t)
	log := newTestLogger(t)

	s := New(prober, 20*time.Millisecond, log)

	prober.EXPECT().Probe(mock.Anything).Return(true, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(prober.Calls), 2)
}
