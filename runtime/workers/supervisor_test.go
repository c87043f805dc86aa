package workers

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	stderrors "errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func TestSupervisor_RestartsPanickingWorker(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := mocks.NewMockWorker(ctrl)

	// Given a worker that panics on every run
	var calls atomic.Int32
	worker.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(_ context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()
	sup := NewSupervisor(testLogger(), 20*time.Millisecond)

	// When it is supervised for a while
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	sup.Add(worker).Run(ctx)

	// Then it was restarted, with a growing delay
	req.GreaterOrEqual(calls.Load(), int32(2))
	req.Less(calls.Load(), int32(15))
	restarts := sup.Restarts(contract.GetWorkerName(worker))
	req.GreaterOrEqual(restarts, int(calls.Load())-1)
	req.LessOrEqual(restarts, int(calls.Load()))
}

func TestSupervisor_DoesNotRestartFinishedWorker(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	worker.EXPECT().Run(gomock.Any()).Return(nil).Times(1)
	sup := NewSupervisor(testLogger(), 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		sup.Add(worker).Run(context.Background())
		close(done)
	}()

	// Then the supervisor returns without restarting it
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
	req.Zero(sup.Restarts(contract.GetWorkerName(worker)))
}

func TestSupervisor_RestartsFailingWorkerUntilItSucceeds(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := mocks.NewMockWorker(ctrl)

	// Given a worker failing twice then finishing
	gomock.InOrder(
		worker.EXPECT().Run(gomock.Any()).Return(stderrors.New("redis down")),
		worker.EXPECT().Run(gomock.Any()).Return(stderrors.New("redis down")),
		worker.EXPECT().Run(gomock.Any()).Return(nil),
	)
	sup := NewSupervisor(testLogger(), 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sup.Add(worker).Run(ctx)

	req.NoError(ctx.Err())
	req.Equal(2, sup.Restarts(contract.GetWorkerName(worker)))
}

func TestSupervisor_StopEndsBlockingWorkers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := mocks.NewMockWorker(ctrl)

	started := make(chan struct{})
	worker.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)
	sup := NewSupervisor(testLogger(), 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		sup.Add(worker).Run(context.Background())
		close(done)
	}()
	<-started
	sup.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Stop should end the supervised workers")
	}
}

func TestRunGuarded_WrapsPanic(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := mocks.NewMockWorker(ctrl)
	worker.EXPECT().Run(gomock.Any()).DoAndReturn(func(_ context.Context) error { panic("nil map") })

	err := runGuarded(context.Background(), worker)

	req.ErrorIs(err, errors.ErrWorkerPanic)
	req.ErrorContains(err, "nil map")
}
