package workers

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultRestartInterval = 200 * time.Millisecond
	maxRestartBackoff      = 16
	// a run lasting this long resets the crash streak
	stableRun = time.Minute
)

// Supervisor keeps background workers of the relay alive.
// A worker returning nil is done for good. A worker returning an error or
// panicking is restarted after restartInterval, doubled on every consecutive
// crash up to 16 times the interval.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration

	mu       sync.Mutex
	restarts map[string]int
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	if restartInterval <= 0 {
		restartInterval = defaultRestartInterval
	}
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log,
		restartInterval: restartInterval,
		restarts:        make(map[string]int),
	}
}

// Run starts every added worker and blocks until all of them returned.
// Cancelling ctx or calling Stop ends them.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Restarts reports how many times the named worker was restarted.
func (s *Supervisor) Restarts(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restarts[name]
}

// Start runs one worker in its own goroutine under supervision.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		streak := 0
		for ctx.Err() == nil {
			started := time.Now()
			err := runGuarded(ctx, worker)
			switch {
			case err == nil:
				s.log.Debug("Worker finished", "name", name)
				return
			case ctx.Err() != nil:
				s.log.Debug("Worker stopped", "name", name)
				return
			}

			if time.Since(started) >= stableRun {
				streak = 0
			}
			delay := s.restartInterval * time.Duration(min(1<<streak, maxRestartBackoff))
			if delay < s.restartInterval*maxRestartBackoff {
				streak++
			}
			s.mu.Lock()
			s.restarts[name]++
			s.mu.Unlock()
			s.log.Warn("Worker crashed, restarting", "name", name, "error", err, "delay", delay)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

// runGuarded turns a panic of the worker into errors.ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
