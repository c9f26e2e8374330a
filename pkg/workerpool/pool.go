/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package workerpool provides a fixed size pool of long lived workers shared by
// every request a processor serves.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/numaproj/orca/pkg/shared/logging"
)

// ErrPoolStopped is returned when submitting to a stopped pool.
var ErrPoolStopped = errors.New("worker pool is stopped")

// Task is a unit of work run by the pool. Tasks are opaque and may block.
type Task func()

// Pool runs tasks on a fixed number of workers. Every task accepted by Submit
// is run, including the ones still queued when Stop is called.
type Pool struct {
	size  int
	tasks chan Task
	done  chan struct{}
	log   *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup

	active    *atomic.Int32
	completed *atomic.Int64
}

// Option to apply to a Pool.
type Option func(*options)

type options struct {
	queueSize int
	logger    *zap.SugaredLogger
}

// WithQueueSize sets how many tasks can wait for a worker, defaults to the pool size.
func WithQueueSize(n int) Option {
	return func(o *options) {
		o.queueSize = n
	}
}

// WithLogger sets the logger of the pool.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New starts a pool of size workers.
func New(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("worker pool size must be positive, got %d", size)
	}
	o := &options{queueSize: size}
	for _, opt := range opts {
		opt(o)
	}
	if o.queueSize < 0 {
		return nil, fmt.Errorf("worker pool queue size cannot be negative, got %d", o.queueSize)
	}
	if o.logger == nil {
		o.logger = logging.NewLogger().Named("workerpool")
	}
	p := &Pool{
		size:      size,
		tasks:     make(chan Task, o.queueSize),
		done:      make(chan struct{}),
		log:       o.logger,
		active:    atomic.NewInt32(0),
		completed: atomic.NewInt64(0),
	}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(i)
	}
	return p, nil
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	p.log.Debugw("Worker started", zap.Int("workerID", id))
	for {
		select {
		case t := <-p.tasks:
			p.run(t)
		case <-p.done:
			for {
				select {
				case t := <-p.tasks:
					p.run(t)
				default:
					p.log.Debugw("Worker finished", zap.Int("workerID", id))
					return
				}
			}
		}
	}
}

func (p *Pool) run(t Task) {
	p.active.Inc()
	defer func() {
		if r := recover(); r != nil {
			p.log.Errorw("Task panicked", zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
		}
		p.active.Dec()
		p.completed.Inc()
	}()
	t()
}

// Submit queues a task. It blocks until a worker can take it, the context is
// done or the pool is stopped.
func (p *Pool) Submit(ctx context.Context, t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.tasks <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops accepting tasks and waits for the accepted ones to finish.
// It is safe to call Stop more than once.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.done)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Running reports whether the pool accepts tasks.
func (p *Pool) Running() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.stopped
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Active returns the number of tasks being run.
func (p *Pool) Active() int32 {
	return p.active.Load()
}

// Completed returns the number of tasks run since the pool started.
func (p *Pool) Completed() int64 {
	return p.completed.Load()
}
