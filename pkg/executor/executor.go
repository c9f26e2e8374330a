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

// Package executor runs DAG parts: the batch of algorithms a processor is asked
// to run for one execution, fed with the results of their dependencies.
package executor

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/codec"
	"github.com/numaproj/orca/pkg/metrics"
	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/shared/logging"
	"github.com/numaproj/orca/pkg/window"
	"github.com/numaproj/orca/pkg/workerpool"
)

var (
	// ErrMalformedRequest is returned when a request cannot be executed as sent.
	ErrMalformedRequest = errors.New("malformed execution request")
	// ErrUnknownAlgorithm is returned when a request references an algorithm
	// that is not registered on this processor.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Executor runs the algorithms of DAG parts on a shared worker pool. It keeps
// no state across requests.
type Executor struct {
	registry  *registry.Registry
	pool      *workerpool.Pool
	processor string
	log       *zap.SugaredLogger
	now       func() time.Time
}

// Option to apply to an Executor.
type Option func(*Executor)

// WithLogger sets the logger of the executor.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Executor) {
		e.log = l
	}
}

// WithProcessorName sets the processor name used to label metrics.
func WithProcessorName(name string) Option {
	return func(e *Executor) {
		e.processor = name
	}
}

// WithClock sets the clock results are stamped with.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
	}
}

// New returns an executor running the algorithms of reg on pool.
func New(reg *registry.Registry, pool *workerpool.Pool, opts ...Option) *Executor {
	e := &Executor{
		registry: reg,
		pool:     pool,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logging.NewLogger().Named("executor")
	}
	return e
}

// job is one requested algorithm of a DAG part.
type job struct {
	ref       *v1.Algorithm
	algorithm *registry.Algorithm
	deps      []*registry.Algorithm
	// pending counts the dependencies run in the same batch that have not completed yet.
	pending    int
	dependents []*job
}

func (j *job) fullName() string {
	return j.algorithm.FullName()
}

type completion struct {
	job    *job
	result *v1.Result
}

// dependency is a result handed to dependent algorithms, decoded once per
// invocation.
type dependency struct {
	result    *v1.Result
	succeeded bool
}

// Execute validates a DAG part and starts running it. The returned channel
// yields exactly one result per requested algorithm in completion order and is
// closed once all of them are emitted or ctx is done. Structural problems are
// reported as an error before anything runs and no result is emitted.
func (e *Executor) Execute(ctx context.Context, req *v1.ExecutionRequest) (<-chan *v1.ExecutionResult, error) {
	metrics.ExecutionRequests.WithLabelValues(e.processor).Inc()
	jobs, err := e.plan(req)
	if err != nil {
		reason := "malformed"
		if errors.Is(err, ErrUnknownAlgorithm) {
			reason = "unknown_algorithm"
		}
		metrics.ExecutionRequestErrors.WithLabelValues(e.processor, reason).Inc()
		return nil, err
	}
	log := e.log.With(zap.String("execID", req.GetExecId()))
	log.Infow("Received DAG part", zap.Int("algorithms", len(jobs)), zap.Int("dependencyResults", len(req.GetAlgorithmResults())))

	out := make(chan *v1.ExecutionResult, len(jobs))
	go e.run(logging.WithLogger(ctx, log), req, jobs, out)
	return out, nil
}

// plan resolves every requested algorithm and links the ones depending on
// each other within the batch.
func (e *Executor) plan(req *v1.ExecutionRequest) ([]*job, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrMalformedRequest)
	}
	if req.GetExecId() == "" {
		return nil, fmt.Errorf("%w: exec id is empty", ErrMalformedRequest)
	}
	external := externalResults(req)
	jobs := make([]*job, 0, len(req.GetAlgorithms()))
	byName := make(map[string]*job, len(req.GetAlgorithms()))
	for i, ref := range req.GetAlgorithms() {
		if ref == nil {
			return nil, fmt.Errorf("%w: algorithm %d is nil", ErrMalformedRequest, i)
		}
		fullName := registry.FullName(ref.GetName(), ref.GetVersion())
		if _, ok := byName[fullName]; ok {
			return nil, fmt.Errorf("%w: algorithm %s is requested more than once", ErrMalformedRequest, fullName)
		}
		a, ok := e.registry.Lookup(fullName)
		if !ok || a.Remote() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, fullName)
		}
		j := &job{ref: ref, algorithm: a, deps: e.registry.Dependencies(fullName)}
		jobs = append(jobs, j)
		byName[fullName] = j
	}
	for _, j := range jobs {
		for _, d := range j.deps {
			if _, ok := external[d.FullName()]; ok {
				continue
			}
			if upstream, ok := byName[d.FullName()]; ok {
				j.pending++
				upstream.dependents = append(upstream.dependents, j)
			}
		}
	}
	return jobs, nil
}

// externalResults indexes the dependency results computed outside the batch.
// The first result of an algorithm wins.
func externalResults(req *v1.ExecutionRequest) map[string]*v1.Result {
	results := make(map[string]*v1.Result, len(req.GetAlgorithmResults()))
	for _, ar := range req.GetAlgorithmResults() {
		if ar.GetAlgorithm() == nil || ar.GetResult() == nil {
			continue
		}
		name := registry.FullName(ar.GetAlgorithm().GetName(), ar.GetAlgorithm().GetVersion())
		if _, ok := results[name]; !ok {
			results[name] = ar.GetResult()
		}
	}
	return results
}

func (e *Executor) run(ctx context.Context, req *v1.ExecutionRequest, jobs []*job, out chan<- *v1.ExecutionResult) {
	defer close(out)
	log := logging.FromContext(ctx)
	// buffered so that workers never block on a coordinator that has returned
	done := make(chan completion, len(jobs))
	values := make(map[string]dependency, len(jobs))
	for name, r := range externalResults(req) {
		values[name] = externalDependency(r)
	}

	schedule := func(j *job) bool {
		for _, d := range j.deps {
			if v, ok := values[d.FullName()]; ok && !v.succeeded {
				log.Warnw("Skipping algorithm, dependency did not succeed", zap.String("algorithm", j.fullName()), zap.String("dependency", d.FullName()))
				done <- completion{job: j, result: codec.HandledFailure(fmt.Sprintf("dependency %s did not succeed", d.FullName()), e.now())}
				return true
			}
		}
		params := buildParams(req, j.deps, values)
		err := e.pool.Submit(ctx, func() {
			// nothing is emitted once the DAG part is cancelled
			if ctx.Err() != nil {
				return
			}
			done <- completion{job: j, result: e.invoke(ctx, j, params)}
		})
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		log.Errorw("Failed to submit algorithm", zap.String("algorithm", j.fullName()), zap.Error(err))
		done <- completion{job: j, result: codec.Failure(err, "", e.now())}
		return true
	}

	for _, j := range jobs {
		if j.pending == 0 && !schedule(j) {
			log.Infow("DAG part cancelled before all algorithms were submitted", zap.Error(ctx.Err()))
			return
		}
	}

	for remaining := len(jobs); remaining > 0; remaining-- {
		var c completion
		select {
		case c = <-done:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			log.Infow("DAG part cancelled", zap.Int("pending", remaining), zap.Error(ctx.Err()))
			return
		}
		status := c.result.GetStatus()
		metrics.AlgorithmResults.WithLabelValues(e.processor, c.job.fullName(), status.String()).Inc()
		res := &v1.ExecutionResult{
			ExecId: req.GetExecId(),
			AlgorithmResult: &v1.AlgorithmResult{
				Algorithm: c.job.ref,
				Result:    c.result,
			},
		}
		select {
		case out <- res:
		case <-ctx.Done():
			return
		}

		if len(c.job.dependents) == 0 {
			continue
		}
		values[c.job.fullName()] = dependency{
			result:    c.result,
			succeeded: c.result.GetStatus() == v1.ResultStatus_RESULT_STATUS_SUCCEEDED,
		}
		for _, d := range c.job.dependents {
			d.pending--
			if d.pending == 0 && !schedule(d) {
				log.Infow("DAG part cancelled before all algorithms were submitted", zap.Error(ctx.Err()))
				return
			}
		}
	}
}

// invoke runs an algorithm body, turning a returned error or a panic into an
// unhandled failure.
func (e *Executor) invoke(ctx context.Context, j *job, params *registry.ExecutionParams) (result *v1.Result) {
	log := logging.FromContext(ctx).With(zap.String("algorithm", j.fullName()))
	inflight := metrics.InflightAlgorithms.WithLabelValues(e.processor)
	inflight.Inc()
	start := time.Now()
	defer func() {
		inflight.Dec()
		metrics.AlgorithmProcessingTime.WithLabelValues(e.processor, j.fullName()).Observe(float64(time.Since(start).Microseconds()))
		if r := recover(); r != nil {
			metrics.AlgorithmPanics.WithLabelValues(e.processor, j.fullName()).Inc()
			log.Errorw("Algorithm panicked", zap.Any("panic", r))
			result = codec.Failure(fmt.Errorf("panic: %v", r), string(debug.Stack()), e.now())
		}
	}()

	log.Debug("Running algorithm")
	v, err := j.algorithm.Exec(ctx, params)
	if err != nil {
		log.Errorw("Algorithm failed", zap.Error(err))
		return codec.Failure(err, stackTrace(err), e.now())
	}
	result, err = codec.Encode(v, e.now())
	if err != nil {
		log.Errorw("Failed to encode algorithm result", zap.Error(err))
		return result
	}
	log.Debug("Completed algorithm")
	return result
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the innermost stack recorded by github.com/pkg/errors
// in the chain of err, or the verbose error text when there is none.
func stackTrace(err error) string {
	var trace string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			trace = fmt.Sprintf("%+v", st.StackTrace())
		}
	}
	if trace == "" {
		return fmt.Sprintf("%+v", err)
	}
	return trace
}

// buildParams builds the input of one invocation. Every call decodes its own
// window and dependency values.
func buildParams(req *v1.ExecutionRequest, deps []*registry.Algorithm, values map[string]dependency) *registry.ExecutionParams {
	params := &registry.ExecutionParams{
		ExecID:       req.GetExecId(),
		Window:       window.FromProto(req.GetWindow()),
		Dependencies: make(map[string]any, len(deps)),
		Ordered:      make([]any, len(deps)),
	}
	for i, d := range deps {
		if v, ok := values[d.FullName()]; ok {
			value := codec.Decode(v.result)
			params.Dependencies[d.FullName()] = value
			params.Ordered[i] = value
		}
	}
	return params
}

// externalDependency wraps a dependency result computed outside the batch.
// Results without a failed status count as succeeded.
func externalDependency(r *v1.Result) dependency {
	switch r.GetStatus() {
	case v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED:
		return dependency{result: r}
	}
	return dependency{result: r, succeeded: true}
}
