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

package executor

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/codec"
	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/workerpool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testEnv struct {
	reg  *registry.Registry
	pool *workerpool.Pool
	exec *Executor
}

func newTestEnv(t *testing.T, workers int) *testEnv {
	t.Helper()
	log := zap.NewNop().Sugar()
	pool, err := workerpool.New(workers, workerpool.WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(pool.Stop)
	reg := registry.New(registry.WithLogger(log))
	return &testEnv{
		reg:  reg,
		pool: pool,
		exec: New(reg, pool, WithLogger(log), WithProcessorName("test")),
	}
}

func (te *testEnv) register(t *testing.T, name string, fn registry.AlgorithmFunc, deps ...registry.Handle) registry.Handle {
	t.Helper()
	h, err := te.reg.RegisterWithDependencies(&registry.Algorithm{
		Name:          name,
		Version:       "1.0.0",
		WindowName:    "TestWindow",
		WindowVersion: "1.0.0",
		Exec:          fn,
		Processor:     "test",
		Runtime:       "go",
	}, deps...)
	require.NoError(t, err)
	return h
}

func ref(name string) *v1.Algorithm {
	return &v1.Algorithm{Name: name, Version: "1.0.0"}
}

func request(names ...string) *v1.ExecutionRequest {
	req := &v1.ExecutionRequest{ExecId: "exec-1"}
	for _, n := range names {
		req.Algorithms = append(req.Algorithms, ref(n))
	}
	return req
}

func constant(v any) registry.AlgorithmFunc {
	return func(context.Context, *registry.ExecutionParams) (any, error) {
		return v, nil
	}
}

func collect(t *testing.T, ch <-chan *v1.ExecutionResult) []*v1.ExecutionResult {
	t.Helper()
	var results []*v1.ExecutionResult
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-timeout:
			t.Fatal("timed out waiting for results")
		}
	}
}

func byName(results []*v1.ExecutionResult) map[string]*v1.Result {
	m := make(map[string]*v1.Result, len(results))
	for _, r := range results {
		m[r.GetAlgorithmResult().GetAlgorithm().GetName()] = r.GetAlgorithmResult().GetResult()
	}
	return m
}

func field(r *v1.Result, name string) string {
	return r.GetStructValue().GetFields()[name].GetStringValue()
}

func TestExecute_DependencyChain(t *testing.T) {
	te := newTestEnv(t, 4)
	hA := te.register(t, "A", constant(1.23))
	te.register(t, "B", func(_ context.Context, p *registry.ExecutionParams) (any, error) {
		a, ok := p.Float("A_1.0.0")
		if !ok {
			return nil, errors.New("missing A")
		}
		return codec.Scalar(a * 2), nil
	}, hA)

	ch, err := te.exec.Execute(context.Background(), request("A", "B"))
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].GetAlgorithmResult().GetAlgorithm().GetName())

	got := byName(results)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got["A"].GetStatus())
	assert.Equal(t, 1.23, got["A"].GetSingleValue())
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got["B"].GetStatus())
	assert.Equal(t, 2.46, got["B"].GetSingleValue())
	for _, r := range results {
		assert.Equal(t, "exec-1", r.GetExecId())
	}
}

func TestExecute_ExternalDependency(t *testing.T) {
	te := newTestEnv(t, 2)
	hA := te.register(t, "A", func(context.Context, *registry.ExecutionParams) (any, error) {
		t.Error("A must not run when its result is supplied")
		return nil, nil
	})
	hV := te.register(t, "V", constant(codec.Vector{1, 2}))
	var (
		mu  sync.Mutex
		got *registry.ExecutionParams
	)
	te.register(t, "C", func(_ context.Context, p *registry.ExecutionParams) (any, error) {
		mu.Lock()
		got = p
		mu.Unlock()
		return nil, nil
	}, hV, hA)

	req := request("C")
	req.Window = &v1.Window{TimeFrom: 10, TimeTo: 40, WindowTypeName: "TestWindow", WindowTypeVersion: "1.0.0", Origin: "test"}
	req.AlgorithmResults = []*v1.AlgorithmResult{
		{Algorithm: ref("A"), Result: &v1.Result{
			Status: v1.ResultStatus_RESULT_STATUS_SUCCEEDED,
			Value:  &v1.Result_SingleValue{SingleValue: 2},
		}},
		{Algorithm: ref("V"), Result: &v1.Result{
			Status: v1.ResultStatus_RESULT_STATUS_SUCCEEDED,
			Value:  &v1.Result_FloatValues{FloatValues: &v1.FloatArray{Values: []float64{3, 4}}},
		}},
		{Algorithm: ref("Unrelated"), Result: &v1.Result{Status: v1.ResultStatus_RESULT_STATUS_SUCCEEDED}},
	}
	ch, err := te.exec.Execute(context.Background(), req)
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, 1)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, results[0].GetAlgorithmResult().GetResult().GetStatus())

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, got)
	assert.Equal(t, "exec-1", got.ExecID)
	assert.Equal(t, map[string]any{"A_1.0.0": 2.0, "V_1.0.0": []float64{3, 4}}, got.Dependencies)
	assert.Equal(t, []any{[]float64{3, 4}, 2.0}, got.Ordered)
	require.NotNil(t, got.Window)
	assert.Equal(t, "TestWindow_1.0.0", got.Window.FullTypeName())
	assert.Equal(t, int64(40), got.Window.To.Unix())
}

func TestExecute_Isolation(t *testing.T) {
	te := newTestEnv(t, 3)
	names := []string{"One", "Two", "Three", "Four", "Five"}
	for i, n := range names {
		te.register(t, n, constant(float64(i)))
	}
	te.register(t, "Broken", func(context.Context, *registry.ExecutionParams) (any, error) {
		return nil, errors.New("broken algorithm")
	})

	ch, err := te.exec.Execute(context.Background(), request(append(names, "Broken")...))
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, len(names)+1)

	got := byName(results)
	for i, n := range names {
		assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got[n].GetStatus(), n)
		assert.Equal(t, float64(i), got[n].GetSingleValue(), n)
	}
	broken := got["Broken"]
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED, broken.GetStatus())
	assert.Equal(t, "broken algorithm", field(broken, "error"))
	assert.Contains(t, field(broken, "stack_trace"), "TestExecute_Isolation")
}

func TestExecute_Panic(t *testing.T) {
	te := newTestEnv(t, 2)
	te.register(t, "Panics", func(context.Context, *registry.ExecutionParams) (any, error) {
		panic("unexpected")
	})
	te.register(t, "Fine", constant(1))

	ch, err := te.exec.Execute(context.Background(), request("Panics", "Fine"))
	require.NoError(t, err)
	got := byName(collect(t, ch))
	require.Len(t, got, 2)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got["Fine"].GetStatus())
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED, got["Panics"].GetStatus())
	assert.Equal(t, "panic: unexpected", field(got["Panics"], "error"))
	assert.True(t, strings.Contains(field(got["Panics"], "stack_trace"), "goroutine"))
}

func TestExecute_CompletionOrder(t *testing.T) {
	te := newTestEnv(t, 2)
	te.register(t, "Slow", func(context.Context, *registry.ExecutionParams) (any, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	})
	te.register(t, "Fast", constant(2))

	ch, err := te.exec.Execute(context.Background(), request("Slow", "Fast"))
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, 2)
	assert.Equal(t, "Fast", results[0].GetAlgorithmResult().GetAlgorithm().GetName())
	assert.Equal(t, "Slow", results[1].GetAlgorithmResult().GetAlgorithm().GetName())
}

func TestExecute_FailedDependency(t *testing.T) {
	te := newTestEnv(t, 2)
	hA := te.register(t, "A", func(context.Context, *registry.ExecutionParams) (any, error) {
		return nil, errors.New("no data")
	})
	te.register(t, "B", func(context.Context, *registry.ExecutionParams) (any, error) {
		t.Error("B must not run when A failed")
		return nil, nil
	}, hA)

	ch, err := te.exec.Execute(context.Background(), request("B", "A"))
	require.NoError(t, err)
	got := byName(collect(t, ch))
	require.Len(t, got, 2)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED, got["A"].GetStatus())
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, got["B"].GetStatus())
	assert.Equal(t, "dependency A_1.0.0 did not succeed", field(got["B"], "error"))

	// the same applies to a failed result supplied by another processor
	req := request("B")
	req.AlgorithmResults = []*v1.AlgorithmResult{{
		Algorithm: ref("A"),
		Result:    codec.Failure(errors.New("remote"), "", time.Now()),
	}}
	ch, err = te.exec.Execute(context.Background(), req)
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, 1)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, results[0].GetAlgorithmResult().GetResult().GetStatus())
}

func TestExecute_Unencodable(t *testing.T) {
	te := newTestEnv(t, 1)
	te.register(t, "NotANumber", constant(math.NaN()))

	ch, err := te.exec.Execute(context.Background(), request("NotANumber"))
	require.NoError(t, err)
	results := collect(t, ch)
	require.Len(t, results, 1)
	r := results[0].GetAlgorithmResult().GetResult()
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, r.GetStatus())
	assert.Nil(t, r.GetValue())
}

func TestExecute_StructuralErrors(t *testing.T) {
	te := newTestEnv(t, 1)
	te.register(t, "A", constant(1))
	_, err := te.reg.RegisterRemote("Remote", "1.0.0", "elsewhere", "python3.12")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *v1.ExecutionRequest
		want error
	}{
		{"nil request", nil, ErrMalformedRequest},
		{"empty exec id", &v1.ExecutionRequest{Algorithms: []*v1.Algorithm{ref("A")}}, ErrMalformedRequest},
		{"nil algorithm", &v1.ExecutionRequest{ExecId: "x", Algorithms: []*v1.Algorithm{nil}}, ErrMalformedRequest},
		{"duplicate algorithm", request("A", "A"), ErrMalformedRequest},
		{"unknown algorithm", request("A", "Missing"), ErrUnknownAlgorithm},
		{"remote algorithm", request("Remote"), ErrUnknownAlgorithm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := te.exec.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, ch)
		})
	}
	assert.Equal(t, int64(0), te.pool.Completed())
}

func TestExecute_EmptyBatch(t *testing.T) {
	te := newTestEnv(t, 1)
	ch, err := te.exec.Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Empty(t, collect(t, ch))
}

func TestExecute_Cancelled(t *testing.T) {
	te := newTestEnv(t, 1)
	release := make(chan struct{})
	started := make(chan struct{})
	te.register(t, "Blocking", func(context.Context, *registry.ExecutionParams) (any, error) {
		close(started)
		<-release
		return 1, nil
	})
	te.register(t, "Queued", constant(2))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := te.exec.Execute(ctx, request("Blocking", "Queued"))
	require.NoError(t, err)
	<-started
	cancel()
	assert.Empty(t, collect(t, ch))
	close(release)
}

func TestExecute_CancelledAlgorithmNotEmitted(t *testing.T) {
	te := newTestEnv(t, 1)
	started := make(chan struct{})
	te.register(t, "Waiting", func(ctx context.Context, _ *registry.ExecutionParams) (any, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	te.register(t, "Queued", constant(2))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := te.exec.Execute(ctx, request("Waiting", "Queued"))
	require.NoError(t, err)
	<-started
	cancel()
	assert.Empty(t, collect(t, ch))
}

func TestExecute_DependentsGetPrivateValues(t *testing.T) {
	te := newTestEnv(t, 2)
	hA := te.register(t, "A", constant(codec.Struct{"x": 1}))
	var (
		mu   sync.Mutex
		seen []map[string]any
	)
	mutate := func(_ context.Context, p *registry.ExecutionParams) (any, error) {
		v, _ := p.Dependency("A_1.0.0")
		doc := v.(map[string]any)
		mu.Lock()
		seen = append(seen, map[string]any{"x": doc["x"], "mutated": doc["mutated"], "asset": p.Window.Metadata["asset"]})
		mu.Unlock()
		doc["mutated"] = true
		doc["x"] = 100
		p.Window.Metadata["asset"] = "changed"
		return nil, nil
	}
	te.register(t, "B", mutate, hA)
	te.register(t, "C", mutate, hA)

	md, err := structpb.NewStruct(map[string]any{"asset": "a-1"})
	require.NoError(t, err)
	req := request("A", "B", "C")
	req.Window = &v1.Window{TimeFrom: 10, TimeTo: 40, WindowTypeName: "TestWindow", WindowTypeVersion: "1.0.0", Metadata: md}
	ch, err := te.exec.Execute(context.Background(), req)
	require.NoError(t, err)
	got := byName(collect(t, ch))
	require.Len(t, got, 3)
	assert.Equal(t, map[string]any{"x": 1.0}, got["A"].GetStructValue().AsMap())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	for _, s := range seen {
		assert.Equal(t, map[string]any{"x": 1.0, "mutated": nil, "asset": "a-1"}, s)
	}
	assert.Equal(t, "a-1", req.GetWindow().GetMetadata().GetFields()["asset"].GetStringValue())
}

func TestExecute_RemoteDependency(t *testing.T) {
	te := newTestEnv(t, 1)
	hPrices, err := te.reg.RegisterRemote("Prices", "1.0.0", "pricing", "python3.12")
	require.NoError(t, err)
	te.register(t, "Forecast", func(_ context.Context, p *registry.ExecutionParams) (any, error) {
		prices, ok := p.Float("Prices_1.0.0")
		if !ok {
			return nil, errors.New("missing prices")
		}
		return codec.Scalar(prices + 1), nil
	}, hPrices)

	req := request("Forecast")
	req.AlgorithmResults = []*v1.AlgorithmResult{{
		Algorithm: ref("Prices"),
		Result: &v1.Result{
			Status: v1.ResultStatus_RESULT_STATUS_SUCCEEDED,
			Value:  &v1.Result_SingleValue{SingleValue: 41},
		},
	}}
	ch, err := te.exec.Execute(context.Background(), req)
	require.NoError(t, err)
	got := byName(collect(t, ch))
	require.Len(t, got, 1)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got["Forecast"].GetStatus())
	assert.Equal(t, 42.0, got["Forecast"].GetSingleValue())

	// without a supplied result the remote value is missing
	ch, err = te.exec.Execute(context.Background(), request("Forecast"))
	require.NoError(t, err)
	got = byName(collect(t, ch))
	require.Len(t, got, 1)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED, got["Forecast"].GetStatus())
	assert.Equal(t, "missing prices", field(got["Forecast"], "error"))
}

func loadPrices() error {
	return errors.New("no prices")
}

func TestStackTrace(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", errors.Wrap(loadPrices(), "market data"))
	trace := stackTrace(wrapped)
	assert.Contains(t, trace, "loadPrices")
	assert.NotContains(t, trace, "loading:")

	plain := stackTrace(fmt.Errorf("plain failure"))
	assert.Equal(t, "plain failure", plain)
}
