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


package processor

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/apis/proto/orca/v1/orcamock"
	"github.com/numaproj/orca/pkg/config"
	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/window"
	"github.com/numaproj/orca/pkg/workerpool"
)

var everyMinute = window.MustNewType("EveryMinute", "1.0.0", "fires every minute")

func testConfig() config.Config {
	return config.Config{
		Port:           config.DefaultPort,
		Core:           config.DefaultCore,
		MaxWorkers:     4,
		GracePeriod:    time.Second,
		MaxMessageSize: config.DefaultMaxMessageSize,
		LogLevel:       config.DefaultLogLevel,
	}
}

func newTestProcessor(t *testing.T, opts ...Option) *Processor {
	t.Helper()
	opts = append([]Option{WithConfig(testConfig()), WithLogger(zap.NewNop().Sugar())}, opts...)
	p, err := New("test", opts...)
	require.NoError(t, err)
	return p
}

// startProcessor serves p on an in-memory listener and returns a client
// connected to it. The processor is stopped when the test ends.
func startProcessor(t *testing.T, p *Processor) v1.OrcaProcessorClient {
	t.Helper()
	return v1.NewOrcaProcessorClient(serveProcessor(t, p))
}

func serveProcessor(t *testing.T, p *Processor) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Serve(ctx, lis)
	}()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("processor did not stop")
		}
	})
	return conn
}

func collect(t *testing.T, stream v1.OrcaProcessor_ExecuteDagPartClient) ([]*v1.ExecutionResult, error) {
	t.Helper()
	var results []*v1.ExecutionResult
	for {
		r, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
}

func TestNew(t *testing.T) {
	_, err := New("", WithConfig(testConfig()))
	assert.Error(t, err)

	p := newTestProcessor(t)
	assert.Equal(t, "test", p.Name())
	assert.NotNil(t, p.Registry())
	assert.Equal(t, 0, p.Registry().Len())
}

func TestProcessor_Algorithm(t *testing.T) {
	p := newTestProcessor(t)
	a, err := p.Algorithm("A", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		return 1.0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "A_1.0.0", a.FullName())

	b, err := p.AlgorithmFor("B", "1.0.0", "Daily", "1.0.0", func(context.Context, *registry.ExecutionParams) (any, error) {
		return 2.0, nil
	}, a)
	require.NoError(t, err)

	algo, ok := p.Registry().LookupHandle(b)
	require.True(t, ok)
	assert.Equal(t, "test", algo.Processor)
	assert.NotEmpty(t, algo.Runtime)
	assert.Equal(t, "Daily_1.0.0", algo.FullWindowName())
	assert.Len(t, p.Registry().Dependencies("B_1.0.0"), 1)

	stored, ok := p.Registry().Lookup("A_1.0.0")
	require.True(t, ok)
	assert.Equal(t, everyMinute, stored.WindowType)

	_, err = p.Algorithm("C", "1.0.0", nil, func(context.Context, *registry.ExecutionParams) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, registry.ErrInvalidAlgorithmArgument)
	_, err = p.AlgorithmFor("bad_name", "1.0.0", "Daily", "1.0.0", func(context.Context, *registry.ExecutionParams) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, registry.ErrInvalidAlgorithmArgument)
	assert.Equal(t, 2, p.Registry().Len())
}

func TestProcessor_RemoteAlgorithm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	core := orcamock.NewMockOrcaCoreClient(ctrl)
	p := newTestProcessor(t, WithCoreClient(core))

	prices, err := p.RemoteAlgorithm("Prices", "1.0.0", "pricing", "python3.12")
	require.NoError(t, err)
	_, err = p.Algorithm("Forecast", "1.0.0", everyMinute, func(_ context.Context, params *registry.ExecutionParams) (any, error) {
		v, _ := params.Float("Prices_1.0.0")
		return v * 2, nil
	}, prices)
	require.NoError(t, err)
	_, err = p.RemoteAlgorithm("Prices", "1.0.0", "pricing", "python3.12")
	assert.ErrorIs(t, err, registry.ErrDuplicateAlgorithm)
	assert.Equal(t, 1, p.Registry().Len())

	core.EXPECT().RegisterProcessor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pr *v1.ProcessorRegistration, _ ...grpc.CallOption) (*v1.Status, error) {
			require.Len(t, pr.GetSupportedAlgorithms(), 1)
			deps := pr.GetSupportedAlgorithms()[0].GetDependencies()
			require.Len(t, deps, 1)
			assert.Equal(t, "pricing", deps[0].GetProcessorName())
			assert.Equal(t, "python3.12", deps[0].GetProcessorRuntime())
			return &v1.Status{Received: true}, nil
		})
	require.NoError(t, p.Register(context.Background()))

	client := startProcessor(t, p)
	stream, err := client.ExecuteDagPart(context.Background(), &v1.ExecutionRequest{
		ExecId:     "exec-remote",
		Algorithms: []*v1.Algorithm{{Name: "Forecast", Version: "1.0.0"}},
		AlgorithmResults: []*v1.AlgorithmResult{{
			Algorithm: &v1.Algorithm{Name: "Prices", Version: "1.0.0"},
			Result: &v1.Result{
				Status: v1.ResultStatus_RESULT_STATUS_SUCCEEDED,
				Value:  &v1.Result_SingleValue{SingleValue: 21},
			},
		}},
	})
	require.NoError(t, err)
	results, err := collect(t, stream)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 42.0, results[0].GetAlgorithmResult().GetResult().GetSingleValue())

	stream, err = client.ExecuteDagPart(context.Background(), &v1.ExecutionRequest{
		ExecId:     "exec-remote",
		Algorithms: []*v1.Algorithm{{Name: "Prices", Version: "1.0.0"}},
	})
	require.NoError(t, err)
	_, err = collect(t, stream)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestProcessor_ExecuteDagPart(t *testing.T) {
	p := newTestProcessor(t)
	a, err := p.Algorithm("A", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		return 1.23, nil
	})
	require.NoError(t, err)
	_, err = p.Algorithm("B", "1.0.0", everyMinute, func(_ context.Context, params *registry.ExecutionParams) (any, error) {
		v, ok := params.Float("A_1.0.0")
		if !ok {
			return nil, errors.New("missing A")
		}
		return v * 2, nil
	}, a)
	require.NoError(t, err)
	client := startProcessor(t, p)

	stream, err := client.ExecuteDagPart(context.Background(), &v1.ExecutionRequest{
		ExecId: "exec-1",
		Algorithms: []*v1.Algorithm{
			{Name: "A", Version: "1.0.0"},
			{Name: "B", Version: "1.0.0"},
		},
	})
	require.NoError(t, err)
	results, err := collect(t, stream)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "exec-1", results[0].GetExecId())
	assert.Equal(t, "A", results[0].GetAlgorithmResult().GetAlgorithm().GetName())
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, results[0].GetAlgorithmResult().GetResult().GetStatus())
	assert.InDelta(t, 1.23, results[0].GetAlgorithmResult().GetResult().GetSingleValue(), 1e-9)

	assert.Equal(t, "B", results[1].GetAlgorithmResult().GetAlgorithm().GetName())
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, results[1].GetAlgorithmResult().GetResult().GetStatus())
	assert.InDelta(t, 2.46, results[1].GetAlgorithmResult().GetResult().GetSingleValue(), 1e-9)
}

func TestProcessor_ExecuteDagPart_StructuralErrors(t *testing.T) {
	p := newTestProcessor(t)
	_, err := p.Algorithm("A", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		return 1.0, nil
	})
	require.NoError(t, err)
	client := startProcessor(t, p)

	tests := []struct {
		name string
		req  *v1.ExecutionRequest
		code codes.Code
	}{
		{
			name: "unknown algorithm",
			req:  &v1.ExecutionRequest{ExecId: "exec-2", Algorithms: []*v1.Algorithm{{Name: "A", Version: "1.0.0"}, {Name: "Missing", Version: "1.0.0"}}},
			code: codes.Internal,
		},
		{
			name: "missing exec id",
			req:  &v1.ExecutionRequest{Algorithms: []*v1.Algorithm{{Name: "A", Version: "1.0.0"}}},
			code: codes.InvalidArgument,
		},
		{
			name: "duplicate algorithm",
			req:  &v1.ExecutionRequest{ExecId: "exec-3", Algorithms: []*v1.Algorithm{{Name: "A", Version: "1.0.0"}, {Name: "A", Version: "1.0.0"}}},
			code: codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := client.ExecuteDagPart(context.Background(), tt.req)
			require.NoError(t, err)
			results, err := collect(t, stream)
			require.Error(t, err)
			assert.Empty(t, results)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestProcessor_HealthCheck(t *testing.T) {
	client := startProcessor(t, newTestProcessor(t))
	resp, err := client.HealthCheck(context.Background(), &v1.HealthCheckRequest{Timestamp: time.Now().Unix()})
	require.NoError(t, err)
	assert.Equal(t, v1.HealthCheckResponse_STATUS_SERVING, resp.GetStatus())
	assert.Equal(t, "Processor is healthy", resp.GetMessage())
	assert.True(t, proto.Equal(&v1.ProcessorMetrics{}, resp.GetMetrics()))
}

func TestProcessor_ProtobufWire(t *testing.T) {
	conn := serveProcessor(t, newTestProcessor(t))

	// an empty message is a valid encoding of a health check request
	out := new(v1.HealthCheckResponse)
	err := conn.Invoke(context.Background(), v1.OrcaProcessor_HealthCheck_FullMethodName, &emptypb.Empty{}, out)
	require.NoError(t, err)
	assert.Equal(t, v1.HealthCheckResponse_STATUS_SERVING, out.GetStatus())

	b, err := proto.Marshal(&v1.HealthCheckRequest{Timestamp: 1700000000})
	require.NoError(t, err)
	req := new(v1.HealthCheckRequest)
	require.NoError(t, proto.Unmarshal(b, req))
	raw := new(v1.HealthCheckResponse)
	require.NoError(t, conn.Invoke(context.Background(), v1.OrcaProcessor_HealthCheck_FullMethodName, req, raw))
	assert.Equal(t, "Processor is healthy", raw.GetMessage())
}

func TestProcessor_GracePeriod(t *testing.T) {
	conf := testConfig()
	conf.GracePeriod = 100 * time.Millisecond
	p := newTestProcessor(t, WithConfig(conf))
	started := make(chan struct{})
	release := make(chan struct{})
	_, err := p.Algorithm("Slow", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		close(started)
		<-release
		return 1.0, nil
	})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Serve(ctx, lis)
	}()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	stream, err := v1.NewOrcaProcessorClient(conn).ExecuteDagPart(context.Background(), &v1.ExecutionRequest{
		ExecId:     "exec-slow",
		Algorithms: []*v1.Algorithm{{Name: "Slow", Version: "1.0.0"}},
	})
	require.NoError(t, err)
	<-started

	// the body outlives the grace period, the call is cut and the pool
	// drains once the body returns
	cancel()
	time.AfterFunc(500*time.Millisecond, func() { close(release) })
	_, err = collect(t, stream)
	assert.Error(t, err)
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("processor did not stop")
	}
}

func TestProcessor_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	core := orcamock.NewMockOrcaCoreClient(ctrl)
	p := newTestProcessor(t, WithCoreClient(core))
	_, err := p.Algorithm("A", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		return 1.0, nil
	})
	require.NoError(t, err)

	core.EXPECT().RegisterProcessor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pr *v1.ProcessorRegistration, _ ...grpc.CallOption) (*v1.Status, error) {
			assert.Equal(t, "test", pr.GetName())
			assert.Equal(t, "localhost:5377", pr.GetConnectionStr())
			assert.NotEmpty(t, pr.GetRuntime())
			require.Len(t, pr.GetSupportedAlgorithms(), 1)
			assert.Equal(t, "EveryMinute", pr.GetSupportedAlgorithms()[0].GetWindowType().GetName())
			assert.Equal(t, "fires every minute", pr.GetSupportedAlgorithms()[0].GetWindowType().GetDescription())
			return &v1.Status{Received: true, Message: "registered"}, nil
		})
	assert.NoError(t, p.Register(context.Background()))

	core.EXPECT().RegisterProcessor(gomock.Any(), gomock.Any()).Return(nil, status.Error(codes.Unavailable, "connection refused"))
	assert.ErrorContains(t, p.Register(context.Background()), "connection refused")
}

func TestProcessor_RegisterInvalidCore(t *testing.T) {
	conf := testConfig()
	conf.Core = "localhost"
	p := newTestProcessor(t, WithConfig(conf))
	assert.Error(t, p.Register(context.Background()))
}

func TestProcessor_Readiness(t *testing.T) {
	p := newTestProcessor(t)
	pool, err := workerpool.New(1)
	require.NoError(t, err)
	check := p.readiness(pool)

	assert.ErrorIs(t, check.IsHealthy(context.Background()), ErrNoAlgorithms)
	_, err = p.Algorithm("A", "1.0.0", everyMinute, func(context.Context, *registry.ExecutionParams) (any, error) {
		return 1.0, nil
	})
	require.NoError(t, err)
	assert.NoError(t, check.IsHealthy(context.Background()))

	pool.Stop()
	assert.ErrorIs(t, check.IsHealthy(context.Background()), ErrPoolNotRunning)
}
