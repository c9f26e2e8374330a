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
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/executor"
	"github.com/numaproj/orca/pkg/shared/logging"
)

const healthyMessage = "Processor is healthy"

// service implements the OrcaProcessor gRPC service on top of an executor.
type service struct {
	v1.UnimplementedOrcaProcessorServer
	executor *executor.Executor
	log      *zap.SugaredLogger
}

var _ v1.OrcaProcessorServer = (*service)(nil)

func newService(e *executor.Executor, log *zap.SugaredLogger) *service {
	return &service{executor: e, log: log}
}

// ExecuteDagPart runs the requested algorithms and streams one result per
// algorithm as soon as it completes. A request that cannot be run fails the
// call before any result is sent.
func (s *service) ExecuteDagPart(req *v1.ExecutionRequest, stream v1.OrcaProcessor_ExecuteDagPartServer) (err error) {
	ctx := logging.WithLogger(stream.Context(), s.log.With(zap.String("execID", req.GetExecId())))
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorw("Panic while executing DAG part", zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
			err = status.Errorf(codes.Internal, "panic while executing DAG part: %v", r)
		}
	}()

	results, err := s.executor.Execute(ctx, req)
	if err != nil {
		s.log.Errorw("Rejected DAG part", zap.String("execID", req.GetExecId()), zap.Error(err))
		return toGRPCErr(err)
	}
	for r := range results {
		if err := stream.Send(r); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return status.FromContextError(ctx.Err()).Err()
	}
	return nil
}

// HealthCheck reports the processor as serving. The metrics are not measured.
func (s *service) HealthCheck(_ context.Context, _ *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	s.log.Debug("Received health check request")
	return &v1.HealthCheckResponse{
		Status:  v1.HealthCheckResponse_STATUS_SERVING,
		Message: healthyMessage,
		Metrics: &v1.ProcessorMetrics{},
	}, nil
}

// toGRPCErr maps executor errors to gRPC status errors.
func toGRPCErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, executor.ErrMalformedRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, executor.ErrUnknownAlgorithm):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Unknown, fmt.Sprintf("failed to execute DAG part: %v", err))
	}
}
