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
	"net"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/shared/logging"
)

// server wraps the gRPC server serving the OrcaProcessor service.
type server struct {
	grpcServer  *grpc.Server
	gracePeriod func() time.Duration
	log         *zap.SugaredLogger
}

func newServer(ctx context.Context, svc v1.OrcaProcessorServer, maxMessageSize int, gracePeriod func() time.Duration) *server {
	// latency histograms are disabled by default in grpc_prometheus
	grpc_prometheus.EnableHandlingTimeHistogram()
	sOpts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_prometheus.UnaryServerInterceptor,
		)),
		grpc.StreamInterceptor(grpc_middleware.ChainStreamServer(
			grpc_prometheus.StreamServerInterceptor,
		)),
	}
	grpcServer := grpc.NewServer(sOpts...)
	v1.RegisterOrcaProcessorServer(grpcServer, svc)
	grpc_prometheus.Register(grpcServer)
	return &server{
		grpcServer:  grpcServer,
		gracePeriod: gracePeriod,
		log:         logging.FromContext(ctx),
	}
}

// serve blocks until ctx is done or the gRPC server fails, then stops the server.
func (s *server) serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.stop()
		return nil
	})
	return g.Wait()
}

// stop lets in-flight calls finish within the grace period, then closes all
// the remaining connections.
func (s *server) stop() {
	grace := s.gracePeriod()
	s.log.Infow("Stopping gRPC server", zap.Duration("gracePeriod", grace))
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		s.log.Warnw("Grace period exceeded, forcing gRPC server to stop", zap.Duration("gracePeriod", grace))
		s.grpcServer.Stop()
		<-stopped
	}
}
