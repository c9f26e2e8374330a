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


package metrics

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/shared/logging"
	sharedtls "github.com/numaproj/orca/pkg/shared/tls"
)

// metricsServer runs an HTTP server to:
// 1. Expose metrics;
// 2. Serve liveness and readiness probes;
// 3. List the algorithms the processor serves.
type metricsServer struct {
	port     int
	registry *registry.Registry
	tls      bool
	pprof    bool
	// Functions that health check executes
	healthCheckExecutors []func() error
}

type Option func(*metricsServer)

// WithHealthCheckExecutor appends a health check executor
func WithHealthCheckExecutor(f func() error) Option {
	return func(m *metricsServer) {
		m.healthCheckExecutors = append(m.healthCheckExecutors, f)
	}
}

// WithHealthChecker appends a health check executor calling hc with the given timeout.
func WithHealthChecker(ctx context.Context, hc HealthChecker, timeout time.Duration) Option {
	return WithHealthCheckExecutor(func() error {
		cctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return hc.IsHealthy(cctx)
	})
}

// WithRegistry serves the algorithms of reg under /api/v1/algorithms
func WithRegistry(reg *registry.Registry) Option {
	return func(m *metricsServer) {
		m.registry = reg
	}
}

// WithTLS serves over HTTPS with a self-signed certificate
func WithTLS(enabled bool) Option {
	return func(m *metricsServer) {
		m.tls = enabled
	}
}

// WithPprof enables the /debug/pprof endpoints
func WithPprof(enabled bool) Option {
	return func(m *metricsServer) {
		m.pprof = enabled
	}
}

// NewMetricsServer returns a Prometheus metrics server instance listening on the given port.
func NewMetricsServer(port int, opts ...Option) *metricsServer {
	m := &metricsServer{port: port}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// AlgorithmInfo is the JSON view of a registered algorithm.
type AlgorithmInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Window       string   `json:"window"`
	Dependencies []string `json:"dependencies"`
}

func (ms *metricsServer) ready(c *gin.Context) {
	for _, ex := range ms.healthCheckExecutors {
		if err := ex(); err != nil {
			logging.FromContext(c.Request.Context()).Errorw("Failed to execute health check", zap.Error(err))
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (ms *metricsServer) algorithms(c *gin.Context) {
	infos := make([]AlgorithmInfo, 0)
	if ms.registry != nil {
		for _, a := range ms.registry.Algorithms() {
			deps := make([]string, 0)
			for _, d := range ms.registry.Dependencies(a.FullName()) {
				deps = append(deps, d.FullName())
			}
			sort.Strings(deps)
			infos = append(infos, AlgorithmInfo{
				Name:         a.Name,
				Version:      a.Version,
				Window:       a.FullWindowName(),
				Dependencies: deps,
			})
		}
	}
	c.JSON(http.StatusOK, infos)
}

// handler builds the router serving all the endpoints.
func (ms *metricsServer) handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/livez", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/readyz", ms.ready)
	router.GET("/api/v1/algorithms", ms.algorithms)
	if ms.pprof {
		debug := router.Group("/debug/pprof")
		debug.GET("/", gin.WrapF(pprof.Index))
		debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		debug.GET("/profile", gin.WrapF(pprof.Profile))
		debug.GET("/symbol", gin.WrapF(pprof.Symbol))
		debug.GET("/trace", gin.WrapF(pprof.Trace))
		for _, profile := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
			debug.GET("/"+profile, gin.WrapH(pprof.Handler(profile)))
		}
	}
	return router
}

// Start function starts the HTTP(S) service to expose metrics, it returns a shutdown function and an error if any
func (ms *metricsServer) Start(ctx context.Context) (func(ctx context.Context) error, error) {
	log := logging.FromContext(ctx)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", ms.port),
		Handler:           ms.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if ms.tls {
		log.Info("Generating self-signed certificate")
		tlsConfig, err := sharedtls.ServerConfig(sharedtls.CertOptions{})
		if err != nil {
			return nil, err
		}
		httpServer.TLSConfig = tlsConfig
	}
	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s, %w", httpServer.Addr, err)
	}
	if httpServer.TLSConfig != nil {
		ln = tls.NewListener(ln, httpServer.TLSConfig)
	}

	go func() {
		log.Infow("Starting metrics server", zap.String("addr", httpServer.Addr), zap.Bool("tls", ms.tls))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("Metrics server stopped unexpectedly", zap.Error(err))
		}
		log.Info("Metrics server shutdown")
	}()
	return httpServer.Shutdown, nil
}
