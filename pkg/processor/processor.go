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


// Package processor hosts algorithms behind the OrcaProcessor gRPC service.
// A processor registers its algorithms with orca core at startup and then
// runs the DAG parts orca core sends it until it is told to stop.
package processor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/numaproj/orca"
	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/announcer"
	"github.com/numaproj/orca/pkg/config"
	"github.com/numaproj/orca/pkg/executor"
	"github.com/numaproj/orca/pkg/metrics"
	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/shared/logging"
	"github.com/numaproj/orca/pkg/window"
	"github.com/numaproj/orca/pkg/workerpool"
)

const componentName = "processor"

var (
	ErrNoAlgorithms   = errors.New("no algorithm registered")
	ErrPoolNotRunning = errors.New("worker pool is not running")
)

// Processor is a named set of algorithms served to orca core.
type Processor struct {
	name     string
	runtime  string
	conf     *config.GlobalConfig
	registry *registry.Registry
	core     v1.OrcaCoreClient
	log      *zap.SugaredLogger
}

// Option to apply to a Processor.
type Option func(*Processor)

// WithConfig sets a fixed configuration instead of loading it from the environment.
func WithConfig(c config.Config) Option {
	return func(p *Processor) {
		p.conf = config.NewGlobalConfig(c)
	}
}

// WithGlobalConfig sets a configuration that may change while the processor runs.
func WithGlobalConfig(g *config.GlobalConfig) Option {
	return func(p *Processor) {
		p.conf = g
	}
}

// WithLogger sets the logger of the processor.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Processor) {
		p.log = l
	}
}

// WithCoreClient sets the client used to reach orca core instead of dialing it.
func WithCoreClient(c v1.OrcaCoreClient) Option {
	return func(p *Processor) {
		p.core = c
	}
}

// WithRegistry sets the registry holding the algorithms of the processor.
func WithRegistry(r *registry.Registry) Option {
	return func(p *Processor) {
		p.registry = r
	}
}

// New returns a processor. Unless WithConfig or WithGlobalConfig is given the
// configuration is loaded from the environment.
func New(name string, opts ...Option) (*Processor, error) {
	if name == "" {
		return nil, fmt.Errorf("processor name cannot be empty")
	}
	p := &Processor{
		name:    name,
		runtime: runtime.Version(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.log == nil {
		p.log = logging.NewLogger().Named(componentName).With(zap.String("processor", name))
	}
	if p.conf == nil {
		conf, err := config.LoadConfig(func(err error) {
			p.log.Errorw("Failed to reload configuration, keeping the previous one", zap.Error(err))
		}, config.WithOnChange(func(c config.Config) {
			if err := logging.SetLevel(c.LogLevel); err != nil {
				p.log.Warnw("Failed to change the log level", zap.Error(err))
			}
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration, %w", err)
		}
		p.conf = conf
	}
	if err := logging.SetLevel(p.conf.Get().LogLevel); err != nil {
		return nil, err
	}
	if p.registry == nil {
		p.registry = registry.New(registry.WithLogger(p.log.Named("registry")))
	}
	return p, nil
}

// Name returns the name of the processor.
func (p *Processor) Name() string {
	return p.name
}

// Registry returns the registry holding the algorithms of the processor.
func (p *Processor) Registry() *registry.Registry {
	return p.registry
}

// Algorithm registers fn as the algorithm name at version, triggered by windows
// of type wt and fed with the results of dependsOn.
func (p *Processor) Algorithm(name, version string, wt *window.Type, fn registry.AlgorithmFunc, dependsOn ...registry.Handle) (registry.Handle, error) {
	if wt == nil {
		return registry.Handle{}, fmt.Errorf("%w: window type of algorithm %s cannot be nil", registry.ErrInvalidAlgorithmArgument, registry.FullName(name, version))
	}
	return p.register(&registry.Algorithm{
		Name:          name,
		Version:       version,
		WindowName:    wt.Name(),
		WindowVersion: wt.Version(),
		WindowType:    wt,
		Exec:          fn,
	}, dependsOn)
}

// AlgorithmFor is like Algorithm for a window type known only by name and version.
func (p *Processor) AlgorithmFor(name, version, windowName, windowVersion string, fn registry.AlgorithmFunc, dependsOn ...registry.Handle) (registry.Handle, error) {
	return p.register(&registry.Algorithm{
		Name:          name,
		Version:       version,
		WindowName:    windowName,
		WindowVersion: windowVersion,
		Exec:          fn,
	}, dependsOn)
}

// RemoteAlgorithm declares an algorithm served by another processor so that
// local algorithms can depend on it. Orca core supplies its result with every
// request that needs it.
func (p *Processor) RemoteAlgorithm(name, version, processor, runtime string) (registry.Handle, error) {
	h, err := p.registry.RegisterRemote(name, version, processor, runtime)
	if err != nil {
		return h, err
	}
	p.log.Infow("Declared remote algorithm", zap.String("algorithm", h.FullName()), zap.String("processor", processor))
	return h, nil
}

func (p *Processor) register(a *registry.Algorithm, dependsOn []registry.Handle) (registry.Handle, error) {
	a.Processor = p.name
	a.Runtime = p.runtime
	h, err := p.registry.RegisterWithDependencies(a, dependsOn...)
	if err != nil {
		return h, err
	}
	metrics.RegisteredAlgorithms.WithLabelValues(p.name).Set(float64(p.registry.Len()))
	p.log.Infow("Registered algorithm", zap.String("algorithm", h.FullName()), zap.String("window", a.FullWindowName()), zap.Int("dependencies", len(dependsOn)))
	return h, nil
}

// Register announces the algorithms of the processor to orca core once.
func (p *Processor) Register(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, p.log)
	conf := p.conf.Get()
	client := p.core
	if client == nil {
		conn, err := announcer.Dial(conf.Core, conf.MaxMessageSize)
		if err != nil {
			return err
		}
		defer func() { _ = conn.Close() }()
		client = v1.NewOrcaCoreClient(conn)
	}
	registration := announcer.BuildRegistration(p.name, p.runtime, conf.Address(), p.registry)
	return announcer.New(client).Register(ctx, registration)
}

// Run registers the processor with orca core and serves until ctx is done or
// the process receives SIGINT or SIGTERM.
func (p *Processor) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	lis, err := p.listen()
	if err != nil {
		return err
	}
	if err := p.Register(ctx); err != nil {
		_ = lis.Close()
		p.log.Errorw("Failed to register processor", zap.Error(err))
		return err
	}
	return p.Serve(ctx, lis)
}

// Start serves without registering until ctx is done or the process receives
// SIGINT or SIGTERM.
func (p *Processor) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	lis, err := p.listen()
	if err != nil {
		return err
	}
	return p.Serve(ctx, lis)
}

func (p *Processor) listen() (net.Listener, error) {
	addr := fmt.Sprintf(":%d", p.conf.Get().Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		p.log.Errorw("Failed to listen", zap.String("addr", addr), zap.Error(err))
		return nil, fmt.Errorf("failed to listen on %s, %w", addr, err)
	}
	return lis, nil
}

// Serve runs the gRPC server on lis until ctx is done. In-flight calls are
// given the configured grace period before the server is stopped, the worker
// pool is drained afterwards.
func (p *Processor) Serve(ctx context.Context, lis net.Listener) error {
	conf := p.conf.Get()
	ctx = logging.WithLogger(ctx, p.log)

	pool, err := workerpool.New(conf.MaxWorkers, workerpool.WithLogger(p.log.Named("workerpool")))
	if err != nil {
		_ = lis.Close()
		return err
	}
	defer pool.Stop()
	exec := executor.New(p.registry, pool,
		executor.WithLogger(p.log.Named("executor")),
		executor.WithProcessorName(p.name))

	version := orca.GetVersion()
	metrics.BuildInfo.WithLabelValues(componentName, p.name, version.Version, version.Platform).Set(1)
	metrics.RegisteredAlgorithms.WithLabelValues(p.name).Set(float64(p.registry.Len()))
	metrics.WorkerPoolSize.WithLabelValues(p.name).Set(float64(pool.Size()))

	if conf.MetricsPort > 0 {
		ms := metrics.NewMetricsServer(conf.MetricsPort,
			metrics.WithRegistry(p.registry),
			metrics.WithTLS(conf.MetricsTLS),
			metrics.WithPprof(conf.Pprof),
			metrics.WithHealthChecker(ctx, p.readiness(pool), 5*time.Second))
		shutdown, err := ms.Start(ctx)
		if err != nil {
			_ = lis.Close()
			return fmt.Errorf("failed to start metrics server, %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				p.log.Warnw("Failed to shutdown metrics server", zap.Error(err))
			}
		}()
	}

	s := newServer(ctx, newService(exec, p.log), conf.MaxMessageSize, p.conf.GetGracePeriod)
	p.log.Infow("Processor started",
		zap.String("addr", lis.Addr().String()),
		zap.Int("algorithms", p.registry.Len()),
		zap.Int("workers", pool.Size()),
		zap.String("runtime", p.runtime))
	err = s.serve(ctx, lis)
	p.log.Info("Processor shutdown complete")
	return err
}

// readiness reports the processor ready once it has algorithms to serve and
// workers to run them on.
func (p *Processor) readiness(pool *workerpool.Pool) metrics.HealthChecker {
	return metrics.HealthCheckerFunc(func(context.Context) error {
		if p.registry.Len() == 0 {
			return ErrNoAlgorithms
		}
		if !pool.Running() {
			return ErrPoolNotRunning
		}
		return nil
	})
}
