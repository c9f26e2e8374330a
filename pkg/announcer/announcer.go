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

// Package announcer tells orca core which algorithms a processor serves and
// forwards windows emitted by trigger helpers.
package announcer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/metrics"
	"github.com/numaproj/orca/pkg/registry"
	"github.com/numaproj/orca/pkg/shared/logging"
	"github.com/numaproj/orca/pkg/shared/util"
	"github.com/numaproj/orca/pkg/window"
)

// Announcer sends registrations and windows to orca core.
type Announcer struct {
	client  v1.OrcaCoreClient
	timeout time.Duration
}

// Option to apply to an Announcer.
type Option func(*Announcer)

// WithTimeout bounds every call made to orca core. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Announcer) {
		a.timeout = d
	}
}

// New returns an announcer calling orca core through client.
func New(client v1.OrcaCoreClient, opts ...Option) *Announcer {
	a := &Announcer{client: client, timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Announcer) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// BuildRegistration flattens a registry into the registration of a processor.
// Algorithms are sorted by name and version, dependencies keep their declared order.
func BuildRegistration(name, runtime, connStr string, reg *registry.Registry) *v1.ProcessorRegistration {
	algorithms := reg.Algorithms()
	pr := &v1.ProcessorRegistration{
		Name:                name,
		Runtime:             runtime,
		ConnectionStr:       connStr,
		SupportedAlgorithms: make([]*v1.Algorithm, 0, len(algorithms)),
	}
	for _, a := range algorithms {
		deps := reg.Dependencies(a.FullName())
		pa := &v1.Algorithm{
			Name:         a.Name,
			Version:      a.Version,
			WindowType:   windowType(a),
			Dependencies: make([]*v1.AlgorithmDependency, 0, len(deps)),
		}
		for _, d := range deps {
			pa.Dependencies = append(pa.Dependencies, &v1.AlgorithmDependency{
				Name:             d.Name,
				Version:          d.Version,
				ProcessorName:    d.Processor,
				ProcessorRuntime: d.Runtime,
			})
		}
		pr.SupportedAlgorithms = append(pr.SupportedAlgorithms, pa)
	}
	return pr
}

func windowType(a *registry.Algorithm) *v1.WindowType {
	if a.WindowType != nil {
		return a.WindowType.ToProto()
	}
	return &v1.WindowType{Name: a.WindowName, Version: a.WindowVersion}
}

// Register sends the registration of a processor once. Failures are returned
// to the caller, nothing is retried.
func (a *Announcer) Register(ctx context.Context, registration *v1.ProcessorRegistration) error {
	log := logging.FromContext(ctx)
	ctx, cancel := a.callContext(ctx)
	defer cancel()
	log.Infow("Registering processor with orca core", zap.String("processor", registration.GetName()), zap.Int("algorithms", len(registration.GetSupportedAlgorithms())))
	resp, err := a.client.RegisterProcessor(ctx, registration)
	if err != nil {
		metrics.Registrations.WithLabelValues(registration.GetName(), "error").Inc()
		return fmt.Errorf("failed to register processor %s with orca core, %w", registration.GetName(), util.ToRemoteErr("RegisterProcessor", err))
	}
	if !resp.GetReceived() {
		metrics.Registrations.WithLabelValues(registration.GetName(), "rejected").Inc()
		return fmt.Errorf("orca core did not accept the registration of processor %s: %s", registration.GetName(), resp.GetMessage())
	}
	metrics.Registrations.WithLabelValues(registration.GetName(), "ok").Inc()
	log.Infow("Registered processor with orca core", zap.String("processor", registration.GetName()), zap.String("message", resp.GetMessage()))
	return nil
}

// EmitWindow sends a window to orca core, which triggers the algorithms
// registered against the window's type.
func (a *Announcer) EmitWindow(ctx context.Context, w *window.Window) (*v1.WindowEmitStatus, error) {
	if w == nil {
		return nil, fmt.Errorf("window is nil")
	}
	if err := w.Validate(nil); err != nil {
		return nil, err
	}
	pw, err := w.ToProto()
	if err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)
	ctx, cancel := a.callContext(ctx)
	defer cancel()
	status, err := a.client.EmitWindow(ctx, pw)
	if err != nil {
		metrics.WindowsEmitted.WithLabelValues(w.FullTypeName(), "error").Inc()
		return nil, fmt.Errorf("failed to emit window %s, %w", w.FullTypeName(), util.ToRemoteErr("EmitWindow", err))
	}
	metrics.WindowsEmitted.WithLabelValues(w.FullTypeName(), "ok").Inc()
	log.Infow("Emitted window", zap.String("window", w.FullTypeName()), zap.Time("from", w.From), zap.Time("to", w.To), zap.String("status", status.GetStatus()))
	return status, nil
}
