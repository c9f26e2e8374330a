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

// Package registry keeps the algorithms of a processor, their dependencies and
// the windows that trigger them.
//
// A Registry is filled during start up and only read while serving. The only
// mutation removing entries is Flush.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/numaproj/orca/pkg/shared/logging"
)

// registryIDs tells registries apart so that a handle only resolves in the
// registry that issued it.
var registryIDs = atomic.NewUint64(0)

// Registry is an in-process catalog of algorithms.
type Registry struct {
	mu  sync.RWMutex
	log *zap.SugaredLogger
	id  uint64

	// nextID is never reset so handles issued before a flush stay stale.
	nextID     uint64
	algorithms map[string]*Algorithm
	byHandle   map[uint64]*Algorithm

	// dependencies preserves declared order per algorithm full name.
	dependencies   map[string][]*Algorithm
	windowTriggers map[string][]*Algorithm
}

// Option to apply to a Registry.
type Option func(*Registry)

// WithLogger sets the logger of the registry.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{id: registryIDs.Inc()}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logging.NewLogger().Named("registry")
	}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.algorithms = make(map[string]*Algorithm)
	r.byHandle = make(map[uint64]*Algorithm)
	r.dependencies = make(map[string][]*Algorithm)
	r.windowTriggers = make(map[string][]*Algorithm)
}

// Register validates and stores an algorithm, returning the handle other
// algorithms use to depend on it. The registry is left unchanged on error.
func (r *Registry) Register(a *Algorithm) (Handle, error) {
	return r.RegisterWithDependencies(a)
}

// RegisterWithDependencies registers an algorithm together with its
// dependencies. Every dependency is resolved before anything is stored.
func (r *Registry) RegisterWithDependencies(a *Algorithm, deps ...Handle) (Handle, error) {
	if err := a.validate(); err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fullName := a.FullName()
	if _, ok := r.algorithms[fullName]; ok {
		r.log.Errorw("Attempted to register duplicate algorithm", zap.String("algorithm", fullName))
		return Handle{}, fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, fullName)
	}
	resolved := make([]*Algorithm, 0, len(deps))
	for _, dep := range deps {
		d, err := r.resolveLocked(dep)
		if err != nil {
			return Handle{}, fmt.Errorf("cannot register %s, %w", fullName, err)
		}
		resolved = append(resolved, d)
	}

	stored := *a
	stored.remote = false
	r.storeLocked(&stored)
	r.windowTriggers[stored.FullWindowName()] = append(r.windowTriggers[stored.FullWindowName()], &stored)
	if len(resolved) > 0 {
		r.dependencies[fullName] = resolved
	}
	r.log.Infow("Registered algorithm", zap.String("algorithm", fullName), zap.String("window", stored.FullWindowName()), zap.Int("dependencies", len(resolved)))
	return stored.handle, nil
}

// RegisterRemote records an algorithm served by another processor so that
// local algorithms can depend on it. Its result is never computed here, it is
// expected among the dependency results of an execution request.
func (r *Registry) RegisterRemote(name, version, processor, runtime string) (Handle, error) {
	if err := validateRemote(name, version, processor, runtime); err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fullName := FullName(name, version)
	if _, ok := r.algorithms[fullName]; ok {
		r.log.Errorw("Attempted to register duplicate algorithm", zap.String("algorithm", fullName))
		return Handle{}, fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, fullName)
	}
	stored := &Algorithm{
		Name:      name,
		Version:   version,
		Processor: processor,
		Runtime:   runtime,
		remote:    true,
	}
	r.storeLocked(stored)
	r.log.Infow("Registered remote algorithm", zap.String("algorithm", fullName), zap.String("processor", processor), zap.String("runtime", runtime))
	return stored.handle, nil
}

func (r *Registry) storeLocked(a *Algorithm) {
	r.nextID++
	a.handle = Handle{registry: r.id, id: r.nextID, fullName: a.FullName()}
	r.algorithms[a.FullName()] = a
	r.byHandle[a.handle.id] = a
}

// AddDependency appends dep to the dependencies of the algorithm registered as
// fullName. The dependency must be a handle issued by this registry since the
// last flush, and must not make the dependency graph cyclic.
func (r *Registry) AddDependency(fullName string, dep Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.algorithms[fullName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAlgorithmNotFound, fullName)
	}
	d, err := r.resolveLocked(dep)
	if err != nil {
		return fmt.Errorf("cannot add dependency to %s, %w", fullName, err)
	}
	if r.reachableLocked(d, a) {
		return fmt.Errorf("cannot add dependency to %s, %w: %s would create a cycle", fullName, ErrInvalidDependency, d.FullName())
	}
	r.dependencies[fullName] = append(r.dependencies[fullName], d)
	r.log.Debugw("Added dependency", zap.String("algorithm", fullName), zap.String("dependency", d.FullName()))
	return nil
}

func (r *Registry) resolveLocked(h Handle) (*Algorithm, error) {
	if !h.IsZero() && h.registry != r.id {
		r.log.Errorw("Dependency handle was issued by another registry", zap.Stringer("dependency", h))
		return nil, fmt.Errorf("%w: %s was registered in another registry", ErrInvalidDependency, h)
	}
	d, ok := r.byHandle[h.id]
	if !ok {
		r.log.Errorw("Failed to find registered algorithm for dependency", zap.Stringer("dependency", h))
		return nil, fmt.Errorf("%w: %s is not a registered algorithm, all dependencies must be registered before they can be depended on", ErrInvalidDependency, h)
	}
	return d, nil
}

// reachableLocked reports whether to can be reached from from by following dependencies.
func (r *Registry) reachableLocked(from, to *Algorithm) bool {
	seen := make(map[string]struct{})
	stack := []*Algorithm{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if _, ok := seen[cur.FullName()]; ok {
			continue
		}
		seen[cur.FullName()] = struct{}{}
		stack = append(stack, r.dependencies[cur.FullName()]...)
	}
	return false
}

// Flush removes every algorithm. Handles issued before are no longer valid.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.Debug("Flushing all algorithm registrations and dependencies")
	r.reset()
}

// Has reports whether an algorithm is registered under fullName.
func (r *Registry) Has(fullName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.algorithms[fullName]
	return ok
}

// Lookup returns the algorithm registered under fullName. The returned
// algorithm is shared and must not be modified.
func (r *Registry) Lookup(fullName string) (*Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.algorithms[fullName]
	return a, ok
}

// LookupHandle returns the algorithm a handle was issued for.
func (r *Registry) LookupHandle(h Handle) (*Algorithm, bool) {
	if h.registry != r.id {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byHandle[h.id]
	return a, ok
}

// Dependencies returns the dependencies of an algorithm in declared order.
func (r *Registry) Dependencies(fullName string) []*Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Algorithm(nil), r.dependencies[fullName]...)
}

// WindowTriggers returns the algorithms triggered by a window, in registration order.
func (r *Registry) WindowTriggers(fullWindowName string) []*Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Algorithm(nil), r.windowTriggers[fullWindowName]...)
}

// Algorithms returns every algorithm run by this registry sorted by name, then
// version. Remote algorithms are left out.
func (r *Registry) Algorithms() []*Algorithm {
	r.mu.RLock()
	result := make([]*Algorithm, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		if !a.remote {
			result = append(result, a)
		}
	}
	r.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return versionLess(result[i].Version, result[j].Version)
	})
	return result
}

// Len returns the number of algorithms run by this registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, a := range r.algorithms {
		if !a.remote {
			n++
		}
	}
	return n
}

func versionLess(a, b string) bool {
	va, errA := semver.StrictNewVersion(a)
	vb, errB := semver.StrictNewVersion(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return va.LessThan(vb)
}
