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

package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/numaproj/orca/pkg/shared/util"
	"github.com/numaproj/orca/pkg/window"
)

var (
	// ErrInvalidAlgorithmArgument is returned when an algorithm's name, version or window is malformed.
	ErrInvalidAlgorithmArgument = errors.New("invalid algorithm argument")
	// ErrDuplicateAlgorithm is returned when an algorithm with the same full name is already registered.
	ErrDuplicateAlgorithm = errors.New("algorithm already registered")
	// ErrInvalidDependency is returned when a dependency does not refer to an algorithm registered
	// in the same registry, or when adding it would make the dependency graph cyclic.
	ErrInvalidDependency = errors.New("invalid dependency")
	// ErrAlgorithmNotFound is returned when no algorithm is registered under a full name.
	ErrAlgorithmNotFound = errors.New("algorithm not found")
)

// AlgorithmFunc is the body of an algorithm. The returned value is encoded as
// the algorithm's result, see the codec package for the supported values.
type AlgorithmFunc func(ctx context.Context, params *ExecutionParams) (any, error)

// ExecutionParams is the input of an algorithm invocation.
type ExecutionParams struct {
	// ExecID correlates all the algorithms of one DAG part.
	ExecID string

	// Window is the trigger of the execution, nil if the request did not carry one.
	Window *window.Window

	// Dependencies holds the decoded dependency values keyed by dependency full name.
	Dependencies map[string]any

	// Ordered holds the same values in declared dependency order, nil for a missing value.
	Ordered []any
}

// Dependency returns the value of a dependency by its full name.
func (p *ExecutionParams) Dependency(fullName string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.Dependencies[fullName]
	return v, ok
}

// Float returns a scalar dependency value.
func (p *ExecutionParams) Float(fullName string) (float64, bool) {
	v, ok := p.Dependency(fullName)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Handle identifies a registered algorithm. It is only valid for the registry
// that issued it and becomes stale when the registry is flushed.
type Handle struct {
	registry uint64
	id       uint64
	fullName string
}

// FullName returns the full name of the algorithm the handle was issued for.
func (h Handle) FullName() string {
	return h.fullName
}

// IsZero reports whether the handle was never issued.
func (h Handle) IsZero() bool {
	return h.id == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "<unregistered>"
	}
	return h.fullName
}

// Algorithm is a registered unit of computation.
type Algorithm struct {
	Name          string
	Version       string
	WindowName    string
	WindowVersion string

	// WindowType is the schema of the triggering window, announced when set.
	WindowType *window.Type
	Exec       AlgorithmFunc

	// Processor and Runtime describe the owner of the algorithm.
	Processor string
	Runtime   string

	remote bool
	handle Handle
}

// FullName is the unique key of an algorithm within a registry.
func (a *Algorithm) FullName() string {
	return FullName(a.Name, a.Version)
}

// FullWindowName is the key of the window that triggers the algorithm.
func (a *Algorithm) FullWindowName() string {
	return window.FullName(a.WindowName, a.WindowVersion)
}

// Remote reports whether the algorithm is only a reference to an algorithm
// served by another processor. Remote algorithms are never run locally.
func (a *Algorithm) Remote() bool {
	return a.remote
}

// Handle returns the handle assigned when the algorithm was registered.
func (a *Algorithm) Handle() Handle {
	return a.handle
}

// FullName joins an algorithm name and version.
func FullName(name, version string) string {
	return name + "_" + version
}

func (a *Algorithm) validate() error {
	if a == nil {
		return fmt.Errorf("%w: algorithm is nil", ErrInvalidAlgorithmArgument)
	}
	if !util.IsPascalCase(a.Name) {
		return fmt.Errorf("%w: algorithm name %q must be in PascalCase", ErrInvalidAlgorithmArgument, a.Name)
	}
	if !util.IsStrictSemVer(a.Version) {
		return fmt.Errorf("%w: version %q must follow basic semantic versioning (e.g. 1.0.0) without release portions", ErrInvalidAlgorithmArgument, a.Version)
	}
	if !util.IsPascalCase(a.WindowName) {
		return fmt.Errorf("%w: window name %q must be in PascalCase", ErrInvalidAlgorithmArgument, a.WindowName)
	}
	if !util.IsStrictSemVer(a.WindowVersion) {
		return fmt.Errorf("%w: window version %q must follow basic semantic versioning (e.g. 1.0.0) without release portions", ErrInvalidAlgorithmArgument, a.WindowVersion)
	}
	if a.WindowType != nil && a.WindowType.FullName() != a.FullWindowName() {
		return fmt.Errorf("%w: window type %s does not match window %s", ErrInvalidAlgorithmArgument, a.WindowType.FullName(), a.FullWindowName())
	}
	if a.Exec == nil {
		return fmt.Errorf("%w: algorithm %s has no body", ErrInvalidAlgorithmArgument, a.FullName())
	}
	return nil
}

func validateRemote(name, version, processor, runtime string) error {
	if !util.IsPascalCase(name) {
		return fmt.Errorf("%w: algorithm name %q must be in PascalCase", ErrInvalidAlgorithmArgument, name)
	}
	if !util.IsStrictSemVer(version) {
		return fmt.Errorf("%w: version %q must follow basic semantic versioning (e.g. 1.0.0) without release portions", ErrInvalidAlgorithmArgument, version)
	}
	if processor == "" || runtime == "" {
		return fmt.Errorf("%w: remote algorithm %s must name its processor and runtime", ErrInvalidAlgorithmArgument, FullName(name, version))
	}
	return nil
}
