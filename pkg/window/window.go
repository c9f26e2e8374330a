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

// Package window defines window types, the schema of a trigger, and windows,
// the trigger instances that activate algorithms.
package window

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/shared/util"
)

var (
	// ErrInvalidWindowType is returned when a window type fails validation.
	ErrInvalidWindowType = errors.New("invalid window type")
	// ErrInvalidMetadataField is returned when a metadata field has an empty name or description.
	ErrInvalidMetadataField = errors.New("invalid metadata field")
)

// MetadataField describes one entry of a window's metadata.
type MetadataField struct {
	Name        string
	Description string
}

func (f MetadataField) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidMetadataField)
	}
	if f.Description == "" {
		return fmt.Errorf("%w: description of %q cannot be empty", ErrInvalidMetadataField, f.Name)
	}
	return nil
}

// Type is the schema of a window. It cannot be changed once created.
type Type struct {
	name        string
	version     string
	description string
	fields      []MetadataField
}

// NewType validates and returns a window type.
func NewType(name, version, description string, fields ...MetadataField) (*Type, error) {
	if !util.IsPascalCase(name) {
		return nil, fmt.Errorf("%w: name %q must be in PascalCase", ErrInvalidWindowType, name)
	}
	if !util.IsStrictSemVer(version) {
		return nil, fmt.Errorf("%w: version %q must be a semantic version without suffix", ErrInvalidWindowType, version)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description of %s cannot be empty", ErrInvalidWindowType, name)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate metadata field %q in %s", ErrInvalidWindowType, f.Name, name)
		}
		seen[f.Name] = struct{}{}
	}
	return &Type{
		name:        name,
		version:     version,
		description: description,
		fields:      append([]MetadataField(nil), fields...),
	}, nil
}

// MustNewType is like NewType but panics on an invalid definition. It is meant
// for package level window type declarations.
func MustNewType(name, version, description string, fields ...MetadataField) *Type {
	t, err := NewType(name, version, description, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) Name() string        { return t.name }
func (t *Type) Version() string     { return t.version }
func (t *Type) Description() string { return t.description }

// FullName returns the name and version joined by an underscore.
func (t *Type) FullName() string {
	return FullName(t.name, t.version)
}

// MetadataFields returns a copy of the metadata fields in declared order.
func (t *Type) MetadataFields() []MetadataField {
	return append([]MetadataField(nil), t.fields...)
}

// ToProto converts the window type to its wire form.
func (t *Type) ToProto() *v1.WindowType {
	if t == nil {
		return nil
	}
	fields := make([]*v1.MetadataField, 0, len(t.fields))
	for _, f := range t.fields {
		fields = append(fields, &v1.MetadataField{Name: f.Name, Description: f.Description})
	}
	return &v1.WindowType{
		Name:           t.name,
		Version:        t.version,
		Description:    t.description,
		MetadataFields: fields,
	}
}

// FullName is the key windows and window types are indexed by.
func FullName(name, version string) string {
	return name + "_" + version
}

// Window is a trigger instance covering the interval [From, To].
type Window struct {
	From        time.Time
	To          time.Time
	TypeName    string
	TypeVersion string
	Origin      string
	Metadata    map[string]any
}

// New returns a window of the given type.
func New(t *Type, from, to time.Time, origin string, metadata map[string]any) *Window {
	return &Window{
		From:        from,
		To:          to,
		TypeName:    t.Name(),
		TypeVersion: t.Version(),
		Origin:      origin,
		Metadata:    metadata,
	}
}

// FullTypeName returns the key of the algorithms triggered by the window.
func (w *Window) FullTypeName() string {
	return FullName(w.TypeName, w.TypeVersion)
}

// Validate checks that the window is well formed and, when its type is given,
// that every metadata key is declared by the type.
func (w *Window) Validate(t *Type) error {
	if w.TypeName == "" || w.TypeVersion == "" {
		return fmt.Errorf("window type name and version are required")
	}
	if w.To.Before(w.From) {
		return fmt.Errorf("window end %s is before its start %s", w.To.Format(time.RFC3339), w.From.Format(time.RFC3339))
	}
	if t == nil {
		return nil
	}
	if t.FullName() != w.FullTypeName() {
		return fmt.Errorf("window of type %s does not match %s", w.FullTypeName(), t.FullName())
	}
	declared := make(map[string]struct{}, len(t.fields))
	for _, f := range t.fields {
		declared[f.Name] = struct{}{}
	}
	for k := range w.Metadata {
		if _, ok := declared[k]; !ok {
			return fmt.Errorf("metadata field %q is not declared by %s", k, t.FullName())
		}
	}
	return nil
}

// ToProto converts the window to its wire form, times in unix seconds.
// Metadata values must be representable as JSON.
func (w *Window) ToProto() (*v1.Window, error) {
	if w == nil {
		return nil, nil
	}
	var metadata *structpb.Struct
	if w.Metadata != nil {
		var err error
		if metadata, err = structpb.NewStruct(w.Metadata); err != nil {
			return nil, fmt.Errorf("invalid metadata of window %s, %w", w.FullTypeName(), err)
		}
	}
	return &v1.Window{
		TimeFrom:          uint64(w.From.Unix()),
		TimeTo:            uint64(w.To.Unix()),
		WindowTypeName:    w.TypeName,
		WindowTypeVersion: w.TypeVersion,
		Origin:            w.Origin,
		Metadata:          metadata,
	}, nil
}

// FromProto converts a wire window. A nil input gives a nil window.
func FromProto(w *v1.Window) *Window {
	if w == nil {
		return nil
	}
	return &Window{
		From:        time.Unix(int64(w.GetTimeFrom()), 0).UTC(),
		To:          time.Unix(int64(w.GetTimeTo()), 0).UTC(),
		TypeName:    w.GetWindowTypeName(),
		TypeVersion: w.GetWindowTypeVersion(),
		Origin:      w.GetOrigin(),
		Metadata:    metadataFromProto(w.GetMetadata()),
	}
}

func metadataFromProto(s *structpb.Struct) map[string]any {
	if s == nil {
		return nil
	}
	return s.AsMap()
}
