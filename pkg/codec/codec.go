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

// Package codec converts the values returned by algorithms into wire results,
// and wire results back into values handed to dependent algorithms.
//
// Algorithms should return one of Scalar, Vector, Struct or None. Any other
// value goes through a best effort conversion kept for compatibility:
// string keyed maps become structured documents, numbers and booleans become
// scalars, byte slices become {"value": <text>}, numeric sequences become
// vectors and structs become documents of their fields, falling back to
// {"value": <string form>}.
package codec

import (
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
)

// ErrUnencodable is returned when a value has no wire representation.
var ErrUnencodable = errors.New("value cannot be encoded")

// Value is a result built explicitly by an algorithm.
type Value interface {
	isValue()
}

// Scalar is a single number result.
type Scalar float64

// Vector is an ordered sequence of numbers.
type Vector []float64

// Struct is a structured document. Values must be representable as JSON.
type Struct map[string]any

type noneValue struct{}

// None is the result of an algorithm that produces no value.
var None Value = noneValue{}

func (Scalar) isValue()    {}
func (Vector) isValue()    {}
func (Struct) isValue()    {}
func (noneValue) isValue() {}

// Encode converts v into a succeeded result stamped with ts. When v cannot be
// represented the result carries the handled failed status and no value, and
// the reason is returned as the error.
func Encode(v any, ts time.Time) (*v1.Result, error) {
	r, err := encode(v)
	if err != nil {
		return &v1.Result{
			Status:    v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED,
			Timestamp: ts.Unix(),
		}, err
	}
	r.Status = v1.ResultStatus_RESULT_STATUS_SUCCEEDED
	r.Timestamp = ts.Unix()
	return r, nil
}

func encode(v any) (*v1.Result, error) {
	switch x := v.(type) {
	case nil, noneValue:
		return &v1.Result{}, nil
	case Scalar:
		return scalarResult(float64(x))
	case Vector:
		return vectorResult(x)
	case Struct:
		doc, err := toStruct(map[string]any(x))
		if err != nil {
			return nil, err
		}
		return &v1.Result{Value: &v1.Result_StructValue{StructValue: doc}}, nil
	default:
		return encodeLegacy(v)
	}
}

func scalarResult(f float64) (*v1.Result, error) {
	if !finite(f) {
		return nil, fmt.Errorf("%w: %v is not a finite number", ErrUnencodable, f)
	}
	return &v1.Result{Value: &v1.Result_SingleValue{SingleValue: f}}, nil
}

func vectorResult(values []float64) (*v1.Result, error) {
	out := make([]float64, len(values))
	for i, f := range values {
		if !finite(f) {
			return nil, fmt.Errorf("%w: element %d (%v) is not a finite number", ErrUnencodable, i, f)
		}
		out[i] = f
	}
	return &v1.Result{Value: &v1.Result_FloatValues{FloatValues: &v1.FloatArray{Values: out}}}, nil
}

// toStruct validates a document and converts it into its wire form.
func toStruct(m map[string]any) (*structpb.Struct, error) {
	normalized, err := normalizeMap(m)
	if err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return s, nil
}

// Failure builds the result of an algorithm that returned an error or panicked.
func Failure(err error, trace string, ts time.Time) *v1.Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &v1.Result{
		Status: v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED,
		Value: &v1.Result_StructValue{StructValue: &structpb.Struct{
			Fields: map[string]*structpb.Value{
				"error":       structpb.NewStringValue(msg),
				"stack_trace": structpb.NewStringValue(trace),
			},
		}},
		Timestamp: ts.Unix(),
	}
}

// HandledFailure builds a failed result carrying only an error message.
func HandledFailure(msg string, ts time.Time) *v1.Result {
	return &v1.Result{
		Status: v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED,
		Value: &v1.Result_StructValue{StructValue: &structpb.Struct{
			Fields: map[string]*structpb.Value{"error": structpb.NewStringValue(msg)},
		}},
		Timestamp: ts.Unix(),
	}
}

// Decode returns the value held by a result: a float64 for a scalar, a
// []float64 for a vector, a map[string]any for a document and nil when no
// value is set. Every call returns a fresh copy, so the caller owns it.
func Decode(r *v1.Result) any {
	switch x := r.GetValue().(type) {
	case *v1.Result_SingleValue:
		return x.SingleValue
	case *v1.Result_FloatValues:
		return append([]float64{}, x.FloatValues.GetValues()...)
	case *v1.Result_StructValue:
		return x.StructValue.AsMap()
	default:
		return nil
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
