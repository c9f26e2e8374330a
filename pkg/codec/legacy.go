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

package codec

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
)

const maxDepth = 32

// encodeLegacy converts values that are not one of the explicit result types.
func encodeLegacy(v any) (r *v1.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("%w: %v", ErrUnencodable, p)
		}
	}()

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return &v1.Result{}, nil
	}
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		doc, err := normalizeValue(rv, 0)
		if err != nil {
			return nil, err
		}
		return structResult(doc.(map[string]any))
	case isNumber(rv.Kind()):
		return scalarResult(toFloat(rv))
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return scalarResult(1)
		}
		return scalarResult(0)
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return structResult(map[string]any{"value": string(rv.Bytes())})
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		if values, ok := numericSequence(rv); ok {
			return vectorResult(values)
		}
	}
	return fallback(v, rv)
}

// fallback converts a struct with exported fields into the document of its
// fields, anything else into {"value": <string form>}.
func fallback(v any, rv reflect.Value) (*v1.Result, error) {
	if rv.Kind() == reflect.Struct {
		if doc, err := structFields(rv); err == nil && len(doc) > 0 {
			if r, err := structResult(doc); err == nil {
				return r, nil
			}
		}
	}
	return structResult(map[string]any{"value": fmt.Sprint(v)})
}

func structResult(doc map[string]any) (*v1.Result, error) {
	s, err := toStruct(doc)
	if err != nil {
		return nil, err
	}
	return &v1.Result{Value: &v1.Result_StructValue{StructValue: s}}, nil
}

// structFields returns the exported fields of a struct keyed by their json
// name. Fields of unexported types cannot be read and fail the conversion.
func structFields(rv reflect.Value) (doc map[string]any, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrUnencodable, p)
		}
	}()
	out := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(rv.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return out, nil
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out, err := normalizeValue(reflect.ValueOf(m), 0)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// normalizeValue rewrites a value into the types a structured document accepts.
func normalizeValue(rv reflect.Value, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: document nested deeper than %d levels", ErrUnencodable, maxDepth)
	}
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil, nil
	}
	if !rv.CanInterface() {
		return nil, fmt.Errorf("%w: unexported value of type %s", ErrUnencodable, rv.Type())
	}
	if t, ok := rv.Interface().(time.Time); ok {
		return t.Format(time.RFC3339Nano), nil
	}
	switch k := rv.Kind(); {
	case k == reflect.Bool:
		return rv.Bool(), nil
	case k == reflect.String:
		return rv.String(), nil
	case isNumber(k):
		f := toFloat(rv)
		if !finite(f) {
			return nil, fmt.Errorf("%w: %v is not a finite number", ErrUnencodable, f)
		}
		return f, nil
	case k == reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keys must be strings, got %s", ErrUnencodable, rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			v, err := normalizeValue(iter.Value(), depth+1)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = v
		}
		return out, nil
	case k == reflect.Slice || k == reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := normalizeValue(rv.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case k == reflect.Struct:
		fields, err := structFields(rv)
		if err != nil {
			return nil, err
		}
		return normalizeValue(reflect.ValueOf(fields), depth+1)
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrUnencodable, rv.Type())
	}
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// numericSequence returns the elements of a slice or array when all of them are numbers.
func numericSequence(rv reflect.Value) ([]float64, bool) {
	out := make([]float64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e := indirect(rv.Index(i))
		if !e.IsValid() || !isNumber(e.Kind()) {
			return nil, false
		}
		out[i] = toFloat(e)
	}
	return out, true
}
