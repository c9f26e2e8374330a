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
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
)

var ts = time.Unix(1700000000, 0)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  any
	}{
		{"scalar", Scalar(1.23), 1.23},
		{"zero scalar", Scalar(0), 0.0},
		{"negative scalar", Scalar(-42.5), -42.5},
		{"vector", Vector{1, 2.5, -3}, []float64{1, 2.5, -3}},
		{"empty vector", Vector{}, []float64{}},
		{"struct", Struct{"a": 1.0, "b": "x", "c": true, "d": nil}, map[string]any{"a": 1.0, "b": "x", "c": true, "d": nil}},
		{"nested struct", Struct{"inner": map[string]any{"list": []any{1.0, "two"}}}, map[string]any{"inner": map[string]any{"list": []any{1.0, "two"}}}},
		{"none", None, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Encode(tt.value, ts)
			require.NoError(t, err)
			assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, r.GetStatus())
			assert.Equal(t, ts.Unix(), r.GetTimestamp())

			b, err := proto.Marshal(r)
			require.NoError(t, err)
			wire := new(v1.Result)
			require.NoError(t, proto.Unmarshal(b, wire))
			assert.Equal(t, tt.want, Decode(wire))
		})
	}
}

func TestEncode_StructCanonicalised(t *testing.T) {
	r, err := Encode(Struct{"count": 3, "values": []float64{1, 2}}, ts)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": 3.0, "values": []any{1.0, 2.0}}, r.GetStructValue().AsMap())
}

func TestEncode_Nil(t *testing.T) {
	r, err := Encode(nil, ts)
	require.NoError(t, err)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, r.GetStatus())
	assert.Nil(t, r.GetValue())
}

type unit struct {
	Unit string
}

type reading struct {
	Sensor string  `json:"sensor"`
	Value  float64 `json:"value"`
	Inner  unit    `json:"inner"`
}

type opaque struct {
	hidden int
}

func TestEncode_Legacy(t *testing.T) {
	r := reading{Sensor: "s1", Value: 2}
	r.Inner.Unit = "C"

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int", 3, 3.0},
		{"uint8", uint8(7), 7.0},
		{"float32", float32(0.5), 0.5},
		{"pointer to number", ptr(1.5), 1.5},
		{"true", true, 1.0},
		{"false", false, 0.0},
		{"float slice", []float64{1, 2}, []float64{1, 2}},
		{"int array", [3]int{1, 2, 3}, []float64{1, 2, 3}},
		{"mixed numbers", []any{1, 2.5, uint(3)}, []float64{1, 2.5, 3}},
		{"bytes", []byte("raw"), map[string]any{"value": "raw"}},
		{"typed map", map[string]float64{"a": 1}, map[string]any{"a": 1.0}},
		{"any map", map[string]any{"a": []int{1}}, map[string]any{"a": []any{1.0}}},
		{"struct", r, map[string]any{"sensor": "s1", "value": 2.0, "inner": map[string]any{"Unit": "C"}}},
		{"pointer to struct", &r, map[string]any{"sensor": "s1", "value": 2.0, "inner": map[string]any{"Unit": "C"}}},
		{"string", "hello", map[string]any{"value": "hello"}},
		{"string slice", []string{"a", "b"}, map[string]any{"value": "[a b]"}},
		{"int keyed map", map[int]string{1: "a"}, map[string]any{"value": "map[1:a]"}},
		{"unexported fields", opaque{hidden: 1}, map[string]any{"value": "{1}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in, ts)
			require.NoError(t, err)
			assert.Equal(t, v1.ResultStatus_RESULT_STATUS_SUCCEEDED, got.GetStatus())
			assert.Equal(t, ts.Unix(), got.GetTimestamp())
			assert.Equal(t, tt.want, Decode(got))
		})
	}
}

func TestEncode_HandledFailure(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nan scalar", Scalar(math.NaN())},
		{"inf in vector", Vector{1, math.Inf(1)}},
		{"channel in struct", Struct{"c": make(chan int)}},
		{"inf number", math.Inf(-1)},
		{"func in map", map[string]any{"f": func() {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Encode(tt.in, ts)
			assert.ErrorIs(t, err, ErrUnencodable)
			require.NotNil(t, r)
			assert.Equal(t, v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, r.GetStatus())
			assert.Equal(t, ts.Unix(), r.GetTimestamp())
			assert.Nil(t, r.GetValue())
		})
	}
}

func TestDecode_ReturnsPrivateCopy(t *testing.T) {
	r, err := Encode(Struct{"x": 1, "nested": map[string]any{"y": 2}}, ts)
	require.NoError(t, err)

	first := Decode(r).(map[string]any)
	first["added"] = true
	first["nested"].(map[string]any)["y"] = "changed"

	assert.Equal(t, map[string]any{"x": 1.0, "nested": map[string]any{"y": 2.0}}, Decode(r))

	vec, err := Encode(Vector{1, 2}, ts)
	require.NoError(t, err)
	Decode(vec).([]float64)[0] = 99
	assert.Equal(t, []float64{1, 2}, vec.GetFloatValues().GetValues())

	assert.Nil(t, Decode(nil))
}

func TestFailure(t *testing.T) {
	r := Failure(errors.New("boom"), "trace", ts)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_UNHANDLED_FAILED, r.GetStatus())
	assert.Equal(t, map[string]any{"error": "boom", "stack_trace": "trace"}, r.GetStructValue().AsMap())
	assert.Equal(t, ts.Unix(), r.GetTimestamp())

	assert.Equal(t, "unknown error", Failure(nil, "", ts).GetStructValue().GetFields()["error"].GetStringValue())

	h := HandledFailure("dependency A_1.0.0 did not succeed", ts)
	assert.Equal(t, v1.ResultStatus_RESULT_STATUS_HANDLED_FAILED, h.GetStatus())
	assert.Equal(t, "dependency A_1.0.0 did not succeed", h.GetStructValue().GetFields()["error"].GetStringValue())
}

func ptr(f float64) *float64 {
	return &f
}
