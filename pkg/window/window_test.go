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

package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		field MetadataField
	}{
		{"empty name", MetadataField{Name: "", Description: "test description"}},
		{"empty description", MetadataField{Name: "test name", Description: ""}},
		{"both empty", MetadataField{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewType("TestWindow", "1.0.0", "test description", tt.field)
			assert.ErrorIs(t, err, ErrInvalidMetadataField)
		})
	}
}

func TestNewType(t *testing.T) {
	t.Run("duplicate fields", func(t *testing.T) {
		_, err := NewType("TestWindow", "1.0.0", "test description",
			MetadataField{Name: "testName", Description: "test description"},
			MetadataField{Name: "testName", Description: "test description"},
		)
		assert.ErrorIs(t, err, ErrInvalidWindowType)
	})

	t.Run("bad name", func(t *testing.T) {
		_, err := NewType("testWindow", "1.0.0", "test description")
		assert.ErrorIs(t, err, ErrInvalidWindowType)
	})

	t.Run("bad version", func(t *testing.T) {
		_, err := NewType("TestWindow", "1.0.0-rc1", "test description")
		assert.ErrorIs(t, err, ErrInvalidWindowType)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := NewType("TestWindow", "1.0.0", "")
		assert.ErrorIs(t, err, ErrInvalidWindowType)
	})

	t.Run("valid", func(t *testing.T) {
		fields := []MetadataField{{Name: "test name", Description: "test description"}}
		wt, err := NewType("TestWindow", "1.0.0", "test description", fields...)
		require.NoError(t, err)
		assert.Equal(t, "TestWindow_1.0.0", wt.FullName())

		// the type keeps its own copy of the fields
		fields[0].Name = "changed"
		assert.Equal(t, "test name", wt.MetadataFields()[0].Name)

		p := wt.ToProto()
		assert.Equal(t, "TestWindow", p.GetName())
		assert.Equal(t, "1.0.0", p.GetVersion())
		assert.Equal(t, "test description", p.GetDescription())
		require.Len(t, p.GetMetadataFields(), 1)
		assert.Equal(t, "test name", p.GetMetadataFields()[0].GetName())
	})
}

func TestMustNewType(t *testing.T) {
	assert.Panics(t, func() { MustNewType("bad_name", "1.0.0", "x") })
	assert.NotPanics(t, func() { MustNewType("Every30Second", "1.0.0", "fires every 30 seconds") })
}

func TestWindow(t *testing.T) {
	wt := MustNewType("Every30Second", "1.0.0", "fires every 30 seconds",
		MetadataField{Name: "assetId", Description: "asset the window belongs to"})
	now := time.Unix(1700000000, 0).UTC()

	w := New(wt, now.Add(-30*time.Second), now, "Example", map[string]any{"assetId": "a-1"})
	assert.Equal(t, "Every30Second_1.0.0", w.FullTypeName())
	assert.NoError(t, w.Validate(wt))
	assert.NoError(t, w.Validate(nil))

	p, err := w.ToProto()
	require.NoError(t, err)
	assert.Equal(t, uint64(1699999970), p.GetTimeFrom())
	assert.Equal(t, uint64(1700000000), p.GetTimeTo())
	assert.Equal(t, "a-1", p.GetMetadata().GetFields()["assetId"].GetStringValue())
	assert.Equal(t, w, FromProto(p))
	assert.Nil(t, FromProto(nil))

	bare, err := New(wt, now, now, "Example", nil).ToProto()
	require.NoError(t, err)
	assert.Nil(t, bare.GetMetadata())
	assert.Nil(t, FromProto(bare).Metadata)

	_, err = New(wt, now, now, "Example", map[string]any{"assetId": make(chan int)}).ToProto()
	assert.Error(t, err)

	w.Metadata["unknown"] = 1
	assert.Error(t, w.Validate(wt))

	reversed := New(wt, now, now.Add(-time.Second), "Example", nil)
	assert.Error(t, reversed.Validate(nil))

	other := MustNewType("Daily", "1.0.0", "daily")
	assert.Error(t, New(other, now, now, "Example", nil).Validate(wt))
}
