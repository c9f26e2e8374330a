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


package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupEnvStringOr(t *testing.T) {
	assert.Equal(t, "default", LookupEnvStringOr("ORCA_TEST_UNSET_STRING", "default"))
	t.Setenv("ORCA_TEST_STRING", "value")
	assert.Equal(t, "value", LookupEnvStringOr("ORCA_TEST_STRING", "default"))
	t.Setenv("ORCA_TEST_STRING", "")
	assert.Equal(t, "default", LookupEnvStringOr("ORCA_TEST_STRING", "default"))
}

func TestLookupEnvBoolOr(t *testing.T) {
	assert.True(t, LookupEnvBoolOr("ORCA_TEST_UNSET_BOOL", true))
	t.Setenv("ORCA_TEST_BOOL", "false")
	assert.False(t, LookupEnvBoolOr("ORCA_TEST_BOOL", true))
	t.Setenv("ORCA_TEST_BOOL", "1")
	assert.True(t, LookupEnvBoolOr("ORCA_TEST_BOOL", false))
	t.Setenv("ORCA_TEST_BOOL", "nope")
	assert.PanicsWithError(t, `invalid value for env variable "ORCA_TEST_BOOL", value "nope"`, func() { LookupEnvBoolOr("ORCA_TEST_BOOL", true) })
}
