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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigFile, EnvPort, EnvCore, EnvOrcaServer, EnvProcessorAddress, EnvMaxWorkers,
		EnvGracePeriod, EnvMetricsPort, EnvMaxMessageSize, EnvLogLevel, EnvMetricsTLS, EnvPprof} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orca.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	g, err := LoadConfig(nil, WithoutDotEnv())
	require.NoError(t, err)
	c := g.Get()
	assert.Equal(t, Config{
		Port:           DefaultPort,
		Core:           DefaultCore,
		MaxWorkers:     DefaultMaxWorkers,
		GracePeriod:    DefaultGracePeriod,
		MetricsPort:    DefaultMetricsPort,
		MaxMessageSize: DefaultMaxMessageSize,
		LogLevel:       DefaultLogLevel,
	}, c)
	assert.Equal(t, "localhost:5377", c.Address())
	assert.Equal(t, 5*time.Second, g.GetGracePeriod())
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "6000")
	t.Setenv(EnvCore, "core.orca.svc:3335")
	t.Setenv(EnvProcessorAddress, "processor.orca.svc:6000")
	t.Setenv(EnvMaxWorkers, "3")
	t.Setenv(EnvGracePeriod, "10s")
	t.Setenv(EnvMaxMessageSize, "1024")
	t.Setenv(EnvMetricsTLS, "true")
	t.Setenv(EnvPprof, "true")
	g, err := LoadConfig(nil, WithoutDotEnv())
	require.NoError(t, err)
	c := g.Get()
	assert.Equal(t, 6000, c.Port)
	assert.Equal(t, "core.orca.svc:3335", c.Core)
	assert.Equal(t, "processor.orca.svc:6000", c.Address())
	assert.Equal(t, 3, c.MaxWorkers)
	assert.Equal(t, 10*time.Second, c.GracePeriod)
	assert.Equal(t, 1024, c.MaxMessageSize)
	assert.True(t, c.MetricsTLS)
	assert.True(t, c.Pprof)
}

func TestLoadConfig_OrcaServerFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOrcaServer, "legacy.orca.svc:3335")
	g, err := LoadConfig(nil, WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, "legacy.orca.svc:3335", g.Get().Core)

	t.Setenv(EnvCore, "core.orca.svc:3335")
	g, err = LoadConfig(nil, WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, "core.orca.svc:3335", g.Get().Core)
}

func TestNewGlobalConfig(t *testing.T) {
	c := Config{Port: 1, GracePeriod: time.Second}
	g := NewGlobalConfig(c)
	c.Port = 2
	assert.Equal(t, 1, g.Get().Port)
	assert.Equal(t, time.Second, g.GetGracePeriod())
}

func TestLoadConfig_FileAndPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "port: 7000\ncore: orca-core:4000\nmaxWorkers: 4\ngracePeriod: 2s\n")
	t.Setenv(EnvMaxWorkers, "8")

	g, err := LoadConfig(nil, WithoutDotEnv(), WithFile(path))
	require.NoError(t, err)
	c := g.Get()
	assert.Equal(t, 7000, c.Port)
	assert.Equal(t, "orca-core:4000", c.Core)
	assert.Equal(t, 8, c.MaxWorkers)
	assert.Equal(t, 2*time.Second, c.GracePeriod)

	t.Setenv(EnvConfigFile, path)
	g, err = LoadConfig(nil, WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, 7000, g.Get().Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(nil, WithoutDotEnv(), WithFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ORCA_MAX_WORKERS=6\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()
	// godotenv never overrides variables already set, an empty value counts as set
	require.NoError(t, os.Unsetenv(EnvMaxWorkers))
	defer func() { _ = os.Unsetenv(EnvMaxWorkers) }()

	g, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Get().MaxWorkers)
}

func TestLoadConfig_Reload(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "gracePeriod: 2s\n")
	changed := make(chan Config, 1)
	reloadErrs := make(chan error, 1)
	g, err := LoadConfig(func(err error) {
		select {
		case reloadErrs <- err:
		default:
		}
	}, WithoutDotEnv(), WithFile(path), WithOnChange(func(c Config) {
		select {
		case changed <- c:
		default:
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, g.GetGracePeriod())

	require.NoError(t, os.WriteFile(path, []byte("gracePeriod: 7s\nlogLevel: debug\n"), 0o600))
	assert.Eventually(t, func() bool {
		return g.GetGracePeriod() == 7*time.Second && g.Get().LogLevel == "debug"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Len(t, changed, 1)

	require.NoError(t, os.WriteFile(path, []byte("maxWorkers: 0\n"), 0o600))
	assert.Eventually(t, func() bool {
		return len(reloadErrs) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, DefaultMaxWorkers, g.Get().MaxWorkers)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:           DefaultPort,
		Core:           DefaultCore,
		MaxWorkers:     1,
		GracePeriod:    0,
		MetricsPort:    0,
		MaxMessageSize: 1,
		LogLevel:       "warn",
	}
	assert.NoError(t, valid.Validate())

	invalid := Config{
		Port:             70000,
		Core:             "localhost",
		ProcessorAddress: " localhost:1",
		MaxWorkers:       0,
		GracePeriod:      -time.Second,
		MetricsPort:      -1,
		MaxMessageSize:   0,
		LogLevel:         "loud",
	}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 8)
}
