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


package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numaproj/orca/pkg/registry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	h.ServeHTTP(w, req)
	return w
}

func noop(context.Context, *registry.ExecutionParams) (any, error) {
	return nil, nil
}

func Test_MetricsServer_Probes(t *testing.T) {
	ms := NewMetricsServer(0)
	h := ms.handler()
	assert.Equal(t, http.StatusNoContent, serve(t, h, "/livez").Code)
	assert.Equal(t, http.StatusNoContent, serve(t, h, "/readyz").Code)

	w := serve(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "build_info")
}

func Test_MetricsServer_WithHealthCheckExecutor(t *testing.T) {
	executed := false
	ms := NewMetricsServer(0,
		WithHealthCheckExecutor(func() error {
			executed = true
			return nil
		}),
		WithHealthCheckExecutor(func() error {
			return errors.New("core unreachable")
		}))
	assert.Len(t, ms.healthCheckExecutors, 2)

	w := serve(t, ms.handler(), "/readyz")
	assert.True(t, executed)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "core unreachable", w.Body.String())

	// liveness never depends on health checks
	assert.Equal(t, http.StatusNoContent, serve(t, ms.handler(), "/livez").Code)
}

func Test_MetricsServer_WithHealthChecker(t *testing.T) {
	var deadline bool
	hc := HealthCheckerFunc(func(ctx context.Context) error {
		_, deadline = ctx.Deadline()
		return nil
	})
	ms := NewMetricsServer(0, WithHealthChecker(context.Background(), hc, time.Second))
	assert.Equal(t, http.StatusNoContent, serve(t, ms.handler(), "/readyz").Code)
	assert.True(t, deadline)
}

func Test_MetricsServer_Algorithms(t *testing.T) {
	reg := registry.New()
	newAlgo := func(name string) *registry.Algorithm {
		return &registry.Algorithm{
			Name:          name,
			Version:       "1.0.0",
			WindowName:    "EveryMinute",
			WindowVersion: "1.0.0",
			Exec:          noop,
		}
	}
	a, err := reg.Register(newAlgo("Alpha"))
	require.NoError(t, err)
	_, err = reg.RegisterWithDependencies(newAlgo("Beta"), a)
	require.NoError(t, err)

	w := serve(t, NewMetricsServer(0, WithRegistry(reg)).handler(), "/api/v1/algorithms")
	require.Equal(t, http.StatusOK, w.Code)
	var infos []AlgorithmInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	assert.Equal(t, []AlgorithmInfo{
		{Name: "Alpha", Version: "1.0.0", Window: "EveryMinute_1.0.0", Dependencies: []string{}},
		{Name: "Beta", Version: "1.0.0", Window: "EveryMinute_1.0.0", Dependencies: []string{"Alpha_1.0.0"}},
	}, infos)
}

func Test_MetricsServer_NoRegistry(t *testing.T) {
	w := serve(t, NewMetricsServer(0).handler(), "/api/v1/algorithms")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func Test_MetricsServer_Pprof(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(t, NewMetricsServer(0).handler(), "/debug/pprof/cmdline").Code)
	assert.Equal(t, http.StatusOK, serve(t, NewMetricsServer(0, WithPprof(true)).handler(), "/debug/pprof/cmdline").Code)
}

func Test_StartMetricsServer(t *testing.T) {
	ms := NewMetricsServer(0, WithTLS(true))
	shutdown, err := ms.Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
