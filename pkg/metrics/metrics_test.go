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
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExecutorMetrics(t *testing.T) {
	ExecutionRequests.WithLabelValues("metrics-test").Inc()
	ExecutionRequests.WithLabelValues("metrics-test").Inc()
	assert.Equal(t, float64(2), testutil.ToFloat64(ExecutionRequests.WithLabelValues("metrics-test")))

	AlgorithmResults.WithLabelValues("metrics-test", "Alpha_1.0.0", "SUCCEEDED").Inc()
	expected := `
# HELP orca_executor_algorithm_result_total Total number of algorithm results emitted
# TYPE orca_executor_algorithm_result_total counter
orca_executor_algorithm_result_total{algorithm="Alpha_1.0.0",processor="metrics-test",status="SUCCEEDED"} 1
`
	err := testutil.CollectAndCompare(AlgorithmResults, strings.NewReader(expected), "orca_executor_algorithm_result_total")
	assert.NoError(t, err)
}

func TestProcessorMetrics(t *testing.T) {
	RegisteredAlgorithms.WithLabelValues("metrics-test").Set(3)
	WorkerPoolSize.WithLabelValues("metrics-test").Set(10)
	assert.Equal(t, float64(3), testutil.ToFloat64(RegisteredAlgorithms.WithLabelValues("metrics-test")))
	assert.Equal(t, float64(10), testutil.ToFloat64(WorkerPoolSize.WithLabelValues("metrics-test")))

	WindowsEmitted.WithLabelValues("EveryMinute_1.0.0", "ok").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(WindowsEmitted, "orca_processor_window_emit_total"))
}
