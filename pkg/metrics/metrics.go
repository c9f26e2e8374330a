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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelVersion       = "version"
	LabelPlatform      = "platform"
	LabelComponent     = "component"
	LabelComponentName = "component_name"
	LabelProcessor     = "processor"
	LabelAlgorithm     = "algorithm"
	LabelStatus        = "status"
	LabelReason        = "reason"
	LabelWindow        = "window"
)

var (
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "A metric with a constant value '1', labeled by Orca binary version, platform, and other information",
	}, []string{LabelComponent, LabelComponentName, LabelVersion, LabelPlatform})
)

// Executor metrics
var (
	// ExecutionRequests is used to indicate the number of DAG parts received
	ExecutionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "requests_total",
		Help:      "Total number of DAG part execution requests",
	}, []string{LabelProcessor})

	// ExecutionRequestErrors is used to indicate the number of DAG parts rejected before running
	ExecutionRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "request_error_total",
		Help:      "Total number of DAG part execution requests rejected as malformed or unknown",
	}, []string{LabelProcessor, LabelReason})

	// AlgorithmResults is used to indicate the number of algorithm results emitted, by status
	AlgorithmResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "algorithm_result_total",
		Help:      "Total number of algorithm results emitted",
	}, []string{LabelProcessor, LabelAlgorithm, LabelStatus})

	// AlgorithmPanics is used to indicate the number of algorithm bodies that panicked
	AlgorithmPanics = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "algorithm_panic_total",
		Help:      "Total number of algorithm bodies that panicked",
	}, []string{LabelProcessor, LabelAlgorithm})

	// AlgorithmProcessingTime is a histogram to observe algorithm body latency
	AlgorithmProcessingTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "algorithm_processing_time",
		Help:      "Processing times of algorithm bodies (100 microseconds to 10 minutes)",
		Buckets:   prometheus.ExponentialBucketsRange(100, 60000000*10, 10),
	}, []string{LabelProcessor, LabelAlgorithm})

	// InflightAlgorithms is the number of algorithm bodies currently running
	InflightAlgorithms = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "orca",
		Subsystem: "executor",
		Name:      "inflight_algorithms",
		Help:      "Number of algorithm bodies being run",
	}, []string{LabelProcessor})
)

// Processor metrics
var (
	// RegisteredAlgorithms is the number of algorithms in the registry of a processor
	RegisteredAlgorithms = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "orca",
		Subsystem: "processor",
		Name:      "registered_algorithms",
		Help:      "Number of algorithms registered by the processor",
	}, []string{LabelProcessor})

	// WorkerPoolSize is the number of workers running algorithm bodies
	WorkerPoolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "orca",
		Subsystem: "processor",
		Name:      "worker_pool_size",
		Help:      "Number of workers running algorithm bodies",
	}, []string{LabelProcessor})

	// Registrations is used to indicate the number of registration calls made to orca core, by status
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "processor",
		Name:      "registration_total",
		Help:      "Total number of registration calls made to orca core",
	}, []string{LabelProcessor, LabelStatus})

	// WindowsEmitted is used to indicate the number of windows emitted to orca core, by status
	WindowsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orca",
		Subsystem: "processor",
		Name:      "window_emit_total",
		Help:      "Total number of windows emitted to orca core",
	}, []string{LabelWindow, LabelStatus})
)
