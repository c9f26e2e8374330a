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


package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/config"
	"github.com/numaproj/orca/pkg/shared/util"
)

// dialProcessor returns a client of a processor and a function closing its connection.
var dialProcessor = func(addr string) (v1.OrcaProcessorClient, func() error, error) {
	if _, _, err := util.ParseConnectionString(addr); err != nil {
		return nil, nil, fmt.Errorf("invalid processor address: %w", err)
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return v1.NewOrcaProcessorClient(conn), conn.Close, nil
}

// healthReport is the json output of the health command.
type healthReport struct {
	Status        string  `json:"status"`
	Message       string  `json:"message,omitempty"`
	ActiveTasks   int32   `json:"activeTasks"`
	MemoryBytes   int64   `json:"memoryBytes"`
	CPUPercent    float64 `json:"cpuPercent"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
}

func newHealthReport(resp *v1.HealthCheckResponse) healthReport {
	m := resp.GetMetrics()
	return healthReport{
		Status:        resp.GetStatus().String(),
		Message:       resp.GetMessage(),
		ActiveTasks:   m.GetActiveTasks(),
		MemoryBytes:   m.GetMemoryBytes(),
		CPUPercent:    m.GetCpuPercent(),
		UptimeSeconds: m.GetUptimeSeconds(),
	}
}

func NewHealthCommand() *cobra.Command {
	var (
		addr    string
		output  string
		timeout time.Duration
	)

	command := &cobra.Command{
		Use:   "health",
		Short: "Check the health of a processor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unsupported output format %q, use text or json", output)
			}
			client, closeConn, err := dialProcessor(addr)
			if err != nil {
				return err
			}
			defer func() { _ = closeConn() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			resp, err := client.HealthCheck(ctx, &v1.HealthCheckRequest{Timestamp: time.Now().Unix()})
			if err != nil {
				return util.ToRemoteErr("HealthCheck", err)
			}
			if output == "json" {
				b, err := json.Marshal(newHealthReport(resp))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.GetStatus(), resp.GetMessage())
			}
			if resp.GetStatus() != v1.HealthCheckResponse_STATUS_SERVING {
				return fmt.Errorf("processor %s is not serving", addr)
			}
			return nil
		},
	}
	command.Flags().StringVar(&addr, "addr", util.LookupEnvStringOr(config.EnvProcessorAddress, fmt.Sprintf("localhost:%d", config.DefaultPort)), "Address of the processor, host:port")
	command.Flags().StringVarP(&output, "output", "o", "text", "Output format, text or json")
	command.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout of the health check")
	return command
}
