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
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/araddon/dateparse"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	v1 "github.com/numaproj/orca/pkg/apis/proto/orca/v1"
	"github.com/numaproj/orca/pkg/announcer"
	"github.com/numaproj/orca/pkg/config"
	"github.com/numaproj/orca/pkg/shared/logging"
	"github.com/numaproj/orca/pkg/shared/util"
	"github.com/numaproj/orca/pkg/window"
)

const defaultOrigin = "orca-cli"

// dialCore returns a client of orca core and a function closing its connection.
var dialCore = func(addr string) (v1.OrcaCoreClient, func() error, error) {
	conn, err := announcer.Dial(addr, config.DefaultMaxMessageSize)
	if err != nil {
		return nil, nil, err
	}
	return v1.NewOrcaCoreClient(conn), conn.Close, nil
}

func NewEmitWindowCommand() *cobra.Command {
	var (
		core        string
		typeName    string
		typeVersion string
		from        string
		to          string
		length      time.Duration
		origin      string
		metadata    map[string]string
		schedule    string
		count       int
		timeout     time.Duration
	)

	command := &cobra.Command{
		Use:   "emit-window",
		Short: "Emit windows to orca core",
		Long: "Emit a window to orca core, which triggers the algorithms registered against its type. " +
			"With --schedule a window covering the time since the previous emission is sent on every tick of the cron schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if typeName == "" || typeVersion == "" {
				cmd.HelpFunc()(cmd, args)
				return fmt.Errorf("--type and --type-version are required")
			}
			if !util.IsPascalCase(typeName) {
				return fmt.Errorf("window type name %q must be in PascalCase", typeName)
			}
			if !util.IsStrictSemVer(typeVersion) {
				return fmt.Errorf("window type version %q must be MAJOR.MINOR.PATCH", typeVersion)
			}
			log := logging.NewLogger().Named("emit-window")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logging.WithLogger(ctx, log)

			md := make(map[string]any, len(metadata))
			for k, v := range metadata {
				md[k] = v
			}
			tmpl := window.Window{TypeName: typeName, TypeVersion: typeVersion, Origin: origin, Metadata: md}

			var sched cron.Schedule
			if schedule != "" {
				s, err := cron.ParseStandard(schedule)
				if err != nil {
					return fmt.Errorf("invalid schedule %q, %w", schedule, err)
				}
				sched = s
			}

			client, closeConn, err := dialCore(core)
			if err != nil {
				return err
			}
			defer func() { _ = closeConn() }()
			a := announcer.New(client, announcer.WithTimeout(timeout))

			if sched == nil {
				now := time.Now().UTC()
				toTime, err := parseTime(to, now)
				if err != nil {
					return fmt.Errorf("invalid --to, %w", err)
				}
				fromTime := toTime.Add(-length)
				if from != "" {
					if fromTime, err = parseTime(from, now); err != nil {
						return fmt.Errorf("invalid --from, %w", err)
					}
				}
				w := tmpl
				w.From, w.To = fromTime, toTime
				return emit(ctx, a, &w, cmd.OutOrStdout())
			}
			log.Infow("Emitting windows on schedule", zap.String("schedule", schedule), zap.String("window", tmpl.FullTypeName()))
			return emitScheduled(ctx, a, sched, tmpl, count, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&core, "core", util.LookupEnvStringOr(config.EnvCore, util.LookupEnvStringOr(config.EnvOrcaServer, config.DefaultCore)), "Address of orca core, host:port")
	command.Flags().StringVar(&typeName, "type", "", "Window type name, e.g. EveryMinute")
	command.Flags().StringVar(&typeVersion, "type-version", "", "Window type version, e.g. 1.0.0")
	command.Flags().StringVar(&from, "from", "", "Start of the window, any common date format or a duration relative to now, e.g. -5m. Defaults to --to minus --length")
	command.Flags().StringVar(&to, "to", "", "End of the window, any common date format or a duration relative to now. Defaults to now")
	command.Flags().DurationVar(&length, "length", time.Minute, "Length of the window when --from is not set")
	command.Flags().StringVar(&origin, "origin", defaultOrigin, "Origin of the window")
	command.Flags().StringToStringVar(&metadata, "metadata", map[string]string{}, "Window metadata, e.g. --metadata assetId=42,site=north")
	command.Flags().StringVar(&schedule, "schedule", "", "Cron schedule to emit windows on, e.g. \"*/5 * * * *\" or \"@every 30s\"")
	command.Flags().IntVar(&count, "count", 0, "Stop after emitting this many scheduled windows, 0 runs until interrupted")
	command.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout of each call to orca core")
	return command
}

// parseTime parses an absolute time or a duration relative to now.
func parseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return now, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(d), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func emit(ctx context.Context, a *announcer.Announcer, w *window.Window, out io.Writer) error {
	status, err := a.EmitWindow(ctx, w)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%s [%s, %s): %s %s\n", w.FullTypeName(),
		w.From.Format(time.RFC3339), w.To.Format(time.RFC3339), status.GetStatus(), status.GetMessage())
	return nil
}

// emitScheduled emits a window on every tick of sched until ctx is done or
// count windows were emitted. Each window starts where the previous one ended.
func emitScheduled(ctx context.Context, a *announcer.Announcer, sched cron.Schedule, tmpl window.Window, count int, out io.Writer) error {
	log := logging.FromContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	emitted := atomic.NewInt32(0)
	previous := time.Now().UTC()
	c := cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(sched, cron.FuncJob(func() {
		now := time.Now().UTC()
		w := tmpl
		w.From, w.To = previous, now
		previous = now
		if err := emit(ctx, a, &w, out); err != nil {
			log.Errorw("Failed to emit window", zap.String("window", w.FullTypeName()), zap.Error(err))
			return
		}
		if n := emitted.Inc(); count > 0 && int(n) >= count {
			cancel()
		}
	}))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	log.Infow("Stopped emitting windows", zap.Int32("emitted", emitted.Load()))
	return nil
}
