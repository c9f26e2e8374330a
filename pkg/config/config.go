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

// Package config loads the configuration of a processor: built in defaults,
// overridden by an optional YAML file, overridden by environment variables.
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/numaproj/orca/pkg/shared/util"
)

const (
	EnvConfigFile       = "ORCA_CONFIG"
	EnvPort             = "PORT"
	EnvCore             = "ORCA_CORE"
	EnvOrcaServer       = "ORCASERVER"
	EnvProcessorAddress = "ORCA_PROCESSOR_ADDRESS"
	EnvMaxWorkers       = "ORCA_MAX_WORKERS"
	EnvGracePeriod      = "ORCA_GRACE_PERIOD"
	EnvMetricsPort      = "ORCA_METRICS_PORT"
	EnvMaxMessageSize   = "ORCA_MAX_MESSAGE_SIZE"
	EnvLogLevel         = "ORCA_LOG_LEVEL"
	EnvMetricsTLS       = "ORCA_METRICS_TLS"
	EnvPprof            = "ORCA_PPROF"

	DefaultPort           = 5377
	DefaultCore           = "localhost:3335"
	DefaultMaxWorkers     = 10
	DefaultGracePeriod    = 5 * time.Second
	DefaultMetricsPort    = 2469
	DefaultMaxMessageSize = 50 * 1024 * 1024
	DefaultLogLevel       = "info"
)

// Config is the configuration of a processor.
type Config struct {
	// Port is the port the gRPC server listens on.
	Port int `mapstructure:"port"`

	// Core is the host:port of orca core.
	Core string `mapstructure:"core"`

	// ProcessorAddress is the host:port orca core reaches the processor on,
	// localhost:<Port> when empty.
	ProcessorAddress string `mapstructure:"processorAddress"`

	MaxWorkers     int           `mapstructure:"maxWorkers"`
	GracePeriod    time.Duration `mapstructure:"gracePeriod"`
	MaxMessageSize int           `mapstructure:"maxMessageSize"`
	LogLevel       string        `mapstructure:"logLevel"`

	// MetricsPort is the port of the metrics and health HTTP server, 0 disables it.
	MetricsPort int  `mapstructure:"metricsPort"`
	MetricsTLS  bool `mapstructure:"metricsTLS"`
	Pprof       bool `mapstructure:"pprof"`
}

// Address returns the address announced to orca core.
func (c Config) Address() string {
	if c.ProcessorAddress != "" {
		return c.ProcessorAddress
	}
	return fmt.Sprintf("localhost:%d", c.Port)
}

// Validate checks every field and reports all the problems found.
func (c Config) Validate() error {
	var err error
	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("port %d is out of range", c.Port))
	}
	if _, _, e := util.ParseConnectionString(c.Core); e != nil {
		err = multierr.Append(err, fmt.Errorf("invalid orca core address: %w", e))
	}
	if _, _, e := util.ParseConnectionString(c.Address()); e != nil {
		err = multierr.Append(err, fmt.Errorf("invalid processor address: %w", e))
	}
	if c.MaxWorkers <= 0 {
		err = multierr.Append(err, fmt.Errorf("max workers must be positive, got %d", c.MaxWorkers))
	}
	if c.GracePeriod < 0 {
		err = multierr.Append(err, fmt.Errorf("grace period cannot be negative, got %s", c.GracePeriod))
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		err = multierr.Append(err, fmt.Errorf("metrics port %d is out of range", c.MetricsPort))
	}
	if c.MaxMessageSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("max message size must be positive, got %d", c.MaxMessageSize))
	}
	if _, e := zapcore.ParseLevel(c.LogLevel); e != nil {
		err = multierr.Append(err, fmt.Errorf("invalid log level: %w", e))
	}
	return err
}

// GlobalConfig holds the current configuration, which changes when the
// config file is edited.
type GlobalConfig struct {
	conf *Config
	lock *sync.RWMutex
}

// NewGlobalConfig returns a GlobalConfig that never changes.
func NewGlobalConfig(c Config) *GlobalConfig {
	return &GlobalConfig{conf: &c, lock: new(sync.RWMutex)}
}

// Get returns a copy of the current configuration.
func (g *GlobalConfig) Get() Config {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return *g.conf
}

// GetGracePeriod returns the current shutdown grace period.
func (g *GlobalConfig) GetGracePeriod() time.Duration {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return g.conf.GracePeriod
}

// Option to apply when loading.
type Option func(*loadOptions)

type loadOptions struct {
	file     string
	onChange func(Config)
	dotEnv   bool
}

// WithFile reads the given YAML file, overriding ORCA_CONFIG.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithOnChange registers a function called with the new configuration after
// the config file changed.
func WithOnChange(f func(Config)) Option {
	return func(o *loadOptions) {
		o.onChange = f
	}
}

// WithoutDotEnv skips loading the .env file.
func WithoutDotEnv() Option {
	return func(o *loadOptions) {
		o.dotEnv = false
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("core", DefaultCore)
	v.SetDefault("processorAddress", "")
	v.SetDefault("maxWorkers", DefaultMaxWorkers)
	v.SetDefault("gracePeriod", DefaultGracePeriod)
	v.SetDefault("metricsPort", DefaultMetricsPort)
	v.SetDefault("maxMessageSize", DefaultMaxMessageSize)
	v.SetDefault("logLevel", DefaultLogLevel)
	v.SetDefault("metricsTLS", false)
	v.SetDefault("pprof", false)
	_ = v.BindEnv("port", EnvPort)
	// ORCASERVER is the name orca core used before ORCA_CORE
	_ = v.BindEnv("core", EnvCore, EnvOrcaServer)
	_ = v.BindEnv("processorAddress", EnvProcessorAddress)
	_ = v.BindEnv("maxWorkers", EnvMaxWorkers)
	_ = v.BindEnv("gracePeriod", EnvGracePeriod)
	_ = v.BindEnv("metricsPort", EnvMetricsPort)
	_ = v.BindEnv("maxMessageSize", EnvMaxMessageSize)
	_ = v.BindEnv("logLevel", EnvLogLevel)
	_ = v.BindEnv("metricsTLS", EnvMetricsTLS)
	_ = v.BindEnv("pprof", EnvPprof)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed unmarshal configuration. %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadConfig loads and validates the configuration. When a config file is
// used it is watched, a change that fails to load is passed to onErrorReloading
// and the previous configuration is kept.
func LoadConfig(onErrorReloading func(error), opts ...Option) (*GlobalConfig, error) {
	o := &loadOptions{file: os.Getenv(EnvConfigFile), dotEnv: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.dotEnv {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file. %w", err)
		}
	}
	v := newViper()
	if o.file != "" {
		v.SetConfigFile(o.file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load configuration file. %w", err)
		}
	}
	conf, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	r := NewGlobalConfig(*conf)
	if o.file == "" {
		return r, nil
	}
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		cf, err := unmarshal(v)
		if err != nil {
			if onErrorReloading != nil {
				onErrorReloading(err)
			}
			return
		}
		r.lock.Lock()
		r.conf = cf
		r.lock.Unlock()
		if o.onChange != nil {
			o.onChange(*cf)
		}
	})
	return r, nil
}
