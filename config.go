package cpusim

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/cpusim/service/command"
	"github.com/viant/cpusim/service/queue"
	"github.com/viant/cpusim/service/scheduler"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the simulator configuration.
// Fields omitted from a loaded document keep their DefaultConfig values.
type Config struct {
	Processes   int               `json:"processes" yaml:"processes"`
	Scheduler   SchedulerConfig   `json:"scheduler" yaml:"scheduler"`
	Interpreter InterpreterConfig `json:"interpreter" yaml:"interpreter"`
	Logging     LoggingConfig     `json:"logging" yaml:"logging"`
	Tracing     TracingConfig     `json:"tracing" yaml:"tracing"`
}

type SchedulerConfig struct {
	Interval       time.Duration `json:"interval" yaml:"interval"`
	Duration       time.Duration `json:"duration" yaml:"duration"`
	MaxWait        int           `json:"maxWait" yaml:"maxWait"`
	RequeueRunning bool          `json:"requeueRunning" yaml:"requeueRunning"`
	// Seed fixes the random source when non zero
	Seed uint64 `json:"seed" yaml:"seed"`
}

type InterpreterConfig struct {
	CommandFile     string        `json:"commandFile" yaml:"commandFile"`
	PromptDelay     time.Duration `json:"promptDelay" yaml:"promptDelay"`
	RepeatInterval  time.Duration `json:"repeatInterval" yaml:"repeatInterval"`
	DrainOnShutdown bool          `json:"drainOnShutdown" yaml:"drainOnShutdown"`
	DrainTimeout    time.Duration `json:"drainTimeout" yaml:"drainTimeout"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	OutputFile  string `json:"outputFile" yaml:"outputFile"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
}

// DefaultConfig returns a Config matching the classic simulation: ten
// processes ticking every five seconds for one minute.
func DefaultConfig() *Config {
	schedulerConfig := scheduler.DefaultConfig()
	commandConfig := command.DefaultConfig()
	return &Config{
		Processes: 10,
		Scheduler: SchedulerConfig{
			Interval: schedulerConfig.Interval,
			Duration: schedulerConfig.Duration,
			MaxWait:  queue.DefaultConfig().MaxWait,
		},
		Interpreter: InterpreterConfig{
			PromptDelay:    commandConfig.PromptDelay,
			RepeatInterval: commandConfig.RepeatInterval,
			DrainTimeout:   10 * time.Second,
		},
		Logging: LoggingConfig{Level: "INFO"},
		Tracing: TracingConfig{ServiceName: "cpusim"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Processes <= 0 {
		return fmt.Errorf("processes must be > 0")
	}
	if err := c.schedulerConfig().Validate(); err != nil {
		return err
	}
	if c.Scheduler.MaxWait < 1 {
		return fmt.Errorf("scheduler.maxWait must be >= 1")
	}
	if c.Interpreter.PromptDelay < 0 {
		return fmt.Errorf("interpreter.promptDelay must be >= 0")
	}
	if c.Interpreter.RepeatInterval < 0 {
		return fmt.Errorf("interpreter.repeatInterval must be >= 0")
	}
	if c.Interpreter.DrainOnShutdown && c.Interpreter.DrainTimeout <= 0 {
		return fmt.Errorf("interpreter.drainTimeout must be > 0 when drainOnShutdown is set")
	}
	return nil
}

func (c *Config) schedulerConfig() scheduler.Config {
	return scheduler.Config{Interval: c.Scheduler.Interval, Duration: c.Scheduler.Duration}
}

func (c *Config) queueConfig() queue.Config {
	return queue.Config{MaxWait: c.Scheduler.MaxWait, RequeueRunning: c.Scheduler.RequeueRunning}
}

func (c *Config) commandConfig() command.Config {
	return command.Config{PromptDelay: c.Interpreter.PromptDelay, RepeatInterval: c.Interpreter.RepeatInterval}
}

// LoadConfig reads a YAML (or JSON) document from any afs URL on top of DefaultConfig
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
