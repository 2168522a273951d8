package cpusim_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/cpusim"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *cpusim.Config)
		expectErr   string
	}{
		{description: "default", mutate: func(c *cpusim.Config) {}},
		{description: "no processes", mutate: func(c *cpusim.Config) { c.Processes = 0 }, expectErr: "processes"},
		{description: "zero interval", mutate: func(c *cpusim.Config) { c.Scheduler.Interval = 0 }, expectErr: "scheduler.interval"},
		{description: "negative duration", mutate: func(c *cpusim.Config) { c.Scheduler.Duration = -time.Second }, expectErr: "scheduler.duration"},
		{description: "zero max wait", mutate: func(c *cpusim.Config) { c.Scheduler.MaxWait = 0 }, expectErr: "scheduler.maxWait"},
		{description: "negative prompt delay", mutate: func(c *cpusim.Config) { c.Interpreter.PromptDelay = -1 }, expectErr: "interpreter.promptDelay"},
		{description: "negative repeat interval", mutate: func(c *cpusim.Config) { c.Interpreter.RepeatInterval = -1 }, expectErr: "interpreter.repeatInterval"},
		{
			description: "drain without timeout",
			mutate: func(c *cpusim.Config) {
				c.Interpreter.DrainOnShutdown = true
				c.Interpreter.DrainTimeout = 0
			},
			expectErr: "interpreter.drainTimeout",
		},
	}

	for _, testCase := range testCases {
		config := cpusim.DefaultConfig()
		testCase.mutate(config)
		err := config.Validate()
		if testCase.expectErr == "" {
			assert.NoError(t, err, testCase.description)
			continue
		}
		assert.ErrorContains(t, err, testCase.expectErr, testCase.description)
	}
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/cpusim/config.yaml"
	document := `processes: 4
scheduler:
  interval: 250ms
  duration: 2s
  requeueRunning: true
  seed: 42
interpreter:
  commandFile: mem://localhost/cpusim/commands.txt
  drainOnShutdown: true
logging:
  level: debug
`
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(document)))

	config, err := cpusim.LoadConfig(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, 4, config.Processes)
	assert.Equal(t, 250*time.Millisecond, config.Scheduler.Interval)
	assert.Equal(t, 2*time.Second, config.Scheduler.Duration)
	assert.True(t, config.Scheduler.RequeueRunning)
	assert.EqualValues(t, 42, config.Scheduler.Seed)
	assert.Equal(t, 10, config.Scheduler.MaxWait)
	assert.Equal(t, "mem://localhost/cpusim/commands.txt", config.Interpreter.CommandFile)
	assert.True(t, config.Interpreter.DrainOnShutdown)
	assert.Equal(t, 10*time.Second, config.Interpreter.DrainTimeout)
	assert.Equal(t, time.Second, config.Interpreter.PromptDelay)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "cpusim", config.Tracing.ServiceName)
}

func TestLoadConfig_Errors(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	_, err := cpusim.LoadConfig(ctx, "mem://localhost/cpusim/missing.yaml")
	assert.Error(t, err)

	URL := "mem://localhost/cpusim/invalid.yaml"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("processes: 0\n")))
	_, err = cpusim.LoadConfig(ctx, URL)
	assert.ErrorContains(t, err, "processes must be > 0")

	URL = "mem://localhost/cpusim/malformed.yaml"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("scheduler: [")))
	_, err = cpusim.LoadConfig(ctx, URL)
	assert.ErrorContains(t, err, "failed to decode config")
}
