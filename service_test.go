package cpusim_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cpusim"
	"github.com/viant/cpusim/service/source"
)

func testConfig() *cpusim.Config {
	config := cpusim.DefaultConfig()
	config.Processes = 4
	config.Scheduler.Interval = time.Second
	config.Scheduler.Duration = 3 * time.Second
	config.Scheduler.Seed = 7
	config.Interpreter.PromptDelay = 0
	config.Interpreter.RepeatInterval = time.Second
	return config
}

func TestService_Run(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var output bytes.Buffer
		srv, err := cpusim.New(
			cpusim.WithConfig(testConfig()),
			cpusim.WithWriter(&output),
			cpusim.WithCommandLines("echo hello ; gcd 48 18", "bogus"))
		require.NoError(t, err)

		started := time.Now()
		require.NoError(t, srv.Run(context.Background()))
		assert.Equal(t, 3*time.Second, time.Since(started))

		text := output.String()
		assert.True(t, strings.HasPrefix(text, "Initial Queue States:\nRunning: []\n"), text)
		assert.Contains(t, text, "DQ: P => [1B] [2F] [3B] [4F] (bottom/top)")
		assert.Contains(t, text, "hello\n")
		assert.Contains(t, text, "GCD: 6\n")
		assert.Equal(t, 4, strings.Count(text, "...\n"))

		counters := srv.Progress().Snapshot()
		assert.Equal(t, 3, counters.Ticks)
		assert.Equal(t, 3, counters.Commands)
		assert.Equal(t, 1, counters.Failed)
	})
}

func TestService_RunDrainsBackground(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		config := testConfig()
		config.Scheduler.Duration = time.Second
		config.Interpreter.DrainOnShutdown = true
		config.Interpreter.DrainTimeout = 10 * time.Second

		var output bytes.Buffer
		srv, err := cpusim.New(
			cpusim.WithConfig(config),
			cpusim.WithWriter(&output),
			cpusim.WithCommandLines("& -n 3 echo bg"))
		require.NoError(t, err)

		require.NoError(t, srv.Run(context.Background()))
		assert.Equal(t, 3, strings.Count(output.String(), "bg\n"))
		assert.Equal(t, 1, srv.Progress().Snapshot().Background)
	})
}

func TestService_RunCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		srv, err := cpusim.New(cpusim.WithConfig(testConfig()), cpusim.WithWriter(&bytes.Buffer{}))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
		defer cancel()
		require.NoError(t, srv.Run(ctx))
		assert.Equal(t, 1, srv.Progress().Snapshot().Ticks)
	})
}

func TestService_RunCommandFile(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/cpusim/run/commands.txt"
	require.NoError(t, source.New(nil).Save(ctx, URL, []string{"prime 10", "-p 3 sum 7"}))

	config := testConfig()
	config.Scheduler.Interval = 10 * time.Millisecond
	config.Scheduler.Duration = 200 * time.Millisecond
	config.Interpreter.CommandFile = URL

	var output bytes.Buffer
	srv, err := cpusim.New(cpusim.WithConfig(config), cpusim.WithWriter(&output))
	require.NoError(t, err)
	require.NoError(t, srv.Run(ctx))

	text := output.String()
	assert.Contains(t, text, "Number of primes <= 10: 4\n")
	assert.Contains(t, text, "Sum: 28\n")
}

func TestService_RunMissingCommandFile(t *testing.T) {
	config := testConfig()
	config.Scheduler.Interval = 10 * time.Millisecond
	config.Scheduler.Duration = 30 * time.Millisecond
	config.Interpreter.CommandFile = "mem://localhost/cpusim/run/missing.txt"

	srv, err := cpusim.New(cpusim.WithConfig(config), cpusim.WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	require.NoError(t, srv.Run(context.Background()))
	assert.GreaterOrEqual(t, srv.Progress().Snapshot().Ticks, 1)
}

func TestService_RunTracingOutput(t *testing.T) {
	config := testConfig()
	config.Scheduler.Interval = 10 * time.Millisecond
	config.Scheduler.Duration = 30 * time.Millisecond
	config.Tracing.Enabled = true
	config.Tracing.OutputFile = filepath.Join(t.TempDir(), "trace.json")

	var output bytes.Buffer
	srv, err := cpusim.New(cpusim.WithConfig(config), cpusim.WithWriter(&output), cpusim.WithCommandLines("echo traced"))
	require.NoError(t, err)
	require.NoError(t, srv.Run(context.Background()))

	data, err := os.ReadFile(config.Tracing.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "queue.tick")
	assert.Contains(t, string(data), "command.execute")
	assert.NotContains(t, output.String(), "queue.tick")
}

func TestNew_InvalidConfig(t *testing.T) {
	config := cpusim.DefaultConfig()
	config.Processes = -1
	_, err := cpusim.New(cpusim.WithConfig(config))
	assert.Error(t, err)
}

func TestService_Population(t *testing.T) {
	srv, err := cpusim.New(cpusim.WithConfig(testConfig()), cpusim.WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	snapshot := srv.Manager().Snapshot()
	assert.Equal(t, []int{1, 2, 3, 4}, snapshot.IDs())
	assert.Nil(t, snapshot.Running)
}
