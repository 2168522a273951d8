package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/cpusim"
	"github.com/viant/cpusim/internal/logger"
)

func main() {
	configURL := flag.String("config", "", "configuration URL (yaml or json, any afs scheme)")
	commandsURL := flag.String("commands", "", "command file URL, overrides interpreter.commandFile")
	logLevel := flag.String("log-level", "", "log level, overrides logging.level")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configURL, *commandsURL, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "cpusim: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, configURL, commandsURL, logLevel string) error {
	config := cpusim.DefaultConfig()
	if configURL != "" {
		var err error
		if config, err = cpusim.LoadConfig(ctx, configURL); err != nil {
			return err
		}
	}
	if commandsURL != "" {
		config.Interpreter.CommandFile = commandsURL
	}
	if logLevel != "" {
		config.Logging.Level = logLevel
	}
	logger.Init(os.Stderr, config.Logging.Level)

	srv, err := cpusim.New(cpusim.WithConfig(config))
	if err != nil {
		return err
	}
	slog.Info("simulation started",
		"processes", config.Processes,
		"interval", config.Scheduler.Interval,
		"duration", config.Scheduler.Duration,
		"commandFile", config.Interpreter.CommandFile)
	return srv.Run(ctx)
}
