package cpusim

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/viant/cpusim/model"
	"github.com/viant/cpusim/progress"
	"github.com/viant/cpusim/service/command"
	"github.com/viant/cpusim/service/queue"
	"github.com/viant/cpusim/service/scheduler"
	"github.com/viant/cpusim/service/source"
	"github.com/viant/cpusim/service/task"
	"github.com/viant/cpusim/tracing"
)

// Version is reported as the tracing service version
const Version = "0.1.0"

// Service owns one queue manager shared by the scheduler loop and the
// command interpreter.
type Service struct {
	config      *Config
	writer      io.Writer
	random      queue.Random
	lines       []string
	progress    *progress.Progress
	manager     *queue.Manager
	scheduler   *scheduler.Service
	interpreter *command.Service
	tracker     *task.Tracker
	source      *source.Service
	initErr     error
}

// Manager returns the shared queue manager
func (s *Service) Manager() *queue.Manager {
	return s.manager
}

// Progress returns simulation counters
func (s *Service) Progress() *progress.Progress {
	return s.progress
}

// Interpreter returns the command interpreter
func (s *Service) Interpreter() *command.Service {
	return s.interpreter
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	s.ensureBaseSetup()
	if s.config.Tracing.Enabled {
		if err := tracing.Init(s.config.Tracing.ServiceName, Version, s.config.Tracing.OutputFile); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}

	s.manager = queue.New(
		queue.WithConfig(s.config.queueConfig()),
		queue.WithRandom(s.random),
		queue.WithWriter(s.writer),
		queue.WithProgress(s.progress))
	processes, err := model.Population(s.config.Processes)
	if err != nil {
		return err
	}
	for _, process := range processes {
		s.manager.AddProcess(process)
	}

	if s.scheduler, err = scheduler.New(s.manager, s.config.schedulerConfig()); err != nil {
		return err
	}
	s.tracker = task.New()
	s.interpreter = command.New(s.manager,
		command.WithConfig(s.config.commandConfig()),
		command.WithTracker(s.tracker))
	return nil
}

func (s *Service) ensureBaseSetup() {
	if s.writer == nil {
		s.writer = os.Stdout
	}
	if s.progress == nil {
		s.progress = progress.New()
	}
	if s.random == nil && s.config.Scheduler.Seed != 0 {
		seed := s.config.Scheduler.Seed
		s.random = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if s.source == nil {
		s.source = source.New(nil)
	}
}

// New creates a simulator seeded with config.Processes processes
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
