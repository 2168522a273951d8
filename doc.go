// Package cpusim provides a feedback-driven CPU scheduler simulator.
//
// A population of synthetic processes cycles through a ready queue, a wait
// queue and a running slot owned by a single queue manager. A scheduler loop
// advances simulated time at a fixed interval while a command interpreter
// concurrently runs arithmetic workloads whose output is serialized with the
// queue snapshots:
//
//   - service/queue     - ready/wait queues, dispatch, sleep, aging, promotion
//   - service/scheduler - fixed-interval tick loop bounded by a time budget
//   - service/command   - ';' / '&' command lines and built-ins
//   - service/parallel  - partitioned workloads reduced over a lock-free queue
//
// Typical usage:
//
//	cfg, _ := cpusim.LoadConfig(ctx, "cpusim.yaml")
//	srv, _ := cpusim.New(cpusim.WithConfig(cfg))
//	err := srv.Run(ctx)
package cpusim
