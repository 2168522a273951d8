// Package queue owns the ready queue, the wait queue and the running slot of
// the simulated CPU.  Every exported operation acquires a single mutex for
// its whole body, so the scheduler loop, the command interpreter and any
// number of background tasks can share one Manager.
//
// A scheduler tick runs, in order: dispatch, simulated sleep, wait-time
// decrement, promotion and display.  A process completing its wait during a
// tick becomes eligible for dispatch on the next tick, not the current one.
package queue
