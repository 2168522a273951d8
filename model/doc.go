// Package model contains the in-memory representation of the simulated
// processes that move between the ready queue, the wait queue and the
// running slot.
//
// A Process is created once at startup and handed to the queue manager,
// which becomes its only mutator.  Callers outside the queue package should
// treat processes as read-only values.
package model
