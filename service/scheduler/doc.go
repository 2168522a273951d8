// Package scheduler drives the queue manager at a fixed wall-clock interval
// until a total duration budget elapses.  It holds no scheduling state of
// its own beyond the start time.
package scheduler
