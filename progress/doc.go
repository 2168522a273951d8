// Package progress defines the counters that summarise a simulation run:
// scheduler ticks, dispatches, sleeps, completions and promotions on one
// side, interpreted commands and background tasks on the other.
package progress
