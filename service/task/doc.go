// Package task tracks background command executions so that the engine can
// either abandon them on shutdown or wait for them to finish.
package task
