// Package tracing integrates OpenTelemetry with the simulator so that every
// scheduler tick and every interpreted command can be observed as a span.
// When tracing is not initialised the global no-op provider is used and all
// helpers are cheap no-ops.
package tracing
