// Package idgen wraps the UUID generator so that it can be stubbed in tests.
// Background task identifiers are opaque strings; callers should not rely on
// their format.
package idgen
