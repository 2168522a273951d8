// Package source reads newline-delimited command lines from any afs URL
// (local files, mem:// in tests, cloud storage when the matching afs
// connector is registered).
package source
