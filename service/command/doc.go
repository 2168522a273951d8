// Package command implements the line-oriented command interpreter.
//
// A line holds one or more segments separated by '&'. The first segment runs
// in the foreground; every following segment is started as a background task.
// Inside a segment, sub-commands separated by ';' run sequentially with a
// prompt delay between them. Each sub-command is an optional list of flags
// (-n repeat, -d duration seconds, -p parallelism, -m multiplier) followed by
// a built-in name and its arguments:
//
//	-n 3 gcd 48 18 ; prime 100 & -p 4 sum 1000000
//
// Built-in output is written through a Printer, normally the queue manager,
// so that it never interleaves with a queue snapshot.
package command
