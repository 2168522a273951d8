package command

import (
	"strings"
	"time"
)

// Command represents a parsed sub-command
type Command struct {
	Name       string
	Args       []string
	Repeat     int
	RepeatSet  bool
	Duration   time.Duration
	Parallel   int
	Multiplier int
	Text       string
}

// Iterations returns the repeat bound, -1 when only the duration bounds the command
func (c *Command) Iterations() int {
	switch {
	case c.RepeatSet:
		return c.Repeat
	case c.Duration > 0:
		return -1
	}
	return 1
}

// Workers returns the requested parallelism, at least one
func (c *Command) Workers() int {
	if c.Parallel < 1 {
		return 1
	}
	return c.Parallel
}

// Segment represents ';' separated sub-commands executed sequentially
type Segment struct {
	Commands []*Command
}

// IsEmpty returns true if segment has no runnable command
func (s *Segment) IsEmpty() bool {
	return s == nil || len(s.Commands) == 0
}

func (s *Segment) String() string {
	if s == nil {
		return ""
	}
	texts := make([]string, 0, len(s.Commands))
	for _, cmd := range s.Commands {
		texts = append(texts, cmd.Text)
	}
	return strings.Join(texts, " ; ")
}

// Line represents a parsed command line
type Line struct {
	Segments []*Segment
}

// Foreground returns the segment preceding the first '&'
func (l *Line) Foreground() *Segment {
	if l == nil || len(l.Segments) == 0 {
		return nil
	}
	return l.Segments[0]
}

// Background returns the non-empty segments following an '&'
func (l *Line) Background() []*Segment {
	if l == nil || len(l.Segments) < 2 {
		return nil
	}
	var ret []*Segment
	for _, segment := range l.Segments[1:] {
		if !segment.IsEmpty() {
			ret = append(ret, segment)
		}
	}
	return ret
}
