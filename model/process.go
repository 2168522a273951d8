package model

import (
	"fmt"
	"strconv"
)

// Class represents the class tag of a simulated process
type Class string

const (
	ClassForeground Class = "F"
	ClassBackground Class = "B"
)

// IsValid returns true for a known class tag
func (c Class) IsValid() bool {
	return c == ClassForeground || c == ClassBackground
}

// Process represents a simulated process
type Process struct {
	ID       int   `json:"id" yaml:"id"`
	Class    Class `json:"class" yaml:"class"`
	Promoted bool  `json:"promoted" yaml:"promoted"`
}

// String returns the compact id+class label, i.e. 3B
func (p *Process) String() string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(p.ID) + string(p.Class)
}

// Label returns the process label with a trailing promotion marker
func (p *Process) Label() string {
	if p == nil {
		return ""
	}
	if p.Promoted {
		return p.String() + "*"
	}
	return p.String()
}

// Clone returns a value copy of the process
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

// NewProcess creates a process
func NewProcess(id int, class Class) *Process {
	return &Process{ID: id, Class: class}
}

// ClassOf returns the class tag assigned to the supplied id: even ids are
// foreground, odd ids are background.
func ClassOf(id int) Class {
	if id%2 == 0 {
		return ClassForeground
	}
	return ClassBackground
}

// Population creates count processes with ids 1..count and alternating class tags
func Population(count int) ([]*Process, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid process count: %d", count)
	}
	ret := make([]*Process, 0, count)
	for id := 1; id <= count; id++ {
		ret = append(ret, NewProcess(id, ClassOf(id)))
	}
	return ret, nil
}
