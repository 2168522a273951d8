package queue

import (
	"strconv"
	"strings"

	"github.com/viant/cpusim/model"
)

const separator = "---------------------------"

// Snapshot represents a point-in-time copy of the manager state
type Snapshot struct {
	Running *model.Process
	Ready   []*model.Process
	Waiting []Waiting
	Cursor  int
}

// IDs returns every process id held by the running slot, the ready queue
// and the wait queue, in that order.
func (s *Snapshot) IDs() []int {
	ret := make([]int, 0, len(s.Ready)+len(s.Waiting)+1)
	if s.Running != nil {
		ret = append(ret, s.Running.ID)
	}
	for _, p := range s.Ready {
		ret = append(ret, p.ID)
	}
	for _, entry := range s.Waiting {
		ret = append(ret, entry.Process.ID)
	}
	return ret
}

// String renders the console form of the snapshot:
//
//	Running: [1B]
//	---------------------------
//	DQ: P => [2F] [3B*] (bottom/top)
//	---------------------------
//	WQ: [5B:3]
//	...
func (s *Snapshot) String() string {
	b := &strings.Builder{}
	b.WriteString("Running: [")
	b.WriteString(s.Running.String())
	b.WriteString("]\n")
	b.WriteString(separator)
	b.WriteString("\nDQ: ")
	if len(s.Ready) == 0 {
		b.WriteString("[]")
	} else {
		b.WriteString("P =>")
		for _, p := range s.Ready {
			b.WriteString(" [")
			b.WriteString(p.Label())
			b.WriteString("]")
		}
		b.WriteString(" (bottom/top)")
	}
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\nWQ: ")
	written := 0
	for _, entry := range s.Waiting {
		if entry.Remaining <= 0 {
			continue
		}
		if written > 0 {
			b.WriteString(" ")
		}
		b.WriteString("[")
		b.WriteString(entry.Process.String())
		b.WriteString(":")
		b.WriteString(strconv.Itoa(entry.Remaining))
		b.WriteString("]")
		written++
	}
	if written == 0 {
		b.WriteString("[]")
	}
	b.WriteString("\n...\n")
	return b.String()
}
