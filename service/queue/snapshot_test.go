package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cpusim/model"
)

func TestSnapshot_String(t *testing.T) {
	promoted := model.NewProcess(3, model.ClassBackground)
	promoted.Promoted = true

	testCases := []struct {
		description string
		snapshot    *Snapshot
		expect      string
	}{
		{
			description: "empty state",
			snapshot:    &Snapshot{},
			expect: "Running: []\n" +
				"---------------------------\n" +
				"DQ: []\n" +
				"---------------------------\n" +
				"WQ: []\n" +
				"...\n",
		},
		{
			description: "running, ready and waiting",
			snapshot: &Snapshot{
				Running: model.NewProcess(1, model.ClassBackground),
				Ready:   []*model.Process{model.NewProcess(2, model.ClassForeground), promoted},
				Waiting: []Waiting{
					{Process: model.NewProcess(5, model.ClassBackground), Remaining: 3},
					{Process: model.NewProcess(6, model.ClassForeground), Remaining: 7},
				},
			},
			expect: "Running: [1B]\n" +
				"---------------------------\n" +
				"DQ: P => [2F] [3B*] (bottom/top)\n" +
				"---------------------------\n" +
				"WQ: [5B:3] [6F:7]\n" +
				"...\n",
		},
		{
			description: "elapsed wait entries are hidden",
			snapshot: &Snapshot{
				Waiting: []Waiting{
					{Process: model.NewProcess(5, model.ClassBackground), Remaining: 0},
				},
			},
			expect: "Running: []\n" +
				"---------------------------\n" +
				"DQ: []\n" +
				"---------------------------\n" +
				"WQ: []\n" +
				"...\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.snapshot.String())
		})
	}
}

func TestSnapshot_IDs(t *testing.T) {
	snapshot := &Snapshot{
		Running: model.NewProcess(1, model.ClassBackground),
		Ready:   []*model.Process{model.NewProcess(2, model.ClassForeground)},
		Waiting: []Waiting{{Process: model.NewProcess(3, model.ClassBackground), Remaining: 1}},
	}
	assert.Equal(t, []int{1, 2, 3}, snapshot.IDs())
}
