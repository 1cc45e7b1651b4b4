package cli

import (
	"testing"

	"github.com/graphtint/graphtint/pkg/coloring"
)

func TestNewAssignment(t *testing.T) {
	prev := coloring.Coloring{"a": 0}
	cur := coloring.Coloring{"a": 0, "b": 1}

	id, color := newAssignment(prev, cur)
	if id != "b" || color != 1 {
		t.Errorf("newAssignment() = (%q, %d), want (%q, 1)", id, color, "b")
	}
}

func TestNewAssignmentNoChange(t *testing.T) {
	snapshot := coloring.Coloring{"a": 0, "b": 1}

	id, color := newAssignment(snapshot, snapshot)
	if id != "" || color != 0 {
		t.Errorf("newAssignment() on identical snapshots = (%q, %d), want (\"\", 0)", id, color)
	}
}

func TestPrintStepsMalformedTrace(t *testing.T) {
	// A trace with a repeated snapshot must not panic; the empty diff is
	// reported as a step with no new assignment.
	snapshot := coloring.Coloring{"a": 0}
	printSteps(coloring.Trace{snapshot, snapshot})
}
