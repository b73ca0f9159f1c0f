package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zen-systems/taskrouter/pkg/task"
)

func TestMockHandlerCannedResponse(t *testing.T) {
	m := NewMockHandler("qa")
	m.SetResponse("run the suite", "all green")

	tk := task.New("run the suite")
	result, err := m.Execute(context.Background(), tk)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Content != "all green" {
		t.Errorf("content = %q, want canned response", result.Content)
	}
	if result.TaskID != tk.ID {
		t.Errorf("result task id = %s, want %s", result.TaskID, tk.ID)
	}
	if m.Calls() != 1 {
		t.Errorf("calls = %d, want 1", m.Calls())
	}
}

func TestMockHandlerDefaultEchoesDescription(t *testing.T) {
	m := NewMockHandler("qa")

	result, err := m.Execute(context.Background(), task.New("something unscripted"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(result.Content, "something unscripted") {
		t.Errorf("default response does not echo the description: %q", result.Content)
	}
}

func TestMockHandlerRespectsCancellation(t *testing.T) {
	m := NewMockHandler("qa")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Execute(ctx, task.New("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestDefaultDescriptors(t *testing.T) {
	descs := DefaultDescriptors()

	seen := make(map[string]bool)
	for _, d := range descs {
		if seen[d.ID] {
			t.Errorf("duplicate descriptor id %s", d.ID)
		}
		seen[d.ID] = true
		if len(d.Capabilities) == 0 {
			t.Errorf("descriptor %s declares no capabilities", d.ID)
		}
	}
	for _, required := range []string{"frontend", "backend", "generalist"} {
		if !seen[required] {
			t.Errorf("missing descriptor %s", required)
		}
	}
}

func TestDescriptorAffinityDefault(t *testing.T) {
	d := Descriptor{ID: "x", DomainAffinity: map[string]float64{"frontend": 0.9}}

	if got := d.Affinity("frontend"); got != 0.9 {
		t.Errorf("Affinity(frontend) = %.2f, want 0.9", got)
	}
	if got := d.Affinity("unknown"); got != 0.2 {
		t.Errorf("Affinity(unknown) = %.2f, want 0.2 default", got)
	}
}
