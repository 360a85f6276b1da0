package scene

import (
	"errors"
	"slices"
	"testing"
)

// recorder appends "<name>.start" / "<name>.update" to a shared trace
type recorder struct {
	name  string
	trace *[]string
}

func (r *recorder) Start()  { *r.trace = append(*r.trace, r.name+".start") }
func (r *recorder) Update() { *r.trace = append(*r.trace, r.name+".update") }

type other struct{}

func (other) Start()  {}
func (other) Update() {}

func TestLifecycleOrder(t *testing.T) {
	var trace []string
	rec := func(name string) Behavior { return &recorder{name: name, trace: &trace} }

	root := NewNode(rec("root"))
	a := NewNode(rec("a"))
	a.AddChild(NewNode(rec("a1")))
	root.AddChild(a)
	root.AddChild(NewNode(rec("b")))

	container := NewContainer()
	container.Add(root)
	container.Add(NewNode(rec("second")))

	tests := []struct {
		name  string
		run   func()
		phase string
	}{
		{"Start", container.Start, "start"},
		{"Update", container.Update, "update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace = trace[:0]
			tt.run()
			want := []string{"a1", "a", "b", "root", "second"}
			for i := range want {
				want[i] += "." + tt.phase
			}
			if !slices.Equal(trace, want) {
				t.Errorf("%s order = %v, want %v", tt.name, trace, want)
			}
		})
	}
}

func TestChildIndices(t *testing.T) {
	parent := NewNode()
	first, second, third := NewNode(), NewNode(), NewNode()

	for i, child := range []*Node{first, second, third} {
		if got := parent.AddChild(child); got != i {
			t.Errorf("AddChild() index = %d, want %d", got, i)
		}
	}

	removed, err := parent.RemoveChild(1)
	if err != nil {
		t.Fatalf("RemoveChild(1) error = %v", err)
	}
	if removed != second {
		t.Errorf("RemoveChild(1) returned the wrong node")
	}

	var remaining []*Node
	for _, child := range parent.Children() {
		remaining = append(remaining, child)
	}
	if !slices.Equal(remaining, []*Node{first, third}) {
		t.Errorf("children after removal = %v", remaining)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"Negative", -1},
		{"Past end", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := NewContainer()
			container.Add(NewNode())
			container.Add(NewNode())

			_, err := container.Remove(tt.index)
			var indexErr IndexError
			if !errors.As(err, &indexErr) {
				t.Fatalf("Remove(%d) error = %v, want IndexError", tt.index, err)
			}
			if container.Len() != 2 {
				t.Errorf("Len() = %d after failed removal, want 2", container.Len())
			}

			if _, err := NewNode().RemoveChild(tt.index); !errors.As(err, &indexErr) {
				t.Errorf("RemoveChild(%d) error = %v, want IndexError", tt.index, err)
			}
		})
	}
}

func TestRemoveComponent(t *testing.T) {
	var trace []string
	rec := &recorder{name: "r", trace: &trace}
	node := NewNode(other{}, rec)

	got, err := node.RemoveComponent(&recorder{})
	if err != nil {
		t.Fatalf("RemoveComponent() error = %v", err)
	}
	if got != rec {
		t.Errorf("RemoveComponent() returned %v, want the attached recorder", got)
	}

	node.Update()
	if len(trace) != 0 {
		t.Errorf("removed component still updated: %v", trace)
	}

	_, err = node.RemoveComponent(&recorder{})
	var notFound ComponentNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("second RemoveComponent() error = %v, want ComponentNotFoundError", err)
	}

	count := 0
	for range node.Components() {
		count++
	}
	if count != 1 {
		t.Errorf("node has %d components, want 1", count)
	}
}
