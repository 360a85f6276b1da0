package depot

import "fmt"

var (
	_ System = ruleSystem[struct{}]{}
	_ System = trigger{}
	_ System = Systems{}
)

// ruleSystem runs one rule over every holder of T
type ruleSystem[T any] struct {
	name string
	rule Rule[T]
}

func (s ruleSystem[T]) Name() string {
	return s.name
}

func (s ruleSystem[T]) Execute(w *World) error {
	if err := Each(w, s.rule); err != nil {
		return fmt.Errorf("system %s: %w", s.name, err)
	}
	return nil
}

// trigger runs a procedure that does not touch component storage
type trigger struct {
	name string
	fn   func()
}

func (t trigger) Name() string {
	return t.name
}

func (t trigger) Execute(*World) error {
	if t.fn != nil {
		t.fn()
	}
	return nil
}

// Systems executes its members in slice order. There is no dependency
// resolution; callers decide the order.
type Systems []System

func (ss Systems) Name() string {
	return fmt.Sprintf("systems(%d)", len(ss))
}

// Execute stops at the first failing member
func (ss Systems) Execute(w *World) error {
	for _, s := range ss {
		if err := s.Execute(w); err != nil {
			return err
		}
	}
	return nil
}
