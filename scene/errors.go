package scene

import "fmt"

type IndexError struct {
	Index, Len int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

type ComponentNotFoundError struct {
	Component Behavior
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on node: %T", e.Component)
}
