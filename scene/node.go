package scene

import (
	"iter"
	"reflect"
	"slices"
)

// Behavior is the capability every node component provides
type Behavior interface {
	Start()
	Update()
}

type Node struct {
	components []Behavior
	children   []*Node
}

func NewNode(components ...Behavior) *Node {
	return &Node{components: slices.Clone(components)}
}

func (n *Node) AddComponent(b Behavior) {
	n.components = append(n.components, b)
}

// RemoveComponent detaches the first component with the same dynamic type as like
func (n *Node) RemoveComponent(like Behavior) (Behavior, error) {
	want := reflect.TypeOf(like)
	for i, c := range n.components {
		if reflect.TypeOf(c) == want {
			n.components = slices.Delete(n.components, i, i+1)
			return c, nil
		}
	}
	return nil, ComponentNotFoundError{Component: like}
}

func (n *Node) Components() iter.Seq[Behavior] {
	return slices.Values(n.components)
}

// AddChild appends child and returns its index
func (n *Node) AddChild(child *Node) int {
	n.children = append(n.children, child)
	return len(n.children) - 1
}

// RemoveChild detaches the child at index; later children shift down by one
func (n *Node) RemoveChild(index int) (*Node, error) {
	var child *Node
	var err error
	n.children, child, err = removeAt(n.children, index)
	return child, err
}

func (n *Node) Children() iter.Seq2[int, *Node] {
	return slices.All(n.children)
}

func (n *Node) Start() {
	for _, child := range n.children {
		child.Start()
	}
	for _, c := range n.components {
		c.Start()
	}
}

func (n *Node) Update() {
	for _, child := range n.children {
		child.Update()
	}
	for _, c := range n.components {
		c.Update()
	}
}

func removeAt(nodes []*Node, index int) ([]*Node, *Node, error) {
	if index < 0 || index >= len(nodes) {
		return nodes, nil, IndexError{Index: index, Len: len(nodes)}
	}
	removed := nodes[index]
	return slices.Delete(nodes, index, index+1), removed, nil
}
