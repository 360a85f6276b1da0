package scene

// Container holds the root nodes of a scene
type Container struct {
	nodes []*Node
}

func NewContainer() *Container {
	return &Container{}
}

// Add appends node and returns its index
func (c *Container) Add(node *Node) int {
	c.nodes = append(c.nodes, node)
	return len(c.nodes) - 1
}

func (c *Container) Remove(index int) (*Node, error) {
	var node *Node
	var err error
	c.nodes, node, err = removeAt(c.nodes, index)
	return node, err
}

func (c *Container) Len() int {
	return len(c.nodes)
}

func (c *Container) Start() {
	for _, n := range c.nodes {
		n.Start()
	}
}

func (c *Container) Update() {
	for _, n := range c.nodes {
		n.Update()
	}
}
