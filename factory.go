package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

// NewTrigger wraps a procedure that runs without a component argument
func (f factory) NewTrigger(name string, fn func()) System {
	return trigger{name: name, fn: fn}
}

func (f factory) NewSystems(systems ...System) Systems {
	return Systems(systems)
}

func FactoryNewComponent[T any]() Component[T] {
	return Component[T]{}
}

// FactoryNewSystem wraps rule so that Execute(w) is Each[T](w, rule)
func FactoryNewSystem[T any](name string, rule Rule[T]) System {
	return ruleSystem[T]{name: name, rule: rule}
}
