package depot

import "github.com/TheBitDrifter/table"

var _ Registrant = Component[struct{}]{}

// Register resolves T's key in w and creates its storage
func (c Component[T]) Register(w *World) (Key, error) {
	sto, err := storageFor[T](w)
	if err != nil {
		return 0, err
	}
	return sto.k, nil
}

// ElementType returns the identity T shares across every World
func (c Component[T]) ElementType() table.ElementType {
	return elementTypeFor[T]()
}

// Storage returns the untyped handle for T's storage in w
func (c Component[T]) Storage(w *World) (StorageHandle, error) {
	return StorageFor[T](w)
}

func (c Component[T]) Write(w *World, id ID, value T) error {
	return Write(w, id, value)
}

func (c Component[T]) Read(w *World, id ID) (T, bool, error) {
	return Read[T](w, id)
}

func (c Component[T]) Remove(w *World, id ID) (bool, error) {
	return Remove[T](w, id)
}

func (c Component[T]) Has(w *World, id ID) bool {
	return Has[T](w, id)
}

func (c Component[T]) Each(w *World, fn Rule[T]) error {
	return Each(w, fn)
}
