package depot

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

// ID identifies an entity. IDs are issued in increasing order starting at zero
// and are never reused by the World that issued them.
type ID uint64

// Key locates the storage of one component type inside a World
type Key uint32

// Rule transforms one component value; its result is written back under id
type Rule[T any] func(w *World, id ID, component T) T

type System interface {
	Name() string
	Execute(w *World) error
}

// StorageHandle is an untyped view of one component storage.
// Every method claims the storage for its own duration only.
type StorageHandle interface {
	Key() Key
	ElementType() table.ElementType
	Name() string
	Len() int
	Has(ID) bool
	Get(ID) (any, bool)
	Set(ID, any) error
	Remove(ID) bool
}

// Registrant resolves its component type ahead of first use
type Registrant interface {
	Register(w *World) (Key, error)
}

type World struct {
	nextID     ID
	resolver   *resolver
	storages   map[Key]componentStorage
	signatures map[ID]mask.Mask
	log        *zap.Logger
	capacity   int
}

// Component is a typed accessor for values of T held by any World
type Component[T any] struct{}
