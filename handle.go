package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

var _ StorageHandle = storageHandle{}

type storageHandle struct {
	w   *World
	sto componentStorage
}

func (h storageHandle) Key() Key {
	return h.sto.key()
}

// ElementType is the process-wide identity of the stored type; it is the same
// in every World, unlike Key.
func (h storageHandle) ElementType() table.ElementType {
	return h.w.resolver.elems[h.sto.key()]
}

func (h storageHandle) Name() string {
	return typeName(h.sto.elemType())
}

func (h storageHandle) Len() int {
	return h.sto.length()
}

func (h storageHandle) Has(id ID) bool {
	return h.sto.contains(id)
}

func (h storageHandle) Get(id ID) (any, bool) {
	return h.sto.getAny(id)
}

// Set stores value for id; the value's dynamic type must match the storage exactly
func (h storageHandle) Set(id ID, value any) error {
	if err := h.sto.setAny(id, value); err != nil {
		return err
	}
	h.w.mark(id, h.sto.key())
	return nil
}

func (h storageHandle) Remove(id ID) bool {
	if !h.sto.remove(id) {
		return false
	}
	h.w.unmark(id, h.sto.key())
	return true
}

// ReadFrom reads id's value from an untyped handle as a T
func ReadFrom[T any](h StorageHandle, id ID) (value T, ok bool, err error) {
	v, found := h.Get(id)
	if !found {
		return value, false, nil
	}
	value, ok = v.(T)
	if !ok {
		return value, false, TypeMismatchError{Key: h.Key(), Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)}
	}
	return value, true, nil
}
