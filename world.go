package depot

import (
	"maps"
	"reflect"
	"slices"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

func newWorld() *World {
	return &World{
		resolver:   newResolver(),
		storages:   make(map[Key]componentStorage),
		signatures: make(map[ID]mask.Mask),
		log:        Config.logger,
		capacity:   Config.initialCapacity,
	}
}

// NewID returns the next unused entity identifier
func (w *World) NewID() ID {
	id := w.nextID
	w.nextID++
	return id
}

// Register resolves the given components so their storages exist before first use
func (w *World) Register(components ...Registrant) error {
	for _, c := range components {
		if _, err := c.Register(w); err != nil {
			return err
		}
	}
	return nil
}

// Signature returns the set of component keys held by id.
// Only keys below mask.MaxBits are tracked; use Components for the full list.
func (w *World) Signature(id ID) mask.Mask {
	return w.signatures[id]
}

// Components lists the keys of every component id holds, in ascending order
func (w *World) Components(id ID) []Key {
	var keys []Key
	for _, key := range slices.Sorted(maps.Keys(w.storages)) {
		if w.holds(id, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// StorageByName returns the storage of the component type registered under
// name, which is the type's import path followed by its name
// (e.g. "github.com/you/game.Position").
//
// A Go type cannot be built from its name, so unlike StorageFor this never
// creates a storage: only types the World has already seen (through typed
// access or Register) are found, and any other name is an UnknownComponentError.
func (w *World) StorageByName(name string) (StorageHandle, error) {
	key, err := w.resolver.lookup(name)
	if err != nil {
		return nil, err
	}
	return storageHandle{w: w, sto: w.storages[key]}, nil
}

// StorageFor returns the storage for T, creating it if needed
func StorageFor[T any](w *World) (StorageHandle, error) {
	sto, err := storageFor[T](w)
	if err != nil {
		return nil, err
	}
	return storageHandle{w: w, sto: sto}, nil
}

// Write stores value as id's T component, replacing any previous value
func Write[T any](w *World, id ID, value T) error {
	sto, err := storageFor[T](w)
	if err != nil {
		return err
	}
	if sto.set(id, value) {
		w.mark(id, sto.k)
	}
	return nil
}

// Read returns a copy of id's T component. ok is false when id has none.
func Read[T any](w *World, id ID) (value T, ok bool, err error) {
	sto, err := storageFor[T](w)
	if err != nil {
		return value, false, err
	}
	value, ok = sto.get(id)
	return value, ok, nil
}

// Remove detaches id's T component and reports whether there was one
func Remove[T any](w *World, id ID) (bool, error) {
	sto, err := storageFor[T](w)
	if err != nil {
		return false, err
	}
	if !sto.remove(id) {
		return false, nil
	}
	w.unmark(id, sto.k)
	return true, nil
}

// Has reports whether id holds a T component
func Has[T any](w *World, id ID) bool {
	key, ok := w.resolver.keys[reflect.TypeFor[T]()]
	if !ok {
		return false
	}
	return w.holds(id, key)
}

// holds answers from the signature mask when the key fits in it and from the
// storage otherwise
func (w *World) holds(id ID, key Key) bool {
	if inMask(key) {
		return w.signatures[id].ContainsAll(keyMask(key))
	}
	sto, ok := w.storages[key]
	return ok && sto.contains(id)
}

func storageFor[T any](w *World) (*storage[T], error) {
	key, typ, _ := resolveKey[T](w.resolver)
	sto, ok := w.storages[key]
	if !ok {
		sto = newStorage[T](key, typ, w.capacity)
		w.storages[key] = sto
		w.log.Debug("component storage created",
			zap.String("component", typeName(typ)),
			zap.Uint32("key", uint32(key)),
		)
	}
	typed, err := asTyped[T](sto)
	if err != nil {
		w.log.Warn("component storage type mismatch", zap.Error(err))
		return nil, err
	}
	return typed, nil
}

func (w *World) mark(id ID, key Key) {
	if !inMask(key) {
		return
	}
	sig := w.signatures[id]
	sig.Mark(uint32(key))
	w.signatures[id] = sig
}

func (w *World) unmark(id ID, key Key) {
	if !inMask(key) {
		return
	}
	sig, ok := w.signatures[id]
	if !ok {
		return
	}
	sig.Unmark(uint32(key))
	if sig == (mask.Mask{}) {
		delete(w.signatures, id)
		return
	}
	w.signatures[id] = sig
}

func keyMask(key Key) mask.Mask {
	var m mask.Mask
	m.Mark(uint32(key))
	return m
}

func inMask(key Key) bool {
	return uint64(key) < uint64(mask.MaxBits)
}
