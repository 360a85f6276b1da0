package depot

import (
	"iter"
	"reflect"
)

var _ componentStorage = &storage[struct{}]{}

// componentStorage is the capability every per-type storage exposes to the World.
// Implementations claim themselves for the duration of each call and never
// hand out references into their backing arrays.
type componentStorage interface {
	key() Key
	elemType() reflect.Type
	length() int
	contains(ID) bool
	ids() iter.Seq[ID]
	getAny(ID) (any, bool)
	setAny(ID, any) error
	remove(ID) bool
}

// storage is a sparse set: values are packed in dense, owners[i] is the entity
// that holds dense[i], and index maps an entity back to its slot.
type storage[T any] struct {
	k       Key
	typ     reflect.Type
	claimed bool
	dense   []T
	owners  []ID
	index   map[ID]int
}

func newStorage[T any](key Key, typ reflect.Type, capacity int) *storage[T] {
	return &storage[T]{
		k:      key,
		typ:    typ,
		dense:  make([]T, 0, capacity),
		owners: make([]ID, 0, capacity),
		index:  make(map[ID]int, capacity),
	}
}

// asTyped is the checked downcast from the capability interface
func asTyped[T any](s componentStorage) (*storage[T], error) {
	typed, ok := s.(*storage[T])
	if !ok {
		return nil, TypeMismatchError{Key: s.key(), Want: reflect.TypeFor[T](), Got: s.elemType()}
	}
	return typed, nil
}

func (s *storage[T]) acquire() {
	if s.claimed {
		panic(StaleAccessError{Key: s.k, Type: s.typ})
	}
	s.claimed = true
}

func (s *storage[T]) release() {
	s.claimed = false
}

func (s *storage[T]) key() Key {
	return s.k
}

func (s *storage[T]) elemType() reflect.Type {
	return s.typ
}

func (s *storage[T]) length() int {
	s.acquire()
	defer s.release()
	return len(s.dense)
}

func (s *storage[T]) contains(id ID) bool {
	s.acquire()
	defer s.release()
	_, ok := s.index[id]
	return ok
}

// get returns a copy of the value held by id
func (s *storage[T]) get(id ID) (T, bool) {
	s.acquire()
	defer s.release()
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// set inserts or overwrites the value for id and reports whether it was inserted
func (s *storage[T]) set(id ID, value T) bool {
	s.acquire()
	defer s.release()
	if i, ok := s.index[id]; ok {
		s.dense[i] = value
		return false
	}
	s.index[id] = len(s.dense)
	s.dense = append(s.dense, value)
	s.owners = append(s.owners, id)
	return true
}

// update overwrites the value for id only if id is still present
func (s *storage[T]) update(id ID, value T) bool {
	s.acquire()
	defer s.release()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.dense[i] = value
	return true
}

func (s *storage[T]) remove(id ID) bool {
	s.acquire()
	defer s.release()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.owners[i] = s.owners[last]
		s.index[s.owners[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.index, id)
	return true
}

// ids yields the current owners. The claim is held while the sequence is being
// consumed, so consumers must only collect it.
func (s *storage[T]) ids() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		s.acquire()
		defer s.release()
		for _, id := range s.owners {
			if !yield(id) {
				return
			}
		}
	}
}

func (s *storage[T]) getAny(id ID) (any, bool) {
	v, ok := s.get(id)
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *storage[T]) setAny(id ID, value any) error {
	v, ok := value.(T)
	if !ok {
		return TypeMismatchError{Key: s.k, Want: s.typ, Got: reflect.TypeOf(value)}
	}
	s.set(id, v)
	return nil
}
