package depot

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// elementTypes holds one table.ElementType per Go type for the whole process.
// Worlds share these identities; keys are assigned per World.
var elementTypes = struct {
	sync.Mutex
	byType map[reflect.Type]table.ElementType
}{byType: make(map[reflect.Type]table.ElementType)}

func elementTypeFor[T any]() table.ElementType {
	typ := reflect.TypeFor[T]()
	elementTypes.Lock()
	defer elementTypes.Unlock()
	if elem, ok := elementTypes.byType[typ]; ok {
		return elem
	}
	elem := table.FactoryNewElementType[T]()
	elementTypes.byType[typ] = elem
	return elem
}

// resolver maps component types to storage keys. Identity comes from
// reflect.Type and keys are handed out in order of first sight, starting at
// zero, independently for each World. Names are kept only as a lookup index
// and never decide identity.
type resolver struct {
	nextKey Key
	keys    map[reflect.Type]Key
	elems   map[Key]table.ElementType
	names   map[string][]Key
}

func newResolver() *resolver {
	return &resolver{
		keys:  make(map[reflect.Type]Key),
		elems: make(map[Key]table.ElementType),
		names: make(map[string][]Key),
	}
}

// resolveKey returns the key for T and whether it was assigned by this call
func resolveKey[T any](r *resolver) (Key, reflect.Type, bool) {
	typ := reflect.TypeFor[T]()
	if key, ok := r.keys[typ]; ok {
		return key, typ, false
	}
	key := r.nextKey
	r.nextKey++

	r.keys[typ] = key
	r.elems[key] = elementTypeFor[T]()
	name := typeName(typ)
	r.names[name] = append(r.names[name], key)
	return key, typ, true
}

func (r *resolver) lookup(name string) (Key, error) {
	keys := r.names[name]
	switch len(keys) {
	case 0:
		return 0, UnknownComponentError{Name: name}
	case 1:
		return keys[0], nil
	}
	return 0, AmbiguousComponentError{Name: name, Keys: append([]Key(nil), keys...)}
}

// typeName is the import path qualified name for named types and the
// type literal otherwise.
func typeName(typ reflect.Type) string {
	if typ.Name() != "" && typ.PkgPath() != "" {
		return typ.PkgPath() + "." + typ.Name()
	}
	return typ.String()
}
