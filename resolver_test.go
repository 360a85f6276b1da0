package depot

import (
	"slices"
	"testing"
)

type marker struct{}

func TestKeysArePerWorld(t *testing.T) {
	position := FactoryNewComponent[Position]()

	var first StorageHandle
	for i := 0; i < 200; i++ {
		world := Factory.NewWorld()
		id := world.NewID()
		if err := position.Write(world, id, Position{X: float64(i)}); err != nil {
			t.Fatalf("world %d: Write() error = %v", i, err)
		}
		if !position.Has(world, id) {
			t.Fatalf("world %d: Has() = false after Write", i)
		}

		handle, err := position.Storage(world)
		if err != nil {
			t.Fatalf("world %d: Storage() error = %v", i, err)
		}
		if handle.Key() != 0 {
			t.Fatalf("world %d: first type got key %d, want 0", i, handle.Key())
		}
		if first == nil {
			first = handle
			continue
		}
		if handle.ElementType().ID() != first.ElementType().ID() {
			t.Fatalf("world %d: element type identity differs from the first world", i)
		}
	}

	if position.ElementType().ID() != first.ElementType().ID() {
		t.Errorf("Component.ElementType() differs from the storage's element type")
	}
}

type base0 struct{}
type base1 struct{}
type base2 struct{}
type base3 struct{}
type base4 struct{}
type base5 struct{}
type base6 struct{}
type base7 struct{}
type base8 struct{}

type wrap0[T any] struct{ V T }
type wrap1[T any] struct{ V T }
type wrap2[T any] struct{ V T }
type wrap3[T any] struct{ V T }
type wrap4[T any] struct{ V T }
type wrap5[T any] struct{ V T }
type wrap6[T any] struct{ V T }
type wrap7[T any] struct{ V T }

// writeFamily writes nine distinct component types to id
func writeFamily[B any](t *testing.T, w *World, id ID) {
	t.Helper()
	mustWrite(t, w, id, *new(B))
	mustWrite(t, w, id, wrap0[B]{})
	mustWrite(t, w, id, wrap1[B]{})
	mustWrite(t, w, id, wrap2[B]{})
	mustWrite(t, w, id, wrap3[B]{})
	mustWrite(t, w, id, wrap4[B]{})
	mustWrite(t, w, id, wrap5[B]{})
	mustWrite(t, w, id, wrap6[B]{})
	mustWrite(t, w, id, wrap7[B]{})
}

func TestManyTypesInOneWorld(t *testing.T) {
	world := Factory.NewWorld()
	id, other := world.NewID(), world.NewID()

	writeFamily[base0](t, world, id)
	writeFamily[base1](t, world, id)
	writeFamily[base2](t, world, id)
	writeFamily[base3](t, world, id)
	writeFamily[base4](t, world, id)
	writeFamily[base5](t, world, id)
	writeFamily[base6](t, world, id)
	writeFamily[base7](t, world, id)
	writeFamily[base8](t, world, id)
	mustWrite(t, world, other, marker{})

	keys := world.Components(id)
	if len(keys) != 81 {
		t.Fatalf("Components() has %d keys, want 81", len(keys))
	}
	for i, key := range keys {
		if key != Key(i) {
			t.Fatalf("Components()[%d] = %d, want keys 0..80 in order", i, key)
		}
	}

	// marker is the 82nd type, past any signature mask width
	if !Has[marker](world, other) || Has[marker](world, id) {
		t.Errorf("Has[marker] wrong for keys beyond the signature mask")
	}
	if got := world.Components(other); !slices.Equal(got, []Key{81}) {
		t.Errorf("Components(other) = %v, want [81]", got)
	}

	if !Has[wrap7[base8]](world, id) {
		t.Errorf("Has() false for the last family member")
	}
	if removed, err := Remove[wrap7[base8]](world, id); err != nil || !removed {
		t.Fatalf("Remove() = (%v, %v)", removed, err)
	}
	if Has[wrap7[base8]](world, id) {
		t.Errorf("Has() true after Remove")
	}
	if got := len(world.Components(id)); got != 80 {
		t.Errorf("Components() has %d keys after Remove, want 80", got)
	}

	visits := 0
	err := Each(world, func(w *World, id ID, v wrap7[base8]) wrap7[base8] {
		visits++
		return v
	})
	if err != nil || visits != 0 {
		t.Errorf("Each() over the removed type = (%d visits, %v)", visits, err)
	}
}
