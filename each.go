package depot

import (
	"reflect"

	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

// Each applies fn to every entity holding a T component and writes the result back.
//
// The entities to visit are collected before fn first runs, so fn may write,
// remove and call Each again (for T or any other type) freely:
//   - entities given a T during the pass are not visited by it
//   - an entity whose T was removed before its turn is skipped
//   - an entity whose T is removed inside fn is not written back
//
// Visiting order is unspecified.
func Each[T any](w *World, fn Rule[T]) error {
	if fn == nil {
		return NilRuleError{Type: reflect.TypeFor[T]()}
	}
	sto, err := storageFor[T](w)
	if err != nil {
		return err
	}
	snapshot := iter_util.Collect(sto.ids())
	for _, id := range snapshot {
		value, ok := sto.get(id)
		if !ok {
			continue
		}
		result := fn(w, id, value)
		if !sto.update(id, result) {
			w.log.Debug("write-back skipped for removed component",
				zap.Uint64("id", uint64(id)),
				zap.String("component", typeName(sto.typ)),
			)
		}
	}
	return nil
}
