package depot

import (
	"fmt"
	"reflect"
)

// TypeMismatchError reports a storage whose values are not of the requested type
type TypeMismatchError struct {
	Key  Key
	Want reflect.Type
	Got  reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("storage %d holds %v, not %v", e.Key, e.Got, e.Want)
}

// StaleAccessError is raised (as a panic) when a storage is claimed while
// another claim on it is still open.
type StaleAccessError struct {
	Key  Key
	Type reflect.Type
}

func (e StaleAccessError) Error() string {
	return fmt.Sprintf("overlapping access to storage %d (%v)", e.Key, e.Type)
}

type UnknownComponentError struct {
	Name string
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("no component registered under name %q", e.Name)
}

type AmbiguousComponentError struct {
	Name string
	Keys []Key
}

func (e AmbiguousComponentError) Error() string {
	return fmt.Sprintf("component name %q matches storages %v", e.Name, e.Keys)
}

type NilRuleError struct {
	Type reflect.Type
}

func (e NilRuleError) Error() string {
	return fmt.Sprintf("nil rule for component %v", e.Type)
}
