package domain

import "reflect"

// ValueObject represents an immutable domain concept defined by its attributes.
type ValueObject interface {
	Equals(other ValueObject) bool
}

// StructurallyEqual reports whether two value objects have the same concrete
// type and deeply equal fields. Nested value objects and plain data are
// compared recursively, never by reference.
func StructurallyEqual(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
