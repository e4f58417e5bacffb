package nativelist

import (
	"reflect"
	"sync"
)

// TypeInfo identifies the element type of an ErasedList at runtime.
// The zero TypeInfo is the Void type: no identity and no element size.
type TypeInfo struct {
	typ  reflect.Type
	size uintptr
}

// TypeFor returns the TypeInfo for T. It panics if T contains pointers.
func TypeFor[T any]() TypeInfo {
	return TypeInfoOf(reflect.TypeFor[T]())
}

// TypeInfoOf returns the TypeInfo for t. It panics if t is nil or contains pointers.
func TypeInfoOf(t reflect.Type) TypeInfo {
	if t == nil {
		panic(&Error{Op: "TypeInfoOf", Kind: KindUnsupported, Detail: "nil type"})
	}
	mustBeUnmanaged("TypeInfoOf", t)
	return TypeInfo{typ: t, size: t.Size()}
}

// Type returns the reflected element type, or nil for Void.
func (ti TypeInfo) Type() reflect.Type { return ti.typ }

// Size returns the element size in bytes.
func (ti TypeInfo) Size() uintptr { return ti.size }

// IsVoid reports whether ti carries no type identity.
func (ti TypeInfo) IsVoid() bool { return ti.typ == nil }

// Name returns the element type name, or "Void".
func (ti TypeInfo) Name() string {
	if ti.typ == nil {
		return "Void"
	}
	return ti.typ.String()
}

// is reports whether the static type T is the type ti identifies.
func is[T any](ti TypeInfo) bool {
	return ti.typ != nil && ti.typ == reflect.TypeFor[T]()
}

// unmanaged caches the pointer-free verdict per type.
var unmanaged sync.Map // reflect.Type -> bool

// mustBeUnmanaged panics unless values of t hold no Go pointers.
// List memory lives outside the garbage-collected heap, so any pointer
// stored there would be invisible to the collector.
func mustBeUnmanaged(op string, t reflect.Type) {
	if !isUnmanaged(t) {
		panic(unsupported(op, t))
	}
}

func isUnmanaged(t reflect.Type) bool {
	if v, ok := unmanaged.Load(t); ok {
		return v.(bool)
	}
	ok := pointerFree(t)
	unmanaged.Store(t, ok)
	return ok
}

func unsupported(op string, t reflect.Type) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupported,
		Type:   t.String(),
		Detail: "element types must not contain pointers",
	}
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
