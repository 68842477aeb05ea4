/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reflection provides capability inspection of dynamic values: whether they can be indexed,
// enumerated as key/value pairs or pulled from.
package reflection

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

const (
	nextMethod = "Next"
	errMethod  = "Err"
)

// IsIndexed states whether v is a slice or an array. Strings are not considered indexed.
func IsIndexed(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsKeyed states whether v is a map.
func IsKeyed(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// IsSequence states whether v is a range-over-func single-value sequence i.e. func(yield func(T) bool).
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func && yield.NumIn() == 1 && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

// IsNilReference states whether v is a nil pointer, interface, function or channel. Nil slices and maps are not
// nil references: they are empty collections.
func IsNilReference(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsPullable states whether v exposes a `Next() (T, bool)` method.
func IsPullable(v any) bool {
	_, ok := pullMethod(v)
	return ok
}

// Elements returns the elements of an indexed value in order.
func Elements(v any) (elements []any, ok bool) {
	if !IsIndexed(v) {
		return
	}
	rv := reflect.ValueOf(v)
	elements = make([]any, 0, rv.Len())
	for i := range rv.Len() {
		elements = append(elements, rv.Index(i).Interface())
	}
	ok = true
	return
}

// Indexer returns positional access to an indexed value without copying its elements.
func Indexer(v any) (length int, at func(int) any, ok bool) {
	if !IsIndexed(v) {
		return
	}
	rv := reflect.ValueOf(v)
	length = rv.Len()
	at = func(i int) any { return rv.Index(i).Interface() }
	ok = true
	return
}

// Equal compares two dynamic values. Comparable values are compared with ==, anything else (slices, maps, etc.) is compared deeply.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() && isShallow(ta) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isShallow(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Array, reflect.Struct:
		// may hold non-comparable values at runtime
		return false
	default:
		return true
	}
}

// Len returns the length of an indexed or keyed value.
func Len(v any) (length int, ok bool) {
	if !IsIndexed(v) && !IsKeyed(v) {
		return
	}
	return reflect.ValueOf(v).Len(), true
}

// SortedKeys returns the keys of a map in a stable order. Keys of ordered kinds (integers, floats, strings)
// are compared naturally; any other key is compared through its type name and textual representation.
func SortedKeys(v any) (keys []any, ok bool) {
	if !IsKeyed(v) {
		return
	}
	rv := reflect.ValueOf(v)
	keys = make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	slices.SortStableFunc(keys, CompareValues)
	ok = true
	return
}

// MapIndex returns the value stored under key in map m.
func MapIndex(m any, key any) (value any, ok bool) {
	if !IsKeyed(m) {
		return
	}
	rv := reflect.ValueOf(m)
	k := reflect.ValueOf(key)
	if key == nil {
		k = reflect.Zero(rv.Type().Key())
	}
	if !k.Type().AssignableTo(rv.Type().Key()) {
		return
	}
	found := rv.MapIndex(k)
	if !found.IsValid() {
		return
	}
	return found.Interface(), true
}

// EmptyLike returns a new empty slice or map of the same type as v.
func EmptyLike(v any) (empty any, ok bool) {
	if v == nil {
		return
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface(), true
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), true
	default:
		return
	}
}

// Append appends element to slice and returns the resulting slice. ok is false if slice is not a slice or if element
// cannot be stored in it.
func Append(slice any, element any) (result any, ok bool) {
	if slice == nil || reflect.TypeOf(slice).Kind() != reflect.Slice {
		return
	}
	rv := reflect.ValueOf(slice)
	e, ok := assignable(element, rv.Type().Elem())
	if !ok {
		return
	}
	return reflect.Append(rv, e).Interface(), true
}

// SetMapEntry stores value under key in map m. ok is false if m is not a non-nil map or if the entry types do not match.
func SetMapEntry(m any, key, value any) (ok bool) {
	if !IsKeyed(m) {
		return
	}
	rv := reflect.ValueOf(m)
	if rv.IsNil() {
		return
	}
	k, ok := assignable(key, rv.Type().Key())
	if !ok {
		return
	}
	v, ok := assignable(value, rv.Type().Elem())
	if !ok {
		return
	}
	rv.SetMapIndex(k, v)
	return true
}

func assignable(v any, t reflect.Type) (value reflect.Value, ok bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		default:
			return
		}
	}
	value = reflect.ValueOf(v)
	if !value.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return value, true
}

// CompareValues defines a total order over dynamic values so that heterogeneous keys can be sorted deterministically.
func CompareValues(a, b any) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() {
		ka, kb := kindClass(ra.Kind()), kindClass(rb.Kind())
		if ka == kb {
			switch ka {
			case classInt:
				return cmp.Compare(ra.Int(), rb.Int())
			case classUint:
				return cmp.Compare(ra.Uint(), rb.Uint())
			case classFloat:
				return cmp.Compare(ra.Float(), rb.Float())
			case classString:
				return cmp.Compare(ra.String(), rb.String())
			case classBool:
				return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool()))
			}
		}
	}
	if c := cmp.Compare(typeName(a), typeName(b)); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

// Sequence adapts a range-over-func value of any element type into an iter.Seq[any].
func Sequence(v any) (seq iter.Seq[any], ok bool) {
	if !IsSequence(v) {
		return
	}
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return
	}
	seq = func(yield func(any) bool) {
		for e := range rv.Seq() {
			if !yield(e.Interface()) {
				return
			}
		}
	}
	ok = true
	return
}

// Puller returns a function pulling the next element of v through its `Next() (T, bool)` method.
func Puller(v any) (next func() (any, bool), ok bool) {
	m, ok := pullMethod(v)
	if !ok {
		return
	}
	next = func() (any, bool) {
		out := m.Call(nil)
		return out[0].Interface(), out[1].Bool()
	}
	return
}

// ErrorReporter returns the `Err() error` method of v if it has one.
func ErrorReporter(v any) (report func() error, ok bool) {
	if v == nil {
		return
	}
	m := reflect.ValueOf(v).MethodByName(errMethod)
	if !m.IsValid() {
		return
	}
	t := m.Type()
	errType := reflect.TypeFor[error]()
	if t.NumIn() != 0 || t.NumOut() != 1 || t.Out(0) != errType {
		return
	}
	report = func() error {
		out := m.Call(nil)[0]
		if out.IsNil() {
			return nil
		}
		return out.Interface().(error)
	}
	ok = true
	return
}

func pullMethod(v any) (m reflect.Value, ok bool) {
	if v == nil {
		return
	}
	m = reflect.ValueOf(v).MethodByName(nextMethod)
	if !m.IsValid() {
		return
	}
	t := m.Type()
	ok = t.NumIn() == 0 && t.NumOut() == 2 && t.Out(1).Kind() == reflect.Bool
	return
}

type class int

const (
	classOther class = iota
	classInt
	classUint
	classFloat
	classString
	classBool
)

func kindClass(k reflect.Kind) class {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	default:
		return classOther
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func typeName(v any) string {
	if v == nil {
		return ""
	}
	return reflect.TypeOf(v).String()
}
