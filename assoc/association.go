package assoc

import (
	"iter"
)

// KeyValue is a single entry of an Association.
type KeyValue struct {
	Key   string
	Value any
}

// KV is a shorthand constructor for a KeyValue.
func KV(key string, value any) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// Association is an ordered, immutable key-value bag passed alongside every
// traversal. Keys are unique; the insertion order of the first occurrence of
// a key is preserved.
//
// A nil *Association is a valid, empty association.
type Association struct {
	keys   []string
	values map[string]any
}

// Of creates an Association from the given entries. When a key is repeated,
// the first position and the last value win.
func Of(kvs ...KeyValue) *Association {
	a := &Association{
		keys:   make([]string, 0, len(kvs)),
		values: make(map[string]any, len(kvs)),
	}

	for _, kv := range kvs {
		a.put(kv.Key, kv.Value)
	}

	return a
}

// Empty returns an association without entries.
func Empty() *Association {
	return Of()
}

// Get returns the value stored under the given key.
func (a *Association) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}

	v, ok := a.values[key]
	return v, ok
}

// Has reports whether the key is present.
func (a *Association) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of entries.
func (a *Association) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns a copy of the keys in order.
func (a *Association) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// All iterates over the entries in order.
func (a *Association) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// KeyValues returns the entries in order.
func (a *Association) KeyValues() []KeyValue {
	kvs := make([]KeyValue, 0, a.Len())
	for k, v := range a.All() {
		kvs = append(kvs, KeyValue{Key: k, Value: v})
	}
	return kvs
}

// With returns a new Association holding the entries of this one plus the
// given ones. The receiver is left untouched.
func (a *Association) With(kvs ...KeyValue) *Association {
	return Of(append(a.KeyValues(), kvs...)...)
}

// Map returns the entries as a plain map, losing the order.
func (a *Association) Map() map[string]any {
	m := make(map[string]any, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

func (a *Association) put(key string, value any) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}
