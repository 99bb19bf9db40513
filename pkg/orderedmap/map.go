// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Map is an insertion-ordered map. The zero value is ready to use.
type Map[K comparable, V any] struct {
	items []MapItem[K, V]
	index map[K]int
}

type MapItem[K comparable, V any] struct {
	Key   K
	Value V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func NewMapWithItems[K comparable, V any](items []MapItem[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, item := range items {
		m.Set(item.Key, item.Value)
	}
	return m
}

// Set inserts key at the end of the map, or replaces the value in place
// when key is already present (its position does not change).
func (m *Map[K, V]) Set(key K, value V) {
	if i, found := m.index[key]; found {
		m.items[i].Value = value
		return
	}
	if m.index == nil {
		m.index = map[K]int{}
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, MapItem[K, V]{key, value})
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, found := m.index[key]; found {
		return m.items[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Has(key K) bool {
	_, found := m.index[key]
	return found
}

func (m *Map[K, V]) Delete(key K) bool {
	i, found := m.index[key]
	if !found {
		return false
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.items); j++ {
		m.index[m.items[j].Key] = j
	}
	return true
}

func (m *Map[K, V]) Keys() (keys []K) {
	m.Iterate(func(k K, _ V) {
		keys = append(keys, k)
	})
	return
}

func (m *Map[K, V]) Values() (values []V) {
	m.Iterate(func(_ K, v V) {
		values = append(values, v)
	})
	return
}

func (m *Map[K, V]) Iterate(iterFunc func(k K, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map[K, V]) Len() int { return len(m.items) }
