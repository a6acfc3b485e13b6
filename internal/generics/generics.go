// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func SliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// FilterInPlace preserves the elements of s for which keep returns true, and discards the others.
// It destroys the contents of the provided slice and reuses the allocated space
// for the returned slice. Order is preserved.
func FilterInPlace[T any](s []T, keep func(e T) bool) (filtered []T) {
	filtered = s[:0]
	for _, e := range s {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return
}

// IterFilter returns an iterator that only yields the values of seq for which keep returns true.
func IterFilter[V any](seq iter.Seq[V], keep func(v V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if keep(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// KeysSlice returns a newly allocated slice with the keys of the map m, in no particular order.
func KeysSlice[M interface{ ~map[K]V }, K comparable, V any](m M) []K {
	return slices.AppendSeq(make([]K, 0, len(m)), maps.Keys(m))
}

// SortedKeys returns the keys of the map m sorted.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) []K {
	keys := KeysSlice(m)
	slices.Sort(keys)
	return keys
}

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// MakeSet returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func MakeSet[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// CollectSet inserts every value yielded by seq into a new Set.
func CollectSet[T comparable](seq iter.Seq[T]) Set[T] {
	s := MakeSet[T]()
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert keys into set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Sub returns `s - s2`, that is, all elements in `s` that are not in `s2`.
func (s Set[T]) Sub(s2 Set[T]) Set[T] {
	sub := MakeSet[T]()
	for k := range s {
		if !s2.Has(k) {
			sub.Insert(k)
		}
	}
	return sub
}
