package hashtable

import (
	"github.com/dolthub/maphash"

	"github.com/gwastar/adlib-sub000/hash"
)

// GenericMap is an ergonomic front end over Table for callers who would
// otherwise have to hand-roll a hash function for every key type: it
// hashes comparable keys with maphash.Hasher and feeds the result
// through the hash package's MurmurHash3 finalizer to produce the
// probe hash every policy consumes. This is the "hash table depends on
// hash primitives" composition, made generic.
type GenericMap[K comparable, V any] struct {
	*Table[K, V]
	hasher maphash.Hasher[K]
}

// NewGenericMap returns an empty GenericMap using policy for collision
// resolution, with the default load factor and (for Hopscotch) the
// default neighborhood.
func NewGenericMap[K comparable, V any](policy Policy) *GenericMap[K, V] {
	g := &GenericMap[K, V]{hasher: maphash.NewHasher[K]()}
	g.Table = New[K, V](policy, g.hashKey)
	return g
}

func (g *GenericMap[K, V]) hashKey(k K) uint64 {
	return hash.Int64(g.hasher.Hash(k)).Uint64()
}

// GenericSet is a hash set over K built on top of GenericMap.
type GenericSet[K comparable] struct {
	m *GenericMap[K, struct{}]
}

// NewGenericSet returns an empty GenericSet using policy for collision
// resolution.
func NewGenericSet[K comparable](policy Policy) *GenericSet[K] {
	return &GenericSet[K]{m: NewGenericMap[K, struct{}](policy)}
}

// Add inserts k, reporting whether it was newly added.
func (s *GenericSet[K]) Add(k K) bool { return s.m.Insert(k, struct{}{}) }

// Contains reports whether k is present.
func (s *GenericSet[K]) Contains(k K) bool { return s.m.Contains(k) }

// Remove deletes k, reporting whether it was present.
func (s *GenericSet[K]) Remove(k K) bool { return s.m.Delete(k) }

// Len returns the number of elements in the set.
func (s *GenericSet[K]) Len() int { return s.m.Len() }

// Each calls fn for every element, in unspecified (bucket) order.
func (s *GenericSet[K]) Each(fn func(K)) {
	s.m.Each(func(k K, _ struct{}) { fn(k) })
}
