// internal/utils/union_find.go
package utils

import "go-territory-wars/internal/types"

// UnionFind groups entities into connected components and tracks the
// size of each component, which is what the territory cluster tiers key
// on. Union by rank with path compression.
type UnionFind struct {
	parent map[types.EntityID]types.EntityID
	rank   map[types.EntityID]int
	size   map[types.EntityID]int
}

func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[types.EntityID]types.EntityID),
		rank:   make(map[types.EntityID]int),
		size:   make(map[types.EntityID]int),
	}
}

// Find returns the root of the component containing id, registering id
// as a singleton on first sight.
func (uf *UnionFind) Find(id types.EntityID) types.EntityID {
	if _, exists := uf.parent[id]; !exists {
		uf.parent[id] = id
		uf.rank[id] = 0
		uf.size[id] = 1
	}
	if uf.parent[id] != id {
		uf.parent[id] = uf.Find(uf.parent[id]) // Path compression
	}
	return uf.parent[id]
}

// Union merges the components containing idA and idB.
func (uf *UnionFind) Union(idA, idB types.EntityID) {
	rootA := uf.Find(idA)
	rootB := uf.Find(idB)
	if rootA == rootB {
		return
	}
	if uf.rank[rootA] < uf.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	if uf.rank[rootA] == uf.rank[rootB] {
		uf.rank[rootA]++
	}
}

// ComponentSize returns the number of entities in the component
// containing id.
func (uf *UnionFind) ComponentSize(id types.EntityID) int {
	return uf.size[uf.Find(id)]
}
