// internal/app/territory.go
package app

import (
	"sort"

	"go-territory-wars/internal/config"
	"go-territory-wars/internal/types"
	"go-territory-wars/internal/utils"
)

// Territory clusters are connected components of same-owner towers via
// active links. Recomputation is event-driven, never per tick: every
// mutating operation (link create/destroy, capture) raises the dirty
// flag and the next state query batch recomputes once.

func (g *Game) markClustersDirty() {
	g.clustersDirty = true
}

// ensureClusters rebuilds the tower→cluster-size index if anything
// structural changed since the last query batch.
func (g *Game) ensureClusters() {
	if !g.clustersDirty {
		return
	}
	g.clustersDirty = false

	uf := utils.NewUnionFind()
	for _, id := range g.ECS.SortedTowerIDs() {
		uf.Find(id)
	}

	// A link only carries territory when it still connects two towers its
	// owner holds; stale edges left by a capture are inert.
	for _, linkID := range g.ECS.SortedLinkIDs() {
		link := g.ECS.Links[linkID]
		from, ok1 := g.ECS.Towers[link.From]
		to, ok2 := g.ECS.Towers[link.To]
		if !ok1 || !ok2 {
			continue
		}
		if from.Owner == link.Owner && to.Owner == link.Owner {
			uf.Union(link.From, link.To)
		}
	}

	g.clusterSize = make(map[types.EntityID]int, len(g.ECS.Towers))
	g.clusterRoot = make(map[types.EntityID]types.EntityID, len(g.ECS.Towers))
	for _, id := range g.ECS.SortedTowerIDs() {
		g.clusterSize[id] = uf.ComponentSize(id)
		g.clusterRoot[id] = uf.Find(id)
	}
}

// clusterSizeFor returns the size of the cluster containing the tower.
func (g *Game) clusterSizeFor(id types.EntityID) int {
	g.ensureClusters()
	return g.clusterSize[id]
}

// ClusterRegenBonus returns the additive regen bonus earned by the
// tower's cluster size.
func (g *Game) ClusterRegenBonus(id types.EntityID) float64 {
	size := g.clusterSizeFor(id)
	bonus := 0.0
	if size >= config.ClusterTier1Size {
		bonus += config.ClusterTier1RegenBonus
	}
	if size >= config.ClusterTier2Size {
		bonus += config.ClusterTier2RegenBonus
	}
	return bonus
}

// ClusterArmorBonus returns the additive armor bonus earned by the
// tower's cluster size.
func (g *Game) ClusterArmorBonus(id types.EntityID) float64 {
	size := g.clusterSizeFor(id)
	bonus := 0.0
	if size >= config.ClusterTier1Size {
		bonus += config.ClusterTier1ArmorBonus
	}
	if size >= config.ClusterTier2Size {
		bonus += config.ClusterTier2ArmorBonus
	}
	return bonus
}

// ClusterVisionBonus returns the vision range bonus for the tower.
func (g *Game) ClusterVisionBonus(id types.EntityID) int {
	size := g.clusterSizeFor(id)
	bonus := 0
	if size >= config.ClusterTier1Size {
		bonus += config.ClusterTier1Vision
	}
	if size >= config.ClusterTier2Size {
		bonus += config.ClusterTier2Vision
	}
	return bonus
}

// PlayerClusterSizes returns the sizes of all player-owned clusters,
// largest first, for HUD badges.
func (g *Game) PlayerClusterSizes() []int {
	g.ensureClusters()

	seen := make(map[types.EntityID]bool)
	var sizes []int
	for _, id := range g.ECS.SortedTowerIDs() {
		tower := g.ECS.Towers[id]
		if tower.Owner != types.OwnerPlayer {
			continue
		}
		root := g.clusterRoot[id]
		if seen[root] {
			continue
		}
		seen[root] = true
		sizes = append(sizes, g.clusterSize[id])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
