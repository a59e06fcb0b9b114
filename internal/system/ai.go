// internal/system/ai.go
package system

import (
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/types"
)

// AIGameContext is what the enemy sender needs from the world: link
// creation with full validation, and the adjacency predicate.
type AIGameContext interface {
	CreateLink(from, to types.EntityID, owner types.Owner) (types.EntityID, error)
	AreNeighbors(a, b types.EntityID) bool
}

// AISystem drives enemy-owned towers: on each think tick, a tower holding
// enough troops links toward the weakest adjacent tower it doesn't own.
// The regular send system then moves the troops.
type AISystem struct {
	ecs   *entity.ECS
	ai    defs.AIRules
	game  AIGameContext
	timer float64
}

func NewAISystem(ecs *entity.ECS, ai defs.AIRules, game AIGameContext) *AISystem {
	return &AISystem{ecs: ecs, ai: ai, game: game}
}

func (s *AISystem) Update(dt float64) {
	s.timer += dt
	if s.timer < s.ai.ThinkInterval {
		return
	}
	s.timer -= s.ai.ThinkInterval

	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.Owner != types.OwnerEnemy || tower.Troops < s.ai.MinTroopsToAttack {
			continue
		}

		target := s.pickTarget(id)
		if target == 0 {
			continue
		}
		// Validation failures (capacity, duplicates) just mean this tower
		// skips a think tick.
		s.game.CreateLink(id, target, types.OwnerEnemy)
	}
}

// pickTarget returns the adjacent non-enemy tower with the fewest troops.
func (s *AISystem) pickTarget(from types.EntityID) types.EntityID {
	var best types.EntityID
	bestTroops := 0.0
	for _, otherID := range s.ecs.SortedTowerIDs() {
		if otherID == from {
			continue
		}
		other := s.ecs.Towers[otherID]
		if other.Owner == types.OwnerEnemy {
			continue
		}
		if !s.game.AreNeighbors(from, otherID) {
			continue
		}
		if best == 0 || other.Troops < bestTroops {
			best = otherID
			bestTroops = other.Troops
		}
	}
	return best
}
