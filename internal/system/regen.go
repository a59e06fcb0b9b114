// internal/system/regen.go
package system

import (
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/types"
)

// RegenGameContext exposes the territory bonuses the regen step needs
// from the world without a direct dependency on it.
type RegenGameContext interface {
	RegenBonusFor(id types.EntityID) float64
	TowerArchetype(id types.EntityID) defs.TowerArchetype
}

// RegenSystem advances the troop economy of every tower. Runs first in
// the tick, before any movement or combat.
type RegenSystem struct {
	ecs  *entity.ECS
	ctx  difficulty.Context
	game RegenGameContext
}

func NewRegenSystem(ecs *entity.ECS, ctx difficulty.Context, game RegenGameContext) *RegenSystem {
	return &RegenSystem{ecs: ecs, ctx: ctx, game: game}
}

func (s *RegenSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.Owner == types.OwnerNeutral {
			continue
		}

		arch := s.game.TowerArchetype(id)
		rate := tower.Regen * arch.RegenMult * s.ctx.RegenMult
		rate *= 1.0 + s.game.RegenBonusFor(id)
		if tower.Owner == types.OwnerPlayer {
			rate *= 1.0 + s.ctx.Meta.RegenBonus
		}

		tower.Troops += rate * dt
		if tower.Troops > tower.MaxTroops {
			tower.Troops = tower.MaxTroops
		}
	}
}
