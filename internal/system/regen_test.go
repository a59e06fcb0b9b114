package system

import (
	"testing"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/types"
)

type fixedBonuses struct {
	regen float64
	arch  defs.TowerArchetype
}

func (f fixedBonuses) RegenBonusFor(id types.EntityID) float64 { return f.regen }

func (f fixedBonuses) TowerArchetype(id types.EntityID) defs.TowerArchetype { return f.arch }

func TestRegenScalesAndClamps(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{
		Owner: types.OwnerPlayer, Troops: 10, MaxTroops: 12, Regen: 2,
	}

	ctx := difficulty.Context{RegenMult: 1.0}
	bonuses := fixedBonuses{regen: 0.5, arch: defs.DefaultTowerArchetype}
	sys := NewRegenSystem(ecs, ctx, bonuses)

	// rate = 2 * 1 * 1 * 1.5 = 3/s; one tick of 0.5s adds 1.5.
	sys.Update(0.5)
	if got := ecs.Towers[id].Troops; !almostEqual(got, 11.5) {
		t.Fatalf("troops after regen: got %f, want 11.5", got)
	}

	sys.Update(1.0)
	if got := ecs.Towers[id].Troops; !almostEqual(got, 12) {
		t.Fatalf("regen exceeded capacity: %f", got)
	}
}

func TestRegenSkipsNeutralTowers(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{
		Owner: types.OwnerNeutral, Troops: 5, MaxTroops: 50, Regen: 2,
	}
	sys := NewRegenSystem(ecs, difficulty.Context{RegenMult: 1}, fixedBonuses{arch: defs.DefaultTowerArchetype})

	sys.Update(1.0)
	if got := ecs.Towers[id].Troops; !almostEqual(got, 5) {
		t.Fatalf("neutral tower regenerated: %f", got)
	}
}

func TestRegenMetaBonusOnlyForPlayer(t *testing.T) {
	ecs := entity.NewECS()
	player := ecs.NewEntity()
	ecs.Towers[player] = &component.Tower{Owner: types.OwnerPlayer, MaxTroops: 100, Regen: 2}
	enemy := ecs.NewEntity()
	ecs.Towers[enemy] = &component.Tower{Owner: types.OwnerEnemy, MaxTroops: 100, Regen: 2}

	ctx := difficulty.Context{RegenMult: 1, Meta: defs.MetaModifiers{RegenBonus: 0.5}}
	sys := NewRegenSystem(ecs, ctx, fixedBonuses{arch: defs.DefaultTowerArchetype})

	sys.Update(1.0)
	if got := ecs.Towers[player].Troops; !almostEqual(got, 3) {
		t.Errorf("player regen with meta bonus: got %f, want 3", got)
	}
	if got := ecs.Towers[enemy].Troops; !almostEqual(got, 2) {
		t.Errorf("enemy regen must ignore meta bonus: got %f, want 2", got)
	}
}
