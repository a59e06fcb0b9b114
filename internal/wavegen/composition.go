// internal/wavegen/composition.go
package wavegen

import (
	"log"

	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/utils"
)

// Spawn is one unit the composition decided to field.
type Spawn struct {
	DefID string
	Elite bool
}

// Result is a concrete wave composition. Spawns preserves draw order so
// the director can spread them over the spawn interval; Counts is the
// aggregate mapping consumed by preview and telemetry.
type Result struct {
	Spawns  []Spawn
	Counts  map[string]int
	Skipped []string // allowlist ids missing from the catalog
}

// Hard cap on spawns per wave; protects against a pathological budget
// paired with a near-zero spawn cost.
const maxSpawnsPerWave = 500

// Compose deterministically selects enemy archetypes and counts for one
// wave. All randomness comes from a generator seeded by
// (run seed, mission seed, wave index), so a fixed input tuple always
// produces a bit-identical result.
//
// Regular composition draws from non-boss, non-miniboss archetypes in the
// allowlist, weighted by spawn weight and modifier tag weights, consuming
// the budget by spawn cost. A boss wave additionally fields one
// boss-tagged archetype; a successful miniboss roll fields one
// miniboss-tagged archetype. If nothing is affordable the single cheapest
// eligible archetype is spawned once so no wave is ever empty; an
// allowlist holding only boss and miniboss archetypes falls back to the
// cheapest of those.
func Compose(ctx difficulty.Context, waveIndex int, budget float64,
	allowlist []string, lib *defs.Library, mods []defs.WaveModifier) Result {

	rng := utils.NewPRNG(utils.WaveSeed(ctx.RunSeed, ctx.MissionSeed, waveIndex))

	res := Result{Counts: make(map[string]int)}

	var pool []defs.EnemyDefinition
	var specials []defs.EnemyDefinition
	for _, id := range allowlist {
		def, ok := lib.Enemies[id]
		if !ok {
			log.Printf("wave %d: enemy archetype %q not in catalog, skipping", waveIndex, id)
			res.Skipped = append(res.Skipped, id)
			continue
		}
		if def.HasTag(defs.TagBoss) || def.HasTag(defs.TagMiniboss) {
			specials = append(specials, def)
			continue
		}
		pool = append(pool, def)
	}

	// Special-encounter rolls happen before the composition loop so the
	// draw sequence is stable regardless of how many regulars fit.
	if difficulty.IsBossWave(ctx, waveIndex, ctx.Plan.Waves) {
		if boss := pickTagged(specials, defs.TagBoss); boss != "" {
			res.add(Spawn{DefID: boss})
		}
	}
	if chance := difficulty.MinibossChance(ctx, waveIndex); chance > 0 && rng.Next() < chance {
		if mini := pickTagged(specials, defs.TagMiniboss); mini != "" {
			res.add(Spawn{DefID: mini})
		}
	}

	eliteChance := difficulty.EliteChance(ctx, waveIndex, ctx.Plan.Waves)
	remaining := budget

	for len(pool) > 0 && len(res.Spawns) < maxSpawnsPerWave {
		affordable := pool[:0:0]
		for _, def := range pool {
			if def.SpawnCost <= remaining {
				affordable = append(affordable, def)
			}
		}
		if len(affordable) == 0 {
			break
		}

		weights := make([]float64, len(affordable))
		for i, def := range affordable {
			weights[i] = modifiedWeight(def, mods)
		}
		idx := rng.ChooseWeighted(weights)
		if idx < 0 {
			break
		}

		def := affordable[idx]
		res.add(Spawn{DefID: def.ID, Elite: rng.Next() < eliteChance})
		remaining -= def.SpawnCost
	}

	// Every wave must field at least one unit. With no regular archetypes
	// in the allowlist the fallback draws from the specials instead.
	if len(res.Spawns) == 0 {
		fallback := pool
		if len(fallback) == 0 {
			fallback = specials
		}
		if len(fallback) > 0 {
			res.add(Spawn{DefID: cheapest(fallback)})
		}
	}

	return res
}

func (r *Result) add(s Spawn) {
	r.Spawns = append(r.Spawns, s)
	r.Counts[s.DefID]++
}

// modifiedWeight applies tag-weight modifiers multiplicatively to an
// archetype's base spawn weight.
func modifiedWeight(def defs.EnemyDefinition, mods []defs.WaveModifier) float64 {
	w := def.SpawnWeight
	if w <= 0 {
		w = 1.0
	}
	for _, m := range mods {
		for _, tag := range def.Tags {
			if f, ok := m.TagWeights[tag]; ok {
				w *= f
			}
		}
	}
	return w
}

// pickTagged returns the first archetype carrying the tag, in allowlist
// order. Allowlist order is part of the deterministic input.
func pickTagged(defs_ []defs.EnemyDefinition, tag string) string {
	for _, def := range defs_ {
		if def.HasTag(tag) {
			return def.ID
		}
	}
	return ""
}

func cheapest(pool []defs.EnemyDefinition) string {
	best := pool[0]
	for _, def := range pool[1:] {
		if def.SpawnCost < best.SpawnCost {
			best = def
		}
	}
	return best.ID
}

// ScaledStats resolves the effective hp, damage and speed for a spawned
// unit: archetype base stats, wave scaling, elite bonus and wave modifier
// multipliers.
func ScaledStats(def defs.EnemyDefinition, ctx difficulty.Context,
	waveIndex int, elite bool, mods []defs.WaveModifier) (hp, damage, speed float64) {

	hp = def.HP * ctx.HPScale(waveIndex)
	damage = def.Damage * ctx.DamageScale(waveIndex)
	speed = def.Speed * ctx.SpeedScale(waveIndex)

	if elite {
		hp *= 1.0 + ctx.EliteHPBonus
		damage *= 1.0 + ctx.EliteDamageBonus
	}
	for _, m := range mods {
		if m.HPMult != 0 {
			hp *= m.HPMult
		}
		if m.DamageMult != 0 {
			damage *= m.DamageMult
		}
		if m.SpeedMult != 0 {
			speed *= m.SpeedMult
		}
	}
	return hp, damage, speed
}
