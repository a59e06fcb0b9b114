// internal/difficulty/context.go
package difficulty

import (
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/defs"
)

// ContextInput gathers everything a mission attempt resolves against.
// The caller looks the tier, preset and override entries up in the loaded
// catalogs first; BuildContext assumes they are valid.
type ContextInput struct {
	MissionID     string
	StageID       string
	StageIndex    int
	MissionIndex  int
	MissionScalar float64
	RunScalar     float64

	TierID   string
	Tier     defs.TierConfig
	Baseline defs.BaselineCurve
	Balance  defs.WaveBalance

	StageOverride    *defs.StageOverride
	AscensionLevel   int
	ActiveAscensions []defs.AscensionOverride
	ModifierIDs      []string
	Meta             defs.MetaModifiers
	Sim              defs.SimTunables

	PlanRef defs.WavePlanRef
	Preset  defs.WavePreset

	RunSeed     int64
	MissionSeed int64
}

// Context is the immutable resolved scaling snapshot for one mission
// attempt. Built once at mission setup, consumed read-only by the budget
// model, the composition engine and the world.
type Context struct {
	MissionID string
	TierID    string
	TierLabel string
	Plan      Plan

	HPMult     float64
	DamageMult float64
	SpeedMult  float64
	Baseline   defs.BaselineCurve

	BudgetBase     float64
	BudgetGrowth   float64
	BudgetExponent float64
	BudgetMult     float64

	EliteChanceBase  float64
	EliteChanceRamp  float64
	EliteHPBonus     float64
	EliteDamageBonus float64

	MinibossBaseChance float64
	MinibossRamp       float64

	RewardBase   float64
	RewardGrowth float64

	WaveCooldown  float64
	SpawnInterval float64

	SendRateMult      float64
	CaptureEfficiency float64
	RegenMult         float64
	LinkDecayMult     float64

	Meta        defs.MetaModifiers
	ModifierIDs []string

	RunSeed     int64
	MissionSeed int64
}

// Each ascension level tightens enemy scaling by a flat step on top of the
// per-ascension override catalog.
const ascensionLevelStep = 0.04

func orOne(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}

// BuildContext resolves all mission, tier, stage, ascension and meta
// inputs into ready-to-use multipliers. Pure and deterministic: identical
// inputs always produce an identical context.
func BuildContext(in ContextInput) Context {
	plan := ResolveWavePlan(in.PlanRef, in.Preset)

	hp := orOne(in.Tier.HPMult)
	dmg := orOne(in.Tier.DamageMult)
	spd := orOne(in.Tier.SpeedMult)
	budget := orOne(in.Tier.BudgetMult) * orOne(in.MissionScalar) *
		orOne(in.RunScalar) * plan.DifficultyScalar

	if so := in.StageOverride; so != nil {
		hp *= orOne(so.HPMult)
		dmg *= orOne(so.DamageMult)
		budget *= orOne(so.BudgetMult)
	}
	for _, asc := range in.ActiveAscensions {
		hp *= orOne(asc.HPMult)
		dmg *= orOne(asc.DamageMult)
		spd *= orOne(asc.SpeedMult)
		budget *= orOne(asc.BudgetMult)
	}
	if in.AscensionLevel > 0 {
		levelFactor := 1.0 + ascensionLevelStep*float64(in.AscensionLevel)
		hp *= levelFactor
		dmg *= levelFactor
		budget *= levelFactor
	}

	cooldown := in.Balance.WaveCooldown
	if cooldown <= 0 {
		cooldown = config.DefaultWaveCooldown
	}
	spawnInterval := in.Balance.SpawnInterval
	if spawnInterval <= 0 {
		spawnInterval = config.DefaultSpawnInterval
	}

	return Context{
		MissionID: in.MissionID,
		TierID:    in.Tier.ID,
		TierLabel: in.Tier.Label,
		Plan:      plan,

		HPMult:     hp,
		DamageMult: dmg,
		SpeedMult:  spd,
		Baseline:   in.Baseline,

		BudgetBase:     in.Balance.BudgetBase,
		BudgetGrowth:   in.Balance.BudgetGrowth,
		BudgetExponent: in.Balance.BudgetExponent,
		BudgetMult:     budget,

		EliteChanceBase:  in.Balance.EliteChanceBase,
		EliteChanceRamp:  in.Balance.EliteChanceRamp,
		EliteHPBonus:     in.Balance.EliteHPBonus,
		EliteDamageBonus: in.Balance.EliteDamageBonus,

		MinibossBaseChance: in.Balance.MinibossBaseChance,
		MinibossRamp:       in.Balance.MinibossRamp,

		RewardBase:   in.Balance.RewardBase,
		RewardGrowth: in.Balance.RewardGrowth,

		WaveCooldown:  cooldown,
		SpawnInterval: spawnInterval,

		SendRateMult:      orOne(in.Sim.SendRate) * orOne(in.Tier.SendRateMult),
		CaptureEfficiency: orOne(in.Sim.CaptureEfficiency) * orOne(in.Tier.CaptureEfficiency),
		RegenMult:         orOne(in.Sim.RegenRate) * orOne(in.Tier.RegenMult),
		LinkDecayMult:     orOne(in.Sim.LinkDecayRate) * orOne(in.Tier.LinkDecayMult),

		Meta:        in.Meta,
		ModifierIDs: in.ModifierIDs,

		RunSeed:     in.RunSeed,
		MissionSeed: in.MissionSeed,
	}
}

// HPScale is the enemy hp multiplier for a wave: tier scaling plus the
// flat baseline growth per wave index.
func (c Context) HPScale(waveIndex int) float64 {
	return c.HPMult * (1.0 + c.Baseline.HPPerWave*float64(waveIndex-1))
}

// DamageScale is the enemy damage multiplier for a wave.
func (c Context) DamageScale(waveIndex int) float64 {
	return c.DamageMult * (1.0 + c.Baseline.DamagePerWave*float64(waveIndex-1))
}

// SpeedScale is the enemy speed multiplier for a wave.
func (c Context) SpeedScale(waveIndex int) float64 {
	return c.SpeedMult * (1.0 + c.Baseline.SpeedPerWave*float64(waveIndex-1))
}
