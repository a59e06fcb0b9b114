// internal/defs/balance.go
package defs

// WaveBalance holds the budget curve coefficients and the elite/miniboss
// ramp parameters. The curve shape is authored data, not code: the engine
// only guarantees monotonic growth and deterministic flagging.
type WaveBalance struct {
	BudgetBase     float64 `yaml:"budgetBase"`
	BudgetGrowth   float64 `yaml:"budgetGrowth"`
	BudgetExponent float64 `yaml:"budgetExponent"`

	EliteChanceBase  float64 `yaml:"eliteChanceBase"`
	EliteChanceRamp  float64 `yaml:"eliteChanceRamp"`
	EliteHPBonus     float64 `yaml:"eliteHpBonus"`
	EliteDamageBonus float64 `yaml:"eliteDamageBonus"`

	MinibossBaseChance float64 `yaml:"minibossBaseChance"`
	MinibossRamp       float64 `yaml:"minibossRamp"`

	WaveCooldown  float64 `yaml:"waveCooldown"`
	SpawnInterval float64 `yaml:"spawnInterval"`

	RewardBase   float64 `yaml:"rewardBase"`
	RewardGrowth float64 `yaml:"rewardGrowth"`
}

// BaselineCurve adds flat per-wave stat growth on top of tier multipliers.
type BaselineCurve struct {
	HPPerWave     float64 `yaml:"hpPerWave"`
	DamagePerWave float64 `yaml:"damagePerWave"`
	SpeedPerWave  float64 `yaml:"speedPerWave"`
}

// TierConfig is a named top-level difficulty preset.
type TierConfig struct {
	ID         string  `yaml:"id"`
	Label      string  `yaml:"label"`
	HPMult     float64 `yaml:"hpMult"`
	DamageMult float64 `yaml:"damageMult"`
	SpeedMult  float64 `yaml:"speedMult"`
	BudgetMult float64 `yaml:"budgetMult"`

	SendRateMult      float64 `yaml:"sendRateMult"`
	CaptureEfficiency float64 `yaml:"captureEfficiency"`
	RegenMult         float64 `yaml:"regenMult"`
	LinkDecayMult     float64 `yaml:"linkDecayMult"`
}

// StageOverride tweaks scaling for one stage of the campaign.
type StageOverride struct {
	StageID    string  `yaml:"stageId"`
	BudgetMult float64 `yaml:"budgetMult"`
	HPMult     float64 `yaml:"hpMult"`
	DamageMult float64 `yaml:"damageMult"`
}

// AscensionOverride tweaks scaling for one selectable ascension modifier.
type AscensionOverride struct {
	ID         string  `yaml:"id"`
	BudgetMult float64 `yaml:"budgetMult"`
	HPMult     float64 `yaml:"hpMult"`
	DamageMult float64 `yaml:"damageMult"`
	SpeedMult  float64 `yaml:"speedMult"`
}

// MetaModifiers are meta-progression bonuses the player has unlocked.
type MetaModifiers struct {
	RegenBonus     float64 `yaml:"regenBonus"`
	StartingTroops float64 `yaml:"startingTroops"`
	CaptureBonus   float64 `yaml:"captureBonus"`
}

// SimTunables are the base simulation multipliers before tier scaling.
type SimTunables struct {
	SendRate          float64 `yaml:"sendRate"`
	CaptureEfficiency float64 `yaml:"captureEfficiency"`
	RegenRate         float64 `yaml:"regenRate"`
	LinkDecayRate     float64 `yaml:"linkDecayRate"`
}

// BalanceFile is the root of the YAML balance configuration.
type BalanceFile struct {
	Balance            WaveBalance         `yaml:"balance"`
	Baseline           BaselineCurve       `yaml:"baseline"`
	Tiers              []TierConfig        `yaml:"tiers"`
	StageOverrides     []StageOverride     `yaml:"stageOverrides"`
	AscensionOverrides []AscensionOverride `yaml:"ascensionOverrides"`
	Sim                SimTunables         `yaml:"sim"`
}
