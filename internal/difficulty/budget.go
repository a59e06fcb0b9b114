// internal/difficulty/budget.go
package difficulty

import (
	"math"

	"go-territory-wars/internal/config"
	"go-territory-wars/internal/utils"
)

// BudgetFor returns the spawn budget for a wave. The curve is
// base + growth * (index-1)^exponent, scaled by the resolved budget
// multiplier. Growth and exponent are non-negative by config validation,
// so the curve is monotonically non-decreasing in the wave index.
func BudgetFor(ctx Context, waveIndex, totalWaves int) float64 {
	waveIndex = utils.ClampInt(waveIndex, 1, utils.ClampInt(totalWaves, 1, config.MaxWaveCount))
	exp := ctx.BudgetExponent
	if exp <= 0 {
		exp = 1.0
	}
	raw := ctx.BudgetBase + ctx.BudgetGrowth*math.Pow(float64(waveIndex-1), exp)
	return raw * ctx.BudgetMult
}

// IsBossWave reports whether the wave is the boss wave: the final wave of
// a boss-enabled plan. Deterministic in (waveIndex, totalWaves).
func IsBossWave(ctx Context, waveIndex, totalWaves int) bool {
	return ctx.Plan.BossEnabled && waveIndex == totalWaves
}

// MinibossChance returns the probability of a miniboss appearing in the
// wave. Zero before the first-appearance wave or when no miniboss wave is
// configured; ramps from the base chance toward the configured miniboss
// wave, which itself is guaranteed.
func MinibossChance(ctx Context, waveIndex int) float64 {
	mb := ctx.Plan.MinibossWave
	if mb == 0 || waveIndex < ctx.Plan.FirstAppearanceWave {
		return 0
	}
	if waveIndex >= mb {
		return 1.0
	}
	span := float64(mb - ctx.Plan.FirstAppearanceWave)
	if span <= 0 {
		return utils.Clamp(ctx.MinibossBaseChance, 0, 1)
	}
	t := float64(waveIndex-ctx.Plan.FirstAppearanceWave) / span
	return utils.Clamp(ctx.MinibossBaseChance+ctx.MinibossRamp*t, 0, 1)
}

// EliteChance returns the probability that an individual spawn is
// upgraded to an elite for the given wave.
func EliteChance(ctx Context, waveIndex, totalWaves int) float64 {
	if totalWaves <= 1 {
		return utils.Clamp(ctx.EliteChanceBase, 0, 1)
	}
	t := float64(waveIndex-1) / float64(totalWaves-1)
	return utils.Clamp(ctx.EliteChanceBase+ctx.EliteChanceRamp*t, 0, 1)
}

// WaveReward returns the currency reward for clearing a wave.
func WaveReward(ctx Context, waveIndex int) float64 {
	return (ctx.RewardBase + ctx.RewardGrowth*float64(waveIndex-1)) * ctx.BudgetMult
}
