// internal/difficulty/plan.go
package difficulty

import (
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/utils"
)

// Plan is a fully resolved mission wave plan. Every numeric field has been
// defaulted from the preset and clamped to engine bounds; MinibossWave is 0
// when neither the override nor the preset defines one.
type Plan struct {
	PresetID            string
	Waves               int
	FirstAppearanceWave int
	MinibossWave        int
	BossEnabled         bool
	DifficultyScalar    float64
}

// ResolveWavePlan merges a per-level plan reference with its preset.
// Override-if-present wins, then clamping keeps malformed content from
// producing degenerate mission lengths or scalars. MinibossWave is passed
// through unclamped.
func ResolveWavePlan(ref defs.WavePlanRef, preset defs.WavePreset) Plan {
	plan := Plan{
		PresetID:            preset.ID,
		Waves:               preset.Waves,
		FirstAppearanceWave: preset.FirstAppearanceWave,
		DifficultyScalar:    preset.DifficultyScalar,
	}

	if ref.Waves != nil {
		plan.Waves = *ref.Waves
	}
	if ref.FirstAppearanceWave != nil {
		plan.FirstAppearanceWave = *ref.FirstAppearanceWave
	}
	if ref.DifficultyScalar != nil {
		plan.DifficultyScalar = *ref.DifficultyScalar
	}

	if ref.MinibossWave != nil {
		plan.MinibossWave = *ref.MinibossWave
	} else if preset.MinibossWave != nil {
		plan.MinibossWave = *preset.MinibossWave
	}

	if ref.BossEnabled != nil {
		plan.BossEnabled = *ref.BossEnabled
	} else if preset.BossEnabled != nil {
		plan.BossEnabled = *preset.BossEnabled
	}

	plan.Waves = utils.ClampInt(plan.Waves, config.MinWaveCount, config.MaxWaveCount)
	plan.FirstAppearanceWave = utils.ClampInt(plan.FirstAppearanceWave,
		config.MinFirstAppearanceWv, config.MaxWaveCount)
	if plan.DifficultyScalar == 0 {
		plan.DifficultyScalar = 1.0
	}
	plan.DifficultyScalar = utils.Clamp(plan.DifficultyScalar,
		config.MinDifficultyScalar, config.MaxDifficultyScalar)

	return plan
}
