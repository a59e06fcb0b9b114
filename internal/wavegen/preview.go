// internal/wavegen/preview.go
package wavegen

import "go-territory-wars/internal/difficulty"

// Preview is the per-wave debug/telemetry snapshot consumed by the
// preview UI. It carries everything needed to display a wave without
// re-running the composition.
type Preview struct {
	WaveIndex      int            `json:"wave_index"`
	Budget         float64        `json:"budget"`
	Cooldown       float64        `json:"cooldown"`
	EliteChance    float64        `json:"elite_chance"`
	MinibossChance float64        `json:"miniboss_chance"`
	IsBossWave     bool           `json:"is_boss_wave"`
	SpawnCount     int            `json:"spawn_count"`
	SpawnInterval  float64        `json:"spawn_interval"`
	HPScale        float64        `json:"hp_scale"`
	DamageScale    float64        `json:"damage_scale"`
	SpeedScale     float64        `json:"speed_scale"`
	Composition    map[string]int `json:"composition"`
}

// BuildPreview assembles the snapshot for one resolved wave.
func BuildPreview(ctx difficulty.Context, waveIndex int, budget float64, res Result) Preview {
	return Preview{
		WaveIndex:      waveIndex,
		Budget:         budget,
		Cooldown:       ctx.WaveCooldown,
		EliteChance:    difficulty.EliteChance(ctx, waveIndex, ctx.Plan.Waves),
		MinibossChance: difficulty.MinibossChance(ctx, waveIndex),
		IsBossWave:     difficulty.IsBossWave(ctx, waveIndex, ctx.Plan.Waves),
		SpawnCount:     len(res.Spawns),
		SpawnInterval:  ctx.SpawnInterval,
		HPScale:        ctx.HPScale(waveIndex),
		DamageScale:    ctx.DamageScale(waveIndex),
		SpeedScale:     ctx.SpeedScale(waveIndex),
		Composition:    res.Counts,
	}
}
