// internal/defs/waves.go
package defs

// WavePreset is an authored mission pacing template. Optional fields are
// pointers so the resolver can tell "absent" from "zero".
type WavePreset struct {
	ID                  string  `json:"id"`
	Waves               int     `json:"waves"`
	DifficultyScalar    float64 `json:"difficulty_scalar"`
	FirstAppearanceWave int     `json:"first_appearance_wave"`
	MinibossWave        *int    `json:"miniboss_wave,omitempty"`
	BossEnabled         *bool   `json:"boss_enabled,omitempty"`
}

// WavePlanRef is the per-level reference to a preset plus overrides.
type WavePlanRef struct {
	PresetID            string   `json:"preset_id"`
	Waves               *int     `json:"waves,omitempty"`
	FirstAppearanceWave *int     `json:"first_appearance_wave,omitempty"`
	MinibossWave        *int     `json:"miniboss_wave,omitempty"`
	BossEnabled         *bool    `json:"boss_enabled,omitempty"`
	DifficultyScalar    *float64 `json:"difficulty_scalar,omitempty"`
}

// WaveModifier adjusts enemy stats multiplicatively and optionally
// re-weights archetype selection by tag.
type WaveModifier struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	HPMult     float64            `json:"hp_mult"`
	DamageMult float64            `json:"damage_mult"`
	SpeedMult  float64            `json:"speed_mult"`
	TagWeights map[string]float64 `json:"tag_weights,omitempty"`
}
