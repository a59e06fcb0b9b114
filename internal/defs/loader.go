// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Library holds every loaded definition catalog. It is passed explicitly
// into the systems that need it instead of living in package-level maps,
// so tests can build and reset isolated libraries.
type Library struct {
	Enemies   map[string]EnemyDefinition
	Towers    map[string]TowerArchetype
	Presets   map[string]WavePreset
	Modifiers map[string]WaveModifier
	Balance   BalanceFile
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	l := &Library{}
	l.Reset()
	return l
}

// Reset drops all loaded catalogs.
func (l *Library) Reset() {
	l.Enemies = make(map[string]EnemyDefinition)
	l.Towers = make(map[string]TowerArchetype)
	l.Presets = make(map[string]WavePreset)
	l.Modifiers = make(map[string]WaveModifier)
	l.Balance = BalanceFile{}
}

// LoadEnemies reads the enemy archetype catalog from a JSON file.
func (l *Library) LoadEnemies(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition with empty id in %s", path)
		}
		if def.SpawnCost <= 0 {
			return fmt.Errorf("enemy %s: spawn_cost must be positive", def.ID)
		}
		l.Enemies[def.ID] = def
	}
	return nil
}

// LoadTowerArchetypes reads the tower archetype catalog from a JSON file.
func (l *Library) LoadTowerArchetypes(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower archetype file: %w", err)
	}

	var towerDefs []TowerArchetype
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower archetypes: %w", err)
	}

	for _, def := range towerDefs {
		if def.ID == "" {
			return fmt.Errorf("tower archetype with empty id in %s", path)
		}
		l.Towers[def.ID] = def
	}
	return nil
}

// LoadWavePresets reads the wave preset catalog from a JSON file.
func (l *Library) LoadWavePresets(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave presets file: %w", err)
	}

	var presets []WavePreset
	if err := json.Unmarshal(file, &presets); err != nil {
		return fmt.Errorf("failed to unmarshal wave presets: %w", err)
	}

	for _, p := range presets {
		if p.ID == "" {
			return fmt.Errorf("wave preset with empty id in %s", path)
		}
		l.Presets[p.ID] = p
	}
	return nil
}

// LoadModifiers reads the wave modifier catalog from a JSON file.
func (l *Library) LoadModifiers(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave modifiers file: %w", err)
	}

	var mods []WaveModifier
	if err := json.Unmarshal(file, &mods); err != nil {
		return fmt.Errorf("failed to unmarshal wave modifiers: %w", err)
	}

	for _, m := range mods {
		if m.ID == "" {
			return fmt.Errorf("wave modifier with empty id in %s", path)
		}
		l.Modifiers[m.ID] = m
	}
	return nil
}

// LoadBalance reads the YAML balance configuration (budget curve, tiers,
// stage and ascension overrides, base sim tunables).
func (l *Library) LoadBalance(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read balance config file %s: %w", path, err)
	}

	var bf BalanceFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return fmt.Errorf("failed to parse balance config YAML from %s: %w", path, err)
	}

	if err := validateBalance(&bf); err != nil {
		return fmt.Errorf("invalid balance config in %s: %w", path, err)
	}

	l.Balance = bf
	return nil
}

func validateBalance(bf *BalanceFile) error {
	if len(bf.Tiers) == 0 {
		return fmt.Errorf("at least one difficulty tier is required")
	}
	for _, t := range bf.Tiers {
		if t.ID == "" {
			return fmt.Errorf("tier with empty id")
		}
		if t.HPMult <= 0 || t.DamageMult <= 0 || t.BudgetMult <= 0 {
			return fmt.Errorf("tier %s: multipliers must be positive", t.ID)
		}
	}
	if bf.Balance.BudgetBase < 0 || bf.Balance.BudgetGrowth < 0 {
		return fmt.Errorf("budget curve coefficients must not be negative")
	}
	return nil
}

// TierByID resolves a tier config. An unknown tier id is a fatal
// configuration error at mission setup time.
func (l *Library) TierByID(id string) (TierConfig, error) {
	for _, t := range l.Balance.Tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return TierConfig{}, fmt.Errorf("unknown difficulty tier %q", id)
}

// PresetByID resolves a wave preset. A missing preset is a fatal
// configuration error at mission setup time.
func (l *Library) PresetByID(id string) (WavePreset, error) {
	p, ok := l.Presets[id]
	if !ok {
		return WavePreset{}, fmt.Errorf("unknown wave preset %q", id)
	}
	return p, nil
}

// StageOverrideByID returns the override for a stage, if any.
func (l *Library) StageOverrideByID(stageID string) (StageOverride, bool) {
	for _, s := range l.Balance.StageOverrides {
		if s.StageID == stageID {
			return s, true
		}
	}
	return StageOverride{}, false
}

// AscensionOverrideByID returns the override for an ascension id, if any.
func (l *Library) AscensionOverrideByID(id string) (AscensionOverride, bool) {
	for _, a := range l.Balance.AscensionOverrides {
		if a.ID == id {
			return a, true
		}
	}
	return AscensionOverride{}, false
}

// LoadLevel reads one level definition from a JSON file and applies rule
// defaults.
func LoadLevel(path string) (*LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	var level LevelDefinition
	if err := json.Unmarshal(file, &level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level %s: %w", path, err)
	}

	if level.ID == "" {
		return nil, fmt.Errorf("level %s has no id", path)
	}
	if len(level.Towers) == 0 {
		return nil, fmt.Errorf("level %s has no towers", level.ID)
	}
	if level.MissionScalar == 0 {
		level.MissionScalar = 1.0
	}
	level.Rules.ApplyDefaults()
	level.AI.ApplyDefaults()
	return &level, nil
}
