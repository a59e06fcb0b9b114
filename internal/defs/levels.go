// internal/defs/levels.go
package defs

import (
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/types"
	"go-territory-wars/pkg/geom"
)

// TowerSpawn places one tower at mission start.
type TowerSpawn struct {
	ID        string      `json:"id"`
	Pos       geom.Vec2   `json:"pos"`
	Owner     types.Owner `json:"owner"`
	HP        float64     `json:"hp"`
	Troops    float64     `json:"troops"`
	Regen     float64     `json:"regen"`
	Capacity  float64     `json:"capacity"`
	Archetype string      `json:"archetype,omitempty"`
}

// LinkSpawn is a pre-authored link. Scripted links are exempt from the
// adjacency validation applied to player-drawn links.
type LinkSpawn struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Level int    `json:"level"`
}

// LevelRules are the per-level simulation tunables.
type LevelRules struct {
	MaxOutgoingLinks  int     `json:"max_outgoing_links"`
	SendRate          float64 `json:"send_rate"`
	SendTroopFloor    float64 `json:"send_troop_floor"`
	CollisionDistance float64 `json:"collision_distance"`
	CaptureSeedTroops float64 `json:"capture_seed_troops"`
	NeighborRadius    float64 `json:"neighbor_radius"`
	UnitSpeed         float64 `json:"unit_speed"`
	UnitDPS           float64 `json:"unit_dps"`
	UnitHP            float64 `json:"unit_hp"`
	LinkIntegrity     float64 `json:"link_integrity"`
	LinkDecayRate     float64 `json:"link_decay_rate"`
}

// ApplyDefaults fills zero-valued tunables with engine defaults.
func (r *LevelRules) ApplyDefaults() {
	if r.MaxOutgoingLinks == 0 {
		r.MaxOutgoingLinks = config.DefaultMaxOutgoingLinks
	}
	if r.SendRate == 0 {
		r.SendRate = config.DefaultSendRate
	}
	if r.SendTroopFloor == 0 {
		r.SendTroopFloor = config.DefaultSendTroopFloor
	}
	if r.CollisionDistance == 0 {
		r.CollisionDistance = config.DefaultCollisionDistance
	}
	if r.CaptureSeedTroops == 0 {
		r.CaptureSeedTroops = config.DefaultCaptureSeedTroops
	}
	if r.NeighborRadius == 0 {
		r.NeighborRadius = config.DefaultNeighborRadius
	}
	if r.UnitSpeed == 0 {
		r.UnitSpeed = config.DefaultUnitSpeed
	}
	if r.UnitDPS == 0 {
		r.UnitDPS = config.DefaultUnitDPS
	}
	if r.UnitHP == 0 {
		r.UnitHP = config.DefaultUnitHP
	}
	if r.LinkIntegrity == 0 {
		r.LinkIntegrity = config.DefaultLinkIntegrity
	}
}

// AIRules tune the enemy sender.
type AIRules struct {
	ThinkInterval     float64 `json:"think_interval"`
	MinTroopsToAttack float64 `json:"min_troops_to_attack"`
}

// ApplyDefaults fills zero-valued AI tunables with engine defaults.
func (r *AIRules) ApplyDefaults() {
	if r.ThinkInterval == 0 {
		r.ThinkInterval = config.DefaultAIThinkInterval
	}
	if r.MinTroopsToAttack == 0 {
		r.MinTroopsToAttack = config.DefaultAIMinTroops
	}
}

// LevelDefinition is one playable mission map.
type LevelDefinition struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	StageID       string       `json:"stage_id"`
	MissionIndex  int          `json:"mission_index"`
	MissionScalar float64      `json:"mission_scalar"`
	Towers        []TowerSpawn `json:"towers"`
	Links         []LinkSpawn  `json:"links,omitempty"`
	SpawnPoints   []geom.Vec2  `json:"spawn_points"`
	Rules         LevelRules   `json:"rules"`
	AI            AIRules      `json:"ai"`

	AllowedEnemies []string    `json:"allowed_enemies"`
	WavePlan       WavePlanRef `json:"wave_plan"`
	Modifiers      []string    `json:"modifiers,omitempty"`
}
