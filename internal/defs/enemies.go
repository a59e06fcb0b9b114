// internal/defs/enemies.go
package defs

// Tags with engine-side meaning. Any other tag is only used for
// modifier re-weighting.
const (
	TagBoss     = "boss"
	TagMiniboss = "miniboss"
	TagElite    = "elite"
)

// EnemyDefinition holds all the static data for a specific enemy archetype.
type EnemyDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HP             float64 `json:"hp"`
	Damage         float64 `json:"damage"`
	Speed          float64 `json:"speed"`
	Armor          float64 `json:"armor"`
	AttackRange    float64 `json:"attack_range"`
	AttackCooldown float64 `json:"attack_cooldown"`
	SpawnCost      float64 `json:"spawn_cost"`
	SpawnWeight    float64 `json:"spawn_weight"`

	Tags     []string     `json:"tags,omitempty"`
	Behavior *BehaviorDef `json:"behavior,omitempty"`
}

// HasTag reports whether the archetype carries the given tag.
func (d EnemyDefinition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BehaviorDef is the optional behavior payload of an archetype. Every field
// is optional; consuming code branches on field presence, not on a nominal
// subtype, so any archetype may carry any subset of behaviors.
type BehaviorDef struct {
	Shield      *ShieldDef      `json:"shield,omitempty"`
	SupportAura *SupportAuraDef `json:"support_aura,omitempty"`
	LinkCut     *LinkCutDef     `json:"link_cut,omitempty"`
	Split       *SplitDef       `json:"split,omitempty"`
}

// ShieldDef makes a packet periodically immune to incoming damage.
type ShieldDef struct {
	Duration float64 `json:"duration"`
	Cooldown float64 `json:"cooldown"`
}

// SupportAuraDef buffs nearby friendly packets while the carrier lives.
type SupportAuraDef struct {
	Radius      float64 `json:"radius"`
	ArmorBonus  float64 `json:"armor_bonus"`
	DamageBonus float64 `json:"damage_bonus"`
}

// LinkCutDef lets a packet damage the integrity of player links it passes.
type LinkCutDef struct {
	Radius   float64 `json:"radius"`
	Cooldown float64 `json:"cooldown"`
	Damage   float64 `json:"damage"`
}

// SplitDef spawns child packets when the carrier dies in transit.
type SplitDef struct {
	ChildID    string `json:"child_id"`
	ChildCount int    `json:"child_count"`
}
