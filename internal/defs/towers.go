// internal/defs/towers.go
package defs

// TowerArchetype modifies the troop economy of a tower: regen, capacity,
// defense, outgoing link budget and an optional aura. Towers without an
// archetype id use DefaultTowerArchetype.
type TowerArchetype struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	RegenMult    float64 `json:"regen_mult"`
	CapacityMult float64 `json:"capacity_mult"`
	DefenseArmor float64 `json:"defense_armor"`
	// Nil inherits the level rule default; an explicit 0 means the tower
	// cannot originate links at all.
	MaxOutgoingLinks *int          `json:"max_outgoing_links,omitempty"`
	Aura             *TowerAuraDef `json:"aura,omitempty"`
}

// TowerAuraDef buffs towers within radius of the carrier.
type TowerAuraDef struct {
	Radius     float64 `json:"radius"`
	RegenBonus float64 `json:"regen_bonus"`
	ArmorBonus float64 `json:"armor_bonus"`
}

// DefaultTowerArchetype is used when a level places a tower without an
// archetype id, or references one missing from the catalog.
var DefaultTowerArchetype = TowerArchetype{
	ID:           "default",
	Name:         "Default",
	RegenMult:    1.0,
	CapacityMult: 1.0,
}
