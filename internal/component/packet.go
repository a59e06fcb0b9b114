// internal/component/packet.go
package component

import (
	"go-territory-wars/internal/types"
	"go-territory-wars/pkg/geom"
)

// UnitPacket is a grouped troop squad in transit: player troops along a
// link, or enemy units on a free lane toward a target tower. Effective
// stats are recomputed each combat step from base stats plus aura buffs.
type UnitPacket struct {
	DefID  string // enemy archetype id, empty for player troop packets
	Owner  types.Owner
	Troops float64

	BaseDamage float64
	BaseArmor  float64
	EffDamage  float64
	EffArmor   float64
	Speed      float64

	LinkID   types.EntityID // 0 when travelling a lane
	Target   types.EntityID // destination tower
	Pos      geom.Vec2
	Progress float64 // position along the link, [0,1]

	// Behavior runtime state; meaningful only when the archetype carries
	// the matching behavior payload.
	ShieldUp     bool
	ShieldTimer  float64
	LinkCutTimer float64
}
