// internal/component/tower.go
package component

import (
	"go-territory-wars/internal/types"
	"go-territory-wars/pkg/geom"
)

// Tower is a capturable node with a troop economy. Towers are never
// destroyed mid-mission; ownership flips instead.
type Tower struct {
	DefID     string // archetype id from the tower catalog
	Pos       geom.Vec2
	Owner     types.Owner
	HP        float64
	MaxHP     float64
	Troops    float64
	MaxTroops float64
	Regen     float64 // troops per second before multipliers
	SendTimer float64 // accumulator for the auto-send tick
}
