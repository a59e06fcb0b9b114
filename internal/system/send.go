// internal/system/send.go
package system

import (
	"go-territory-wars/internal/component"
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/types"
)

// Towers batch their outgoing troops once per send period instead of
// leaking fractional packets every tick.
const sendPeriod = 1.0

// SendGameContext exposes the source-side combat bonuses applied to a
// packet when it leaves its tower.
type SendGameContext interface {
	ArmorBonusFor(id types.EntityID) float64
}

// SendSystem moves troops out of towers along their outgoing links. Both
// player and enemy towers send the same way; the AI only differs in how
// links get created.
type SendSystem struct {
	ecs   *entity.ECS
	rules defs.LevelRules
	ctx   difficulty.Context
	game  SendGameContext
}

func NewSendSystem(ecs *entity.ECS, rules defs.LevelRules, ctx difficulty.Context, game SendGameContext) *SendSystem {
	return &SendSystem{ecs: ecs, rules: rules, ctx: ctx, game: game}
}

func (s *SendSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.Owner == types.OwnerNeutral {
			continue
		}

		tower.SendTimer += dt
		if tower.SendTimer < sendPeriod {
			continue
		}
		tower.SendTimer -= sendPeriod

		outgoing := s.outgoingLinks(id, tower.Owner)
		if len(outgoing) == 0 {
			continue
		}

		available := tower.Troops - s.rules.SendTroopFloor
		if available <= 0 {
			continue
		}

		perLink := s.rules.SendRate * s.ctx.SendRateMult * sendPeriod
		if limit := available / float64(len(outgoing)); perLink > limit {
			perLink = limit
		}
		if perLink < 1.0 {
			continue
		}

		for _, linkID := range outgoing {
			tower.Troops -= perLink
			s.launchPacket(id, linkID, tower, perLink)
		}
	}
}

// outgoingLinks returns the tower's outgoing link ids in id order,
// restricted to links still owned by the tower's current owner.
func (s *SendSystem) outgoingLinks(towerID types.EntityID, owner types.Owner) []types.EntityID {
	var out []types.EntityID
	for _, linkID := range s.ecs.SortedLinkIDs() {
		link := s.ecs.Links[linkID]
		if link.From == towerID && link.Owner == owner {
			out = append(out, linkID)
		}
	}
	return out
}

func (s *SendSystem) launchPacket(fromID, linkID types.EntityID, tower *component.Tower, troops float64) {
	link := s.ecs.Links[linkID]
	speed := s.rules.UnitSpeed * (1.0 + config.LinkLevelSpeedBonus*float64(link.Level))
	armor := config.LinkLevelArmorBonus * float64(link.Level)
	armor = 1.0 - (1.0-armor)*(1.0-s.game.ArmorBonusFor(fromID))
	damage := 1.0 + config.LinkLevelDamageBonus*float64(link.Level)

	id := s.ecs.NewEntity()
	s.ecs.Packets[id] = &component.UnitPacket{
		Owner:      tower.Owner,
		Troops:     troops,
		BaseDamage: damage,
		BaseArmor:  armor,
		EffDamage:  damage,
		EffArmor:   armor,
		Speed:      speed,
		LinkID:     linkID,
		Target:     link.To,
		Pos:        tower.Pos,
	}
}
