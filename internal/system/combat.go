// internal/system/combat.go
package system

import (
	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/event"
	"go-territory-wars/internal/types"
	"go-territory-wars/pkg/geom"
)

// ApplyArmor reduces incoming damage by the effective armor fraction.
func ApplyArmor(incoming, effArmor float64) float64 {
	return incoming * (1.0 - effArmor)
}

// CombineArmor stacks armor sources multiplicatively: the combined value
// is 1 minus the product of the pass-through fractions.
func CombineArmor(sources ...float64) float64 {
	pass := 1.0
	for _, a := range sources {
		if a <= 0 {
			continue
		}
		if a >= 1 {
			return 1.0
		}
		pass *= 1.0 - a
	}
	return 1.0 - pass
}

// CombatSystem resolves packet-versus-packet fighting each tick: behavior
// timers, effective stat computation, link-cut abilities, collision
// damage, then deaths. Runs after movement and before arrival resolution.
type CombatSystem struct {
	ecs        *entity.ECS
	lib        *defs.Library
	rules      defs.LevelRules
	ctx        difficulty.Context
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, rules defs.LevelRules,
	ctx difficulty.Context, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib, rules: rules, ctx: ctx, dispatcher: dispatcher}
}

func (s *CombatSystem) Update(dt float64) {
	ids := s.ecs.SortedPacketIDs()

	s.updateShields(ids, dt)
	s.updateEffectiveStats(ids)
	s.applyLinkCuts(ids, dt)
	s.decayLinks(dt)
	s.resolveCollisions(ids, dt)
	s.resolveDeaths(ids)
}

func (s *CombatSystem) behavior(p *component.UnitPacket) *defs.BehaviorDef {
	if p.DefID == "" {
		return nil
	}
	def, ok := s.lib.Enemies[p.DefID]
	if !ok {
		return nil
	}
	return def.Behavior
}

func (s *CombatSystem) updateShields(ids []types.EntityID, dt float64) {
	for _, id := range ids {
		packet := s.ecs.Packets[id]
		b := s.behavior(packet)
		if b == nil || b.Shield == nil {
			continue
		}
		packet.ShieldTimer += dt
		if packet.ShieldUp {
			if packet.ShieldTimer >= b.Shield.Duration {
				packet.ShieldUp = false
				packet.ShieldTimer = 0
			}
		} else if packet.ShieldTimer >= b.Shield.Cooldown {
			packet.ShieldUp = true
			packet.ShieldTimer = 0
		}
	}
}

// updateEffectiveStats recomputes per-tick stats from base values plus
// support auras carried by nearby friendly packets.
func (s *CombatSystem) updateEffectiveStats(ids []types.EntityID) {
	for _, id := range ids {
		packet := s.ecs.Packets[id]
		armor := []float64{packet.BaseArmor}
		damageBonus := 0.0

		for _, otherID := range ids {
			if otherID == id {
				continue
			}
			other := s.ecs.Packets[otherID]
			if other.Owner != packet.Owner || other.Troops <= 0 {
				continue
			}
			b := s.behavior(other)
			if b == nil || b.SupportAura == nil {
				continue
			}
			if geom.Dist(packet.Pos, other.Pos) <= b.SupportAura.Radius {
				armor = append(armor, b.SupportAura.ArmorBonus)
				damageBonus += b.SupportAura.DamageBonus
			}
		}

		packet.EffArmor = CombineArmor(armor...)
		packet.EffDamage = packet.BaseDamage * (1.0 + damageBonus)
	}
}

// applyLinkCuts lets enemy cutter packets chip the integrity of player
// links they pass. A link at zero integrity breaks.
func (s *CombatSystem) applyLinkCuts(ids []types.EntityID, dt float64) {
	for _, id := range ids {
		packet := s.ecs.Packets[id]
		b := s.behavior(packet)
		if b == nil || b.LinkCut == nil {
			continue
		}
		packet.LinkCutTimer -= dt
		if packet.LinkCutTimer > 0 {
			continue
		}

		for _, linkID := range s.ecs.SortedLinkIDs() {
			link := s.ecs.Links[linkID]
			if link.Owner != types.OwnerPlayer {
				continue
			}
			from, ok1 := s.ecs.Towers[link.From]
			to, ok2 := s.ecs.Towers[link.To]
			if !ok1 || !ok2 {
				continue
			}
			if geom.DistToSegment(packet.Pos, from.Pos, to.Pos) > b.LinkCut.Radius {
				continue
			}
			link.Integrity -= b.LinkCut.Damage * s.ctx.LinkDecayMult
			packet.LinkCutTimer = b.LinkCut.Cooldown
			if link.Integrity <= 0 {
				delete(s.ecs.Links, linkID)
				s.dispatcher.Dispatch(event.Event{Type: event.LinkRemoved, Data: linkID})
			}
			break
		}
	}
}

// decayLinks applies the ambient integrity decay some levels enable.
func (s *CombatSystem) decayLinks(dt float64) {
	if s.rules.LinkDecayRate <= 0 {
		return
	}
	for _, linkID := range s.ecs.SortedLinkIDs() {
		link := s.ecs.Links[linkID]
		if link.Scripted {
			continue
		}
		link.Integrity -= s.rules.LinkDecayRate * s.ctx.LinkDecayMult * dt
		if link.Integrity <= 0 {
			delete(s.ecs.Links, linkID)
			s.dispatcher.Dispatch(event.Event{Type: event.LinkRemoved, Data: linkID})
		}
	}
}

// resolveCollisions makes opposing packets within the collision distance
// fight. Damage is computed against a pre-step snapshot of troop counts
// so resolution order inside the tick cannot change the outcome.
func (s *CombatSystem) resolveCollisions(ids []types.EntityID, dt float64) {
	snapshot := make(map[types.EntityID]float64, len(ids))
	for _, id := range ids {
		snapshot[id] = s.ecs.Packets[id].Troops
	}

	rate := s.rules.UnitDPS / s.rules.UnitHP

	for i := 0; i < len(ids); i++ {
		a := s.ecs.Packets[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := s.ecs.Packets[ids[j]]
			if a.Owner == b.Owner {
				continue
			}
			if geom.Dist(a.Pos, b.Pos) > s.rules.CollisionDistance {
				continue
			}

			aIncoming := snapshot[ids[j]] * b.EffDamage * rate * dt
			bIncoming := snapshot[ids[i]] * a.EffDamage * rate * dt
			if !a.ShieldUp {
				a.Troops -= ApplyArmor(aIncoming, a.EffArmor)
			}
			if !b.ShieldUp {
				b.Troops -= ApplyArmor(bIncoming, b.EffArmor)
			}
		}
	}
}

// resolveDeaths removes packets that ran out of troops, triggering
// split-on-death payloads and destruction events.
func (s *CombatSystem) resolveDeaths(ids []types.EntityID) {
	for _, id := range ids {
		packet, ok := s.ecs.Packets[id]
		if !ok || packet.Troops > 0 {
			continue
		}

		b := s.behavior(packet)
		delete(s.ecs.Packets, id)

		if b != nil && b.Split != nil {
			s.spawnSplitChildren(packet, b.Split)
		}
		if packet.DefID != "" {
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: packet.DefID})
		}
	}
}

func (s *CombatSystem) spawnSplitChildren(parent *component.UnitPacket, split *defs.SplitDef) {
	def, ok := s.lib.Enemies[split.ChildID]
	if !ok {
		return
	}

	waveIndex := 1
	if s.ecs.Wave != nil {
		waveIndex = s.ecs.Wave.Index
	}
	hp := def.HP * s.ctx.HPScale(waveIndex)
	damage := def.Damage * s.ctx.DamageScale(waveIndex)
	speed := def.Speed * s.ctx.SpeedScale(waveIndex)

	for i := 0; i < split.ChildCount; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Packets[id] = &component.UnitPacket{
			DefID:      def.ID,
			Owner:      parent.Owner,
			Troops:     hp,
			BaseDamage: damage,
			BaseArmor:  def.Armor,
			EffDamage:  damage,
			EffArmor:   def.Armor,
			Speed:      speed,
			Target:     parent.Target,
			Pos:        parent.Pos,
		}
		if s.ecs.Wave != nil {
			s.ecs.Wave.Active++
		}
		s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: def.ID})
	}
}
