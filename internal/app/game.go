// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/event"
	"go-territory-wars/internal/system"
	"go-territory-wars/internal/types"
	"go-territory-wars/internal/wavegen"
	"go-territory-wars/pkg/geom"
)

// Game owns the world state of one mission attempt: towers, links,
// packets and the systems that advance them. All mutation happens
// synchronously inside Tick, in a fixed order, so a replay with the same
// seeds and dt sequence is deterministic.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Level      *defs.LevelDefinition
	Lib        *defs.Library
	Ctx        difficulty.Context
	AttemptID  string

	RegenSystem    *system.RegenSystem
	AISystem       *system.AISystem
	SendSystem     *system.SendSystem
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	Director       *system.WaveDirector

	mods        []defs.WaveModifier
	spawnCursor int
	aborted     bool

	clustersDirty bool
	clusterSize   map[types.EntityID]int
	clusterRoot   map[types.EntityID]types.EntityID
}

// NewGame builds the world from a level definition and a resolved
// difficulty context. Configuration errors (no towers, no spawn points
// for a wave plan) fail here, before the tick loop ever starts.
func NewGame(level *defs.LevelDefinition, lib *defs.Library, ctx difficulty.Context) (*Game, error) {
	if level == nil {
		return nil, fmt.Errorf("level definition is required")
	}
	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: wave plan needs at least one spawn point", level.ID)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:           ecs,
		Dispatcher:    dispatcher,
		Level:         level,
		Lib:           lib,
		Ctx:           ctx,
		AttemptID:     uuid.NewString(),
		clustersDirty: true,
	}
	ecs.Mission.AttemptID = g.AttemptID

	towerIDs, err := g.placeTowers()
	if err != nil {
		return nil, err
	}
	g.placeScriptedLinks(towerIDs)

	g.mods = g.resolveModifiers()

	g.RegenSystem = system.NewRegenSystem(ecs, ctx, g)
	g.AISystem = system.NewAISystem(ecs, level.AI, g)
	g.SendSystem = system.NewSendSystem(ecs, level.Rules, ctx, g)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, lib, level.Rules, ctx, dispatcher)
	g.Director = system.NewWaveDirector(ecs, dispatcher, ctx, lib, level.AllowedEnemies, g.mods, g)

	dispatcher.Subscribe(event.LinkCreated, g)
	dispatcher.Subscribe(event.LinkRemoved, g)
	dispatcher.Subscribe(event.TowerCaptured, g)

	g.refreshMission()
	return g, nil
}

// OnEvent is the single consumer of the structural-mutation dirty
// signal: any link or ownership change invalidates the cluster index.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.LinkCreated, event.LinkRemoved, event.TowerCaptured:
		g.markClustersDirty()
	}
}

func (g *Game) placeTowers() (map[string]types.EntityID, error) {
	towerIDs := make(map[string]types.EntityID, len(g.Level.Towers))
	for _, spawn := range g.Level.Towers {
		if _, dup := towerIDs[spawn.ID]; dup {
			return nil, fmt.Errorf("level %s: duplicate tower id %q", g.Level.ID, spawn.ID)
		}

		arch := g.archetypeByDefID(spawn.Archetype)
		capacity := spawn.Capacity * arch.CapacityMult
		troops := spawn.Troops
		if spawn.Owner == types.OwnerPlayer {
			troops += g.Ctx.Meta.StartingTroops
		}

		id := g.ECS.NewEntity()
		g.ECS.Towers[id] = &component.Tower{
			DefID:     spawn.Archetype,
			Pos:       spawn.Pos,
			Owner:     spawn.Owner,
			HP:        spawn.HP,
			MaxHP:     spawn.HP,
			Troops:    troops,
			MaxTroops: capacity,
			Regen:     spawn.Regen,
		}
		towerIDs[spawn.ID] = id
	}
	return towerIDs, nil
}

func (g *Game) placeScriptedLinks(towerIDs map[string]types.EntityID) {
	for _, spawn := range g.Level.Links {
		from, ok1 := towerIDs[spawn.From]
		to, ok2 := towerIDs[spawn.To]
		if !ok1 || !ok2 {
			log.Printf("level %s: scripted link %s->%s references unknown tower, dropped",
				g.Level.ID, spawn.From, spawn.To)
			continue
		}
		owner := g.ECS.Towers[from].Owner
		g.addLink(from, to, owner, spawn.Level, true)
	}
}

// resolveModifiers maps the level's modifier ids plus the run-scoped ids
// carried by the difficulty context to catalog entries, dropping unknown
// ids with a diagnostic. Duplicate ids apply once.
func (g *Game) resolveModifiers() []defs.WaveModifier {
	var mods []defs.WaveModifier
	seen := make(map[string]bool)
	ids := make([]string, 0, len(g.Level.Modifiers)+len(g.Ctx.ModifierIDs))
	ids = append(ids, g.Level.Modifiers...)
	ids = append(ids, g.Ctx.ModifierIDs...)

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		mod, ok := g.Lib.Modifiers[id]
		if !ok {
			log.Printf("level %s: wave modifier %q not in catalog, dropped", g.Level.ID, id)
			continue
		}
		mods = append(mods, mod)
	}
	return mods
}

func (g *Game) archetypeByDefID(defID string) defs.TowerArchetype {
	if defID == "" {
		return defs.DefaultTowerArchetype
	}
	arch, ok := g.Lib.Towers[defID]
	if !ok {
		log.Printf("tower archetype %q not in catalog, using default", defID)
		return defs.DefaultTowerArchetype
	}
	return arch
}

// Start arms the wave director.
func (g *Game) Start() {
	g.Director.Start()
	g.refreshMission()
}

// Abort ends the mission between ticks (player quit). Partial wave state
// is discarded, not persisted.
func (g *Game) Abort() {
	g.aborted = true
	g.ECS.Wave = nil
}

// Tick advances the simulation one step. The order inside a tick is
// fixed: regen, AI decisions, sends, movement, collision combat, then
// arrival/capture resolution. Changing it breaks replay determinism.
func (g *Game) Tick(dt float64) {
	if g.aborted || g.ECS.Mission.Phase.Terminal() {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.ECS.GameTime += dt

	g.Director.Update(dt)
	g.RegenSystem.Update(dt)
	g.AISystem.Update(dt)
	g.SendSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.resolveArrivals()
	g.refreshMission()
}

// resolveArrivals settles every packet that finished its trip this tick:
// same-owner arrivals reinforce, opposing arrivals fight the garrison
// and capture the tower at zero troops.
func (g *Game) resolveArrivals() {
	for _, id := range g.ECS.SortedPacketIDs() {
		packet, ok := g.ECS.Packets[id]
		if !ok || packet.Progress < 1 {
			continue
		}
		delete(g.ECS.Packets, id)

		tower, ok := g.ECS.Towers[packet.Target]
		if !ok {
			log.Printf("packet %d: target tower %d vanished, dropped", id, packet.Target)
			continue
		}

		if tower.Owner == packet.Owner {
			tower.Troops += packet.Troops
			if tower.Troops > tower.MaxTroops {
				tower.Troops = tower.MaxTroops
			}
		} else {
			g.resolveAssault(packet, packet.Target, tower)
		}

		g.Dispatcher.Dispatch(event.Event{Type: event.PacketArrived, Data: id})
		if packet.DefID != "" {
			// Enemy units are spent on arrival either way; the wave
			// tracks them as neutralized.
			g.Dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: packet.DefID})
		}
	}
}

func (g *Game) resolveAssault(packet *component.UnitPacket, towerID types.EntityID, tower *component.Tower) {
	arch := g.archetypeForTower(tower)
	towerArmor := system.CombineArmor(arch.DefenseArmor, g.ArmorBonusFor(towerID))

	assault := packet.Troops * packet.EffDamage
	if packet.Owner == types.OwnerPlayer {
		assault *= g.Ctx.CaptureEfficiency * (1.0 + g.Ctx.Meta.CaptureBonus)
	}
	tower.Troops -= system.ApplyArmor(assault, towerArmor)

	if tower.Troops > 0 {
		return
	}
	g.captureTower(towerID, tower, packet.Owner)
}

// captureTower flips ownership, reseeds the garrison and invalidates the
// old owner's non-scripted outgoing links.
func (g *Game) captureTower(towerID types.EntityID, tower *component.Tower, newOwner types.Owner) {
	oldOwner := tower.Owner
	tower.Owner = newOwner
	tower.Troops = g.Level.Rules.CaptureSeedTroops
	tower.SendTimer = 0

	for _, linkID := range g.ECS.SortedLinkIDs() {
		link := g.ECS.Links[linkID]
		if link.From == towerID && link.Owner == oldOwner && !link.Scripted {
			delete(g.ECS.Links, linkID)
			g.Dispatcher.Dispatch(event.Event{Type: event.LinkRemoved, Data: linkID})
		}
	}

	g.Dispatcher.Dispatch(event.Event{Type: event.TowerCaptured, Data: towerID})
}

// SpawnEnemy injects one enemy unit as a lane packet from the next spawn
// point toward the nearest player tower. Implements the director's spawn
// callback; a missing archetype degrades the wave, never the mission.
// Returns whether the unit entered the world, so skipped spawns are not
// counted as live enemies.
func (g *Game) SpawnEnemy(defID string, elite bool, waveIndex int) bool {
	def, ok := g.Lib.Enemies[defID]
	if !ok {
		log.Printf("wave %d: enemy archetype %q not in catalog, spawn skipped", waveIndex, defID)
		return false
	}

	pos := g.Level.SpawnPoints[g.spawnCursor%len(g.Level.SpawnPoints)]
	g.spawnCursor++

	target := g.nearestPlayerTower(pos)
	if target == 0 {
		return false
	}

	hp, damage, speed := wavegen.ScaledStats(def, g.Ctx, waveIndex, elite, g.mods)

	id := g.ECS.NewEntity()
	packet := &component.UnitPacket{
		DefID:      defID,
		Owner:      types.OwnerEnemy,
		Troops:     hp,
		BaseDamage: damage,
		BaseArmor:  def.Armor,
		EffDamage:  damage,
		EffArmor:   def.Armor,
		Speed:      speed,
		Target:     target,
		Pos:        pos,
	}
	if def.Behavior != nil && def.Behavior.Shield != nil {
		packet.ShieldUp = true
	}
	g.ECS.Packets[id] = packet
	g.Dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: defID})
	return true
}

func (g *Game) nearestPlayerTower(pos geom.Vec2) types.EntityID {
	var best types.EntityID
	bestDist := 0.0
	for _, id := range g.ECS.SortedTowerIDs() {
		tower := g.ECS.Towers[id]
		if tower.Owner != types.OwnerPlayer {
			continue
		}
		d := geom.Dist(pos, tower.Pos)
		if best == 0 || d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}

// AreNeighbors reports whether two towers are geometrically adjacent
// under the level's neighbor radius.
func (g *Game) AreNeighbors(a, b types.EntityID) bool {
	ta, ok1 := g.ECS.Towers[a]
	tb, ok2 := g.ECS.Towers[b]
	if !ok1 || !ok2 {
		return false
	}
	return geom.Dist(ta.Pos, tb.Pos) <= g.Level.Rules.NeighborRadius
}

// TowerArchetype resolves the archetype for a tower entity.
func (g *Game) TowerArchetype(id types.EntityID) defs.TowerArchetype {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return defs.DefaultTowerArchetype
	}
	return g.archetypeForTower(tower)
}

func (g *Game) archetypeForTower(tower *component.Tower) defs.TowerArchetype {
	return g.archetypeByDefID(tower.DefID)
}

// RegenBonusFor combines the cluster regen bonus with aura bonuses from
// nearby same-owner aura towers.
func (g *Game) RegenBonusFor(id types.EntityID) float64 {
	return g.ClusterRegenBonus(id) + g.auraBonusFor(id, func(a *defs.TowerAuraDef) float64 {
		return a.RegenBonus
	})
}

// ArmorBonusFor combines the cluster armor bonus with aura bonuses.
func (g *Game) ArmorBonusFor(id types.EntityID) float64 {
	if _, ok := g.ECS.Towers[id]; !ok {
		return 0
	}
	aura := g.auraBonusFor(id, func(a *defs.TowerAuraDef) float64 {
		return a.ArmorBonus
	})
	return system.CombineArmor(g.ClusterArmorBonus(id), aura)
}

func (g *Game) auraBonusFor(id types.EntityID, pick func(*defs.TowerAuraDef) float64) float64 {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0
	}
	total := 0.0
	for _, otherID := range g.ECS.SortedTowerIDs() {
		if otherID == id {
			continue
		}
		other := g.ECS.Towers[otherID]
		if other.Owner != tower.Owner {
			continue
		}
		arch := g.archetypeForTower(other)
		if arch.Aura == nil {
			continue
		}
		if geom.Dist(tower.Pos, other.Pos) <= arch.Aura.Radius {
			total += pick(arch.Aura)
		}
	}
	return total
}

// PlayerTowerCount is the director's loss probe.
func (g *Game) PlayerTowerCount() int {
	count := 0
	for _, tower := range g.ECS.Towers {
		if tower.Owner == types.OwnerPlayer {
			count++
		}
	}
	return count
}

// refreshMission updates the externally observable mission snapshot:
// ownership table and cluster badges. This is the query batch that
// consumes the cluster dirty signal.
func (g *Game) refreshMission() {
	mission := g.ECS.Mission
	counts := map[types.Owner]int{}
	for _, tower := range g.ECS.Towers {
		counts[tower.Owner]++
	}
	mission.OwnerCounts = counts
	mission.ClusterSizes = g.PlayerClusterSizes()
}

// MissionPreviews resolves the debug/telemetry snapshot for every wave
// of the plan without touching world state.
func (g *Game) MissionPreviews() []wavegen.Preview {
	previews := make([]wavegen.Preview, 0, g.Ctx.Plan.Waves)
	for index := 1; index <= g.Ctx.Plan.Waves; index++ {
		budget := difficulty.BudgetFor(g.Ctx, index, g.Ctx.Plan.Waves)
		res := wavegen.Compose(g.Ctx, index, budget, g.Level.AllowedEnemies, g.Lib, g.mods)
		previews = append(previews, wavegen.BuildPreview(g.Ctx, index, budget, res))
	}
	return previews
}
