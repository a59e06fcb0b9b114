// internal/system/director.go
package system

import (
	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/event"
	"go-territory-wars/internal/wavegen"
)

// DirectorGameContext is what the wave director needs from the world.
// SpawnEnemy reports whether a unit actually entered the world; the
// director only counts successful spawns as live.
type DirectorGameContext interface {
	PlayerTowerCount() int
	SpawnEnemy(defID string, elite bool, waveIndex int) bool
}

// WaveDirector runs the wave lifecycle of a mission:
//
//	Idle → WaveCountdown → WaveActive → WaveCleared → (WaveCountdown | MissionComplete)
//
// with MissionFailed reachable from any active phase once the player has
// no towers left. The phase lives in the shared MissionState so HUD and
// win/loss logic observe transitions without owning them.
type WaveDirector struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	ctx        difficulty.Context
	lib        *defs.Library
	allowlist  []string
	mods       []defs.WaveModifier
	game       DirectorGameContext
}

func NewWaveDirector(ecs *entity.ECS, dispatcher *event.Dispatcher, ctx difficulty.Context,
	lib *defs.Library, allowlist []string, mods []defs.WaveModifier, game DirectorGameContext) *WaveDirector {

	d := &WaveDirector{
		ecs:        ecs,
		dispatcher: dispatcher,
		ctx:        ctx,
		lib:        lib,
		allowlist:  allowlist,
		mods:       mods,
		game:       game,
	}
	dispatcher.Subscribe(event.EnemyDestroyed, d)
	return d
}

// OnEvent keeps the live-enemy count of the current wave.
func (d *WaveDirector) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed && d.ecs.Wave != nil && d.ecs.Wave.Active > 0 {
		d.ecs.Wave.Active--
	}
}

// Start arms the director once the resolved plan and context exist.
func (d *WaveDirector) Start() {
	mission := d.ecs.Mission
	if mission.Phase != component.PhaseIdle {
		return
	}
	mission.Phase = component.PhaseWaveCountdown
	mission.WaveIndex = 1
	mission.TotalWaves = d.ctx.Plan.Waves
	mission.Cooldown = d.ctx.WaveCooldown
}

func (d *WaveDirector) Update(dt float64) {
	mission := d.ecs.Mission
	if mission.Phase.Terminal() {
		return
	}

	if mission.Phase != component.PhaseIdle && d.game.PlayerTowerCount() == 0 {
		mission.Phase = component.PhaseMissionFailed
		d.dispatcher.Dispatch(event.Event{Type: event.MissionLost})
		return
	}

	switch mission.Phase {
	case component.PhaseWaveCountdown:
		mission.Cooldown -= dt
		if mission.Cooldown <= 0 {
			mission.Cooldown = 0
			d.startWave(mission.WaveIndex)
		}

	case component.PhaseWaveActive:
		d.spawnPending(dt)
		wave := d.ecs.Wave
		if wave != nil && len(wave.Pending) == 0 && wave.Active <= 0 {
			mission.Phase = component.PhaseWaveCleared
			d.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Index})
		}

	case component.PhaseWaveCleared:
		if mission.WaveIndex >= mission.TotalWaves {
			mission.Phase = component.PhaseMissionComplete
			d.dispatcher.Dispatch(event.Event{Type: event.MissionWon})
			return
		}
		mission.WaveIndex++
		mission.Phase = component.PhaseWaveCountdown
		mission.Cooldown = d.ctx.WaveCooldown
	}
}

func (d *WaveDirector) startWave(index int) {
	budget := difficulty.BudgetFor(d.ctx, index, d.ctx.Plan.Waves)
	res := wavegen.Compose(d.ctx, index, budget, d.allowlist, d.lib, d.mods)

	pending := make([]component.PendingSpawn, 0, len(res.Spawns))
	for _, sp := range res.Spawns {
		pending = append(pending, component.PendingSpawn{DefID: sp.DefID, Elite: sp.Elite})
	}

	d.ecs.Wave = &component.Wave{
		Index:         index,
		Total:         d.ctx.Plan.Waves,
		Budget:        budget,
		IsBossWave:    difficulty.IsBossWave(d.ctx, index, d.ctx.Plan.Waves),
		Pending:       pending,
		SpawnInterval: d.ctx.SpawnInterval,
	}
	d.ecs.Mission.Phase = component.PhaseWaveActive
	d.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: index})
}

// spawnPending spreads the wave's spawns over the spawn interval instead
// of injecting them all at once.
func (d *WaveDirector) spawnPending(dt float64) {
	wave := d.ecs.Wave
	if wave == nil || len(wave.Pending) == 0 {
		return
	}

	wave.SpawnTimer += dt
	for len(wave.Pending) > 0 && wave.SpawnTimer >= wave.SpawnInterval {
		wave.SpawnTimer -= wave.SpawnInterval
		next := wave.Pending[0]
		wave.Pending = wave.Pending[1:]
		if d.game.SpawnEnemy(next.DefID, next.Elite, wave.Index) {
			wave.Active++
		}
	}
}
