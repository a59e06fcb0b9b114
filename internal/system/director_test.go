package system

import (
	"testing"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/event"
)

// fakeWorld satisfies DirectorGameContext without a full game.
type fakeWorld struct {
	towers    int
	spawned   []string
	failSpawn bool
}

func (f *fakeWorld) PlayerTowerCount() int { return f.towers }
func (f *fakeWorld) SpawnEnemy(defID string, elite bool, waveIndex int) bool {
	if f.failSpawn {
		return false
	}
	f.spawned = append(f.spawned, defID)
	return true
}

func directorFixture(waves int) (*entity.ECS, *event.Dispatcher, *WaveDirector, *fakeWorld) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	lib := defs.NewLibrary()
	lib.Enemies["grunt"] = defs.EnemyDefinition{
		ID: "grunt", HP: 20, Damage: 1, Speed: 55, SpawnCost: 10, SpawnWeight: 1,
	}

	ctx := difficulty.BuildContext(difficulty.ContextInput{
		MissionID:     "m1",
		MissionScalar: 1, RunScalar: 1,
		Tier:    defs.TierConfig{ID: "normal", HPMult: 1, DamageMult: 1, SpeedMult: 1, BudgetMult: 1},
		Balance: defs.WaveBalance{BudgetBase: 20, BudgetGrowth: 10, BudgetExponent: 1, WaveCooldown: 2, SpawnInterval: 0.5},
		Preset:  defs.WavePreset{ID: "test", Waves: waves, DifficultyScalar: 1, FirstAppearanceWave: 1},
		RunSeed: 1, MissionSeed: 7,
	})

	world := &fakeWorld{towers: 1}
	d := NewWaveDirector(ecs, dispatcher, ctx, lib, []string{"grunt"}, nil, world)
	return ecs, dispatcher, d, world
}

func clearWave(ecs *entity.ECS, dispatcher *event.Dispatcher, d *WaveDirector) {
	// Spawn everything, then report each enemy destroyed.
	for len(ecs.Wave.Pending) > 0 {
		d.Update(1.0)
	}
	for ecs.Wave.Active > 0 {
		dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: "grunt"})
	}
	d.Update(0.01) // WaveActive -> WaveCleared
	d.Update(0.01) // WaveCleared -> next countdown or mission complete
}

func TestDirectorLifecycle(t *testing.T) {
	ecs, dispatcher, d, world := directorFixture(2)

	if ecs.Mission.Phase != component.PhaseIdle {
		t.Fatalf("initial phase %s", ecs.Mission.Phase)
	}
	d.Start()
	if ecs.Mission.Phase != component.PhaseWaveCountdown {
		t.Fatalf("phase after start: %s", ecs.Mission.Phase)
	}
	if ecs.Mission.WaveIndex != 1 || ecs.Mission.TotalWaves != 2 {
		t.Fatalf("wave counters: %d/%d", ecs.Mission.WaveIndex, ecs.Mission.TotalWaves)
	}

	// Countdown must elapse before the wave starts.
	d.Update(1.0)
	if ecs.Mission.Phase != component.PhaseWaveCountdown {
		t.Fatalf("wave started before cooldown elapsed")
	}
	d.Update(1.5)
	if ecs.Mission.Phase != component.PhaseWaveActive {
		t.Fatalf("phase after cooldown: %s", ecs.Mission.Phase)
	}
	if ecs.Wave == nil || ecs.Wave.Index != 1 {
		t.Fatalf("wave state not initialized")
	}
	if len(ecs.Wave.Pending) == 0 {
		t.Fatalf("wave 1 composed empty")
	}

	clearWave(ecs, dispatcher, d)
	if ecs.Mission.Phase != component.PhaseWaveCountdown {
		t.Fatalf("phase after clearing wave 1: %s", ecs.Mission.Phase)
	}
	if ecs.Mission.WaveIndex != 2 {
		t.Fatalf("wave index after clearing wave 1: %d", ecs.Mission.WaveIndex)
	}

	d.Update(2.5)
	if ecs.Mission.Phase != component.PhaseWaveActive {
		t.Fatalf("wave 2 did not start: %s", ecs.Mission.Phase)
	}
	clearWave(ecs, dispatcher, d)
	if ecs.Mission.Phase != component.PhaseMissionComplete {
		t.Fatalf("phase after final wave: %s", ecs.Mission.Phase)
	}
	if len(world.spawned) == 0 {
		t.Fatalf("no enemies handed to the world")
	}

	// Terminal phases are absorbing.
	d.Update(10)
	if ecs.Mission.Phase != component.PhaseMissionComplete {
		t.Fatalf("terminal phase changed: %s", ecs.Mission.Phase)
	}
}

func TestDirectorSpawnsSpreadOverInterval(t *testing.T) {
	ecs, _, d, world := directorFixture(1)
	d.Start()
	d.Update(2.1) // countdown elapsed, wave active

	total := len(ecs.Wave.Pending)
	if total < 2 {
		t.Skipf("wave too small to observe spreading: %d spawns", total)
	}

	d.Update(0.5)
	if len(world.spawned) != 1 {
		t.Fatalf("spawns after one interval: got %d, want 1", len(world.spawned))
	}
	if ecs.Wave.Active != 1 {
		t.Fatalf("active count: got %d, want 1", ecs.Wave.Active)
	}
	d.Update(0.5)
	if len(world.spawned) != 2 {
		t.Fatalf("spawns after two intervals: got %d, want 2", len(world.spawned))
	}
}

func TestDirectorSkippedSpawnsDoNotBlockClearing(t *testing.T) {
	// A spawn the world refuses must not count as a live enemy, or the
	// wave would wait forever for a unit that never existed.
	ecs, _, d, world := directorFixture(1)
	world.failSpawn = true
	d.Start()
	d.Update(2.1)
	if ecs.Mission.Phase != component.PhaseWaveActive {
		t.Fatalf("setup: %s", ecs.Mission.Phase)
	}

	for len(ecs.Wave.Pending) > 0 {
		d.Update(1.0)
	}
	if ecs.Wave.Active != 0 {
		t.Fatalf("skipped spawns counted as live: %d", ecs.Wave.Active)
	}
	if ecs.Mission.Phase != component.PhaseWaveCleared {
		t.Fatalf("phase after draining skipped spawns: %s", ecs.Mission.Phase)
	}
	d.Update(0.01)
	if ecs.Mission.Phase != component.PhaseMissionComplete {
		t.Fatalf("single-wave mission did not complete: %s", ecs.Mission.Phase)
	}
}

func TestDirectorFailsWhenPlayerEliminated(t *testing.T) {
	ecs, _, d, world := directorFixture(2)
	d.Start()
	d.Update(2.1)
	if ecs.Mission.Phase != component.PhaseWaveActive {
		t.Fatalf("setup: %s", ecs.Mission.Phase)
	}

	world.towers = 0
	d.Update(0.01)
	if ecs.Mission.Phase != component.PhaseMissionFailed {
		t.Fatalf("phase after losing all towers: %s", ecs.Mission.Phase)
	}
	if !ecs.Mission.Phase.Terminal() {
		t.Fatalf("failed phase not terminal")
	}
}

func TestDirectorIgnoresLossWhileIdle(t *testing.T) {
	ecs, _, d, world := directorFixture(1)
	world.towers = 0
	d.Update(0.01)
	if ecs.Mission.Phase != component.PhaseIdle {
		t.Fatalf("idle director reacted to tower count: %s", ecs.Mission.Phase)
	}
}
