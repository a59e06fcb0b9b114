// cmd/sim/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go-territory-wars/internal/app"
	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/difficulty"
	"go-territory-wars/internal/utils"
)

func main() {
	var (
		contentDir = flag.String("content", "content", "directory with definition catalogs")
		levelPath  = flag.String("level", "content/levels/mission_01.json", "level definition file")
		tierID     = flag.String("tier", "normal", "difficulty tier id")
		runSeed    = flag.Int64("run-seed", 1, "run seed shared by every mission of a run")
		runScalar  = flag.Float64("run-scalar", 1.0, "run-wide difficulty scalar")
		ascension  = flag.Int("ascension", 0, "ascension level")
		ascIDs     = flag.String("ascensions", "", "comma separated ascension override ids")
		modIDs     = flag.String("modifiers", "", "comma separated run-scoped wave modifier ids")
		preview    = flag.Bool("preview", false, "print wave previews as JSON and exit")
		dt         = flag.Float64("dt", 0.05, "fixed simulation step in seconds")
		maxTime    = flag.Float64("max-time", 1800, "wall-clock cap on simulated seconds")
	)
	flag.Parse()

	lib, err := loadLibrary(*contentDir)
	if err != nil {
		log.Fatal(err)
	}
	level, err := defs.LoadLevel(*levelPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, err := buildContext(lib, level, *tierID, *runSeed, *runScalar, *ascension, *ascIDs, *modIDs)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGame(level, lib, ctx)
	if err != nil {
		log.Fatal(err)
	}

	if *preview {
		printPreviews(game)
		return
	}

	run(game, *dt, *maxTime)
}

func loadLibrary(dir string) (*defs.Library, error) {
	lib := defs.NewLibrary()
	steps := []struct {
		file string
		load func(string) error
	}{
		{"enemies.json", lib.LoadEnemies},
		{"towers.json", lib.LoadTowerArchetypes},
		{"presets.json", lib.LoadWavePresets},
		{"modifiers.json", lib.LoadModifiers},
		{"balance.yaml", lib.LoadBalance},
	}
	for _, s := range steps {
		if err := s.load(filepath.Join(dir, s.file)); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// buildContext resolves catalog references (tier, preset, stage and
// ascension overrides) and assembles the immutable difficulty context for
// this attempt.
func buildContext(lib *defs.Library, level *defs.LevelDefinition, tierID string,
	runSeed int64, runScalar float64, ascLevel int, ascIDs, modIDs string) (difficulty.Context, error) {

	tier, err := lib.TierByID(tierID)
	if err != nil {
		return difficulty.Context{}, err
	}
	preset, err := lib.PresetByID(level.WavePlan.PresetID)
	if err != nil {
		return difficulty.Context{}, fmt.Errorf("level %s: %w", level.ID, err)
	}

	in := difficulty.ContextInput{
		MissionID:     level.ID,
		StageID:       level.StageID,
		MissionIndex:  level.MissionIndex,
		MissionScalar: level.MissionScalar,
		RunScalar:     runScalar,

		TierID:   tierID,
		Tier:     tier,
		Baseline: lib.Balance.Baseline,
		Balance:  lib.Balance.Balance,

		AscensionLevel: ascLevel,
		ModifierIDs:    splitIDs(modIDs),
		Sim:            lib.Balance.Sim,

		PlanRef: level.WavePlan,
		Preset:  preset,

		RunSeed:     runSeed,
		MissionSeed: int64(utils.HashSeed32(level.ID)),
	}

	if so, ok := lib.StageOverrideByID(level.StageID); ok {
		in.StageOverride = &so
	}
	for _, id := range splitIDs(ascIDs) {
		asc, ok := lib.AscensionOverrideByID(id)
		if !ok {
			return difficulty.Context{}, fmt.Errorf("unknown ascension override %q", id)
		}
		in.ActiveAscensions = append(in.ActiveAscensions, asc)
	}

	return difficulty.BuildContext(in), nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func printPreviews(game *app.Game) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(game.MissionPreviews()); err != nil {
		log.Fatal(err)
	}
}

// run drives the mission with a fixed step until a terminal phase or the
// simulated-time cap.
func run(game *app.Game, dt, maxTime float64) {
	game.Start()

	for game.ECS.GameTime < maxTime {
		game.Tick(dt)
		if game.ECS.Mission.Phase.Terminal() {
			break
		}
	}

	mission := game.ECS.Mission
	fmt.Printf("attempt %s finished at t=%.1fs\n", mission.AttemptID, game.ECS.GameTime)
	fmt.Printf("phase: %s, wave %d/%d\n", mission.Phase, mission.WaveIndex, mission.TotalWaves)
	fmt.Printf("towers: %v\n", mission.OwnerCounts)
	if len(mission.ClusterSizes) > 0 {
		fmt.Printf("player clusters: %v\n", mission.ClusterSizes)
	}
	if mission.Phase == component.PhaseMissionComplete {
		reward := 0.0
		for i := 1; i <= mission.TotalWaves; i++ {
			reward += difficulty.WaveReward(game.Ctx, i)
		}
		fmt.Printf("reward: %.0f\n", reward)
	}
}
