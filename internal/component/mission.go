// internal/component/mission.go
package component

import "go-territory-wars/internal/types"

// MissionPhase is the wave director's externally observable state.
type MissionPhase string

const (
	PhaseIdle            MissionPhase = "Idle"
	PhaseWaveCountdown   MissionPhase = "WaveCountdown"
	PhaseWaveActive      MissionPhase = "WaveActive"
	PhaseWaveCleared     MissionPhase = "WaveCleared"
	PhaseMissionComplete MissionPhase = "MissionComplete"
	PhaseMissionFailed   MissionPhase = "MissionFailed"
)

// Terminal reports whether the phase ends the mission.
func (p MissionPhase) Terminal() bool {
	return p == PhaseMissionComplete || p == PhaseMissionFailed
}

// MissionState is the externally observable mission snapshot consumed by
// HUD and win/loss logic. The director and world update it; they do not
// own its readers.
type MissionState struct {
	AttemptID  string
	Phase      MissionPhase
	WaveIndex  int
	TotalWaves int
	Cooldown   float64

	OwnerCounts  map[types.Owner]int
	ClusterSizes []int
}
