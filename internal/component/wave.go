// internal/component/wave.go
package component

// PendingSpawn is one enemy unit the director still has to inject.
type PendingSpawn struct {
	DefID string
	Elite bool
}

// Wave is the live state of the current wave.
type Wave struct {
	Index         int
	Total         int
	Budget        float64
	IsBossWave    bool
	Pending       []PendingSpawn
	SpawnTimer    float64
	SpawnInterval float64
	Active        int // live enemies spawned by this wave
}
