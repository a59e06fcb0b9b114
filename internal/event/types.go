// internal/event/types.go
package event

const (
	LinkCreated    EventType = "LinkCreated"
	LinkRemoved    EventType = "LinkRemoved"
	TowerCaptured  EventType = "TowerCaptured"
	PacketArrived  EventType = "PacketArrived"
	EnemySpawned   EventType = "EnemySpawned"
	EnemyDestroyed EventType = "EnemyDestroyed"
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded"
	MissionWon     EventType = "MissionWon"
	MissionLost    EventType = "MissionLost"
)
