// internal/types/types.go
package types

// EntityID identifies a single entity in the ECS store.
type EntityID uint64

// Owner marks which side controls a tower, link or packet.
type Owner string

const (
	OwnerPlayer  Owner = "player"
	OwnerEnemy   Owner = "enemy"
	OwnerNeutral Owner = "neutral"
)
