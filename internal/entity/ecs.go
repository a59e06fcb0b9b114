// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Towers   map[types.EntityID]*component.Tower
	Links    map[types.EntityID]*component.Link
	Packets  map[types.EntityID]*component.UnitPacket
	Wave     *component.Wave
	Mission  *component.MissionState
}

func NewECS() *ECS {
	return &ECS{
		NextID:  1,
		Towers:  make(map[types.EntityID]*component.Tower),
		Links:   make(map[types.EntityID]*component.Link),
		Packets: make(map[types.EntityID]*component.UnitPacket),
		Mission: &component.MissionState{
			Phase:       component.PhaseIdle,
			OwnerCounts: make(map[types.Owner]int),
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Sorted id accessors. Go map iteration order is randomized; every
// mutation path must walk entities in id order or replays diverge.

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

func (ecs *ECS) SortedLinkIDs() []types.EntityID {
	return sortedIDs(ecs.Links)
}

func (ecs *ECS) SortedPacketIDs() []types.EntityID {
	return sortedIDs(ecs.Packets)
}

// OutgoingLinkCount counts links originating at the tower.
func (ecs *ECS) OutgoingLinkCount(towerID types.EntityID) int {
	count := 0
	for _, link := range ecs.Links {
		if link.From == towerID {
			count++
		}
	}
	return count
}
