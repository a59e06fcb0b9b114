// internal/app/links.go
package app

import (
	"go-territory-wars/internal/component"
	"go-territory-wars/internal/config"
	"go-territory-wars/internal/event"
	"go-territory-wars/internal/types"
)

// LinkFailReason enumerates why a link creation request was rejected.
type LinkFailReason string

const (
	ReasonSelfLink          LinkFailReason = "self-link"
	ReasonTowerNotFound     LinkFailReason = "tower-not-found"
	ReasonOwnershipMismatch LinkFailReason = "ownership-mismatch"
	ReasonNotAdjacent       LinkFailReason = "not-adjacent"
	ReasonZeroCapacity      LinkFailReason = "zero-capacity"
	ReasonDuplicateLink     LinkFailReason = "duplicate-link"
	ReasonCapacityReached   LinkFailReason = "capacity-reached"
)

// LinkError is the structured rejection surfaced to the caller (UI or
// AI). The request never mutates state.
type LinkError struct {
	Reason LinkFailReason
}

func (e *LinkError) Error() string {
	return "link rejected: " + string(e.Reason)
}

// CreateLink validates and creates a directed link between two towers.
// Non-scripted links must connect geometrically adjacent towers, respect
// the source tower's outgoing capacity and not duplicate an existing
// edge.
func (g *Game) CreateLink(from, to types.EntityID, owner types.Owner) (types.EntityID, error) {
	if from == to {
		return 0, &LinkError{Reason: ReasonSelfLink}
	}

	fromTower, ok := g.ECS.Towers[from]
	if !ok {
		return 0, &LinkError{Reason: ReasonTowerNotFound}
	}
	if _, ok := g.ECS.Towers[to]; !ok {
		return 0, &LinkError{Reason: ReasonTowerNotFound}
	}
	if fromTower.Owner != owner {
		return 0, &LinkError{Reason: ReasonOwnershipMismatch}
	}
	if !g.AreNeighbors(from, to) {
		return 0, &LinkError{Reason: ReasonNotAdjacent}
	}

	capacity := g.maxOutgoingLinks(from)
	if capacity == 0 {
		return 0, &LinkError{Reason: ReasonZeroCapacity}
	}
	for _, link := range g.ECS.Links {
		if link.From == from && link.To == to {
			return 0, &LinkError{Reason: ReasonDuplicateLink}
		}
	}
	if g.ECS.OutgoingLinkCount(from) >= capacity {
		return 0, &LinkError{Reason: ReasonCapacityReached}
	}

	id := g.addLink(from, to, owner, 0, false)
	return id, nil
}

// addLink inserts a link without validation; scripted level links use it
// directly since they are exempt from adjacency rules.
func (g *Game) addLink(from, to types.EntityID, owner types.Owner, level int, scripted bool) types.EntityID {
	integrity := g.Level.Rules.LinkIntegrity * (1.0 + config.LinkLevelIntegrityBonus*float64(level))
	id := g.ECS.NewEntity()
	g.ECS.Links[id] = &component.Link{
		From:         from,
		To:           to,
		Owner:        owner,
		Level:        level,
		Scripted:     scripted,
		Integrity:    integrity,
		MaxIntegrity: integrity,
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.LinkCreated, Data: id})
	return id
}

// RemoveLink deletes a link, e.g. when the player replaces a route.
func (g *Game) RemoveLink(id types.EntityID) {
	if _, ok := g.ECS.Links[id]; !ok {
		return
	}
	delete(g.ECS.Links, id)
	g.Dispatcher.Dispatch(event.Event{Type: event.LinkRemoved, Data: id})
}

// UpgradeLink raises a link's level, scaling its integrity pool along
// with the speed/armor/damage bonuses applied to future packets.
func (g *Game) UpgradeLink(id types.EntityID) bool {
	link, ok := g.ECS.Links[id]
	if !ok {
		return false
	}
	link.Level++
	integrity := g.Level.Rules.LinkIntegrity * (1.0 + config.LinkLevelIntegrityBonus*float64(link.Level))
	link.Integrity += integrity - link.MaxIntegrity
	link.MaxIntegrity = integrity
	return true
}

// maxOutgoingLinks resolves the outgoing capacity for a tower: archetype
// override if present, level rule default otherwise.
func (g *Game) maxOutgoingLinks(id types.EntityID) int {
	arch := g.TowerArchetype(id)
	if arch.MaxOutgoingLinks != nil {
		return *arch.MaxOutgoingLinks
	}
	return g.Level.Rules.MaxOutgoingLinks
}
