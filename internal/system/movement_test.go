package system

import (
	"testing"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/entity"
	"go-territory-wars/internal/types"
	"go-territory-wars/pkg/geom"
)

func movementFixture() (*entity.ECS, *MovementSystem, types.EntityID, types.EntityID) {
	ecs := entity.NewECS()
	from := ecs.NewEntity()
	ecs.Towers[from] = &component.Tower{Owner: types.OwnerPlayer, Pos: geom.Vec2{X: 0, Y: 0}}
	to := ecs.NewEntity()
	ecs.Towers[to] = &component.Tower{Owner: types.OwnerPlayer, Pos: geom.Vec2{X: 100, Y: 0}}
	return ecs, NewMovementSystem(ecs), from, to
}

func TestLinkPacketProgress(t *testing.T) {
	ecs, sys, from, to := movementFixture()
	linkID := ecs.NewEntity()
	ecs.Links[linkID] = &component.Link{From: from, To: to, Owner: types.OwnerPlayer}

	pid := ecs.NewEntity()
	ecs.Packets[pid] = &component.UnitPacket{
		Owner: types.OwnerPlayer, Troops: 10, Speed: 50,
		LinkID: linkID, Target: to,
	}

	sys.Update(1.0)
	p := ecs.Packets[pid]
	if !almostEqual(p.Progress, 0.5) {
		t.Fatalf("progress after 1s at speed 50 over 100: got %f, want 0.5", p.Progress)
	}
	if !almostEqual(p.Pos.X, 50) {
		t.Fatalf("position interpolation: got %f, want 50", p.Pos.X)
	}

	sys.Update(2.0)
	if p.Progress != 1 {
		t.Fatalf("progress not clamped at arrival: %f", p.Progress)
	}
	if _, alive := ecs.Packets[pid]; !alive {
		t.Fatalf("movement must not consume arrived packets")
	}
}

func TestBrokenLinkPacketContinuesAsLanePacket(t *testing.T) {
	ecs, sys, from, to := movementFixture()
	linkID := ecs.NewEntity()
	ecs.Links[linkID] = &component.Link{From: from, To: to, Owner: types.OwnerPlayer}

	pid := ecs.NewEntity()
	ecs.Packets[pid] = &component.UnitPacket{
		Owner: types.OwnerPlayer, Troops: 10, Speed: 50,
		LinkID: linkID, Target: to,
	}
	sys.Update(1.0)

	delete(ecs.Links, linkID)
	sys.Update(0.1)

	p := ecs.Packets[pid]
	if p.LinkID != 0 {
		t.Fatalf("packet still bound to a deleted link")
	}
	if p.Pos.X <= 50 {
		t.Fatalf("packet stopped moving after its link broke: x=%f", p.Pos.X)
	}
}

func TestLanePacketArrivesWithinDistance(t *testing.T) {
	ecs, sys, _, to := movementFixture()
	pid := ecs.NewEntity()
	ecs.Packets[pid] = &component.UnitPacket{
		Owner: types.OwnerEnemy, Troops: 10, Speed: 50,
		Target: to, Pos: geom.Vec2{X: 98, Y: 0},
	}
	sys.Update(0.01)
	p := ecs.Packets[pid]
	if p.Progress != 1 {
		t.Fatalf("lane packet within arrive distance not marked arrived")
	}
	if p.Pos != (geom.Vec2{X: 100, Y: 0}) {
		t.Fatalf("arrived packet not snapped to target: %+v", p.Pos)
	}
}

func TestLanePacketVanishedTarget(t *testing.T) {
	ecs, sys, _, to := movementFixture()
	pid := ecs.NewEntity()
	ecs.Packets[pid] = &component.UnitPacket{
		Owner: types.OwnerEnemy, Troops: 10, Speed: 50,
		Target: 9999, Pos: geom.Vec2{X: 0, Y: 0},
	}
	_ = to
	sys.Update(0.1)
	if ecs.Packets[pid].Progress != 1 {
		t.Fatalf("packet with a vanished target must finish immediately")
	}
}
