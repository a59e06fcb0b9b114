// internal/system/movement.go
package system

import (
	"go-territory-wars/internal/entity"
	"go-territory-wars/pkg/geom"
)

// Lane packets count as arrived once within this distance of their
// target tower.
const arriveDistance = 4.0

// MovementSystem advances in-flight packets: link packets by progress
// along their link, lane packets straight toward their target tower.
// Arrival (Progress >= 1) is only marked here; resolution happens after
// collision combat, preserving the fixed tick order.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedPacketIDs() {
		packet := s.ecs.Packets[id]
		if packet.Progress >= 1 {
			continue
		}

		if packet.LinkID != 0 {
			link, ok := s.ecs.Links[packet.LinkID]
			if !ok {
				// The link broke under the packet; it finishes the trip
				// as a free lane packet.
				packet.LinkID = 0
			} else {
				from := s.ecs.Towers[link.From]
				to := s.ecs.Towers[link.To]
				length := geom.Dist(from.Pos, to.Pos)
				if length <= 0 {
					packet.Progress = 1
					continue
				}
				packet.Progress += packet.Speed * dt / length
				if packet.Progress >= 1 {
					packet.Progress = 1
				}
				packet.Pos = geom.Lerp(from.Pos, to.Pos, packet.Progress)
				continue
			}
		}

		target, ok := s.ecs.Towers[packet.Target]
		if !ok {
			packet.Progress = 1
			continue
		}
		delta := target.Pos.Sub(packet.Pos)
		dist := delta.Len()
		step := packet.Speed * dt
		if dist <= step+arriveDistance {
			packet.Pos = target.Pos
			packet.Progress = 1
			continue
		}
		packet.Pos = packet.Pos.Add(delta.Scale(step / dist))
	}
}
