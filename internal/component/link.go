// internal/component/link.go
package component

import "go-territory-wars/internal/types"

// Link is a directed route between two adjacent towers. Scripted links
// come from level data and are exempt from adjacency validation.
type Link struct {
	From         types.EntityID
	To           types.EntityID
	Owner        types.Owner
	Level        int
	Scripted     bool
	Integrity    float64
	MaxIntegrity float64
}
