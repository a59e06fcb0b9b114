package app

import (
	"reflect"
	"testing"

	"go-territory-wars/internal/component"
	"go-territory-wars/internal/defs"
	"go-territory-wars/internal/types"
)

// chainGame builds n player towers in a line plus two isolated player
// towers far away, then links the chain 0→1→…→n-1.
func chainGame(t *testing.T, n int) (*Game, []types.EntityID) {
	t.Helper()
	spawns := make([]defs.TowerSpawn, 0, n+2)
	for i := 0; i < n; i++ {
		spawns = append(spawns, spawnAt(string(rune('a'+i)), i, types.OwnerPlayer))
	}
	spawns = append(spawns, spawnAt("lone1", n+5, types.OwnerPlayer))
	spawns = append(spawns, spawnAt("lone2", n+10, types.OwnerPlayer))

	g := newTestGame(t, spawns...)
	ids := g.ECS.SortedTowerIDs()
	for i := 0; i+1 < n; i++ {
		if _, err := g.CreateLink(ids[i], ids[i+1], types.OwnerPlayer); err != nil {
			t.Fatalf("chain link %d: %v", i, err)
		}
	}
	return g, ids
}

func TestClusterBonusTiers(t *testing.T) {
	g, ids := chainGame(t, 5)

	// 5-tower cluster earns both tiers, additively.
	if got := g.ClusterRegenBonus(ids[0]); !almostEqual(got, 0.40) {
		t.Errorf("5-cluster regen bonus: got %f, want 0.40", got)
	}
	if got := g.ClusterArmorBonus(ids[0]); !almostEqual(got, 0.15) {
		t.Errorf("5-cluster armor bonus: got %f, want 0.15", got)
	}
	if got := g.ClusterVisionBonus(ids[0]); got != 3 {
		t.Errorf("5-cluster vision bonus: got %d, want 3", got)
	}

	// The isolated towers earn nothing.
	for _, lone := range ids[5:7] {
		if got := g.ClusterRegenBonus(lone); got != 0 {
			t.Errorf("isolated tower regen bonus: got %f, want 0", got)
		}
		if got := g.ClusterArmorBonus(lone); got != 0 {
			t.Errorf("isolated tower armor bonus: got %f, want 0", got)
		}
	}
}

func TestClusterBelowThresholdEarnsNothing(t *testing.T) {
	g, ids := chainGame(t, 2)
	if got := g.ClusterRegenBonus(ids[0]); got != 0 {
		t.Errorf("2-cluster regen bonus: got %f, want 0", got)
	}
}

func TestClusterTier1Only(t *testing.T) {
	g, ids := chainGame(t, 3)
	if got := g.ClusterRegenBonus(ids[0]); !almostEqual(got, 0.15) {
		t.Errorf("3-cluster regen bonus: got %f, want 0.15", got)
	}
	if got := g.ClusterVisionBonus(ids[0]); got != 1 {
		t.Errorf("3-cluster vision bonus: got %d, want 1", got)
	}
}

func TestPlayerClusterSizes(t *testing.T) {
	g, _ := chainGame(t, 4)
	got := g.PlayerClusterSizes()
	if !reflect.DeepEqual(got, []int{4, 1, 1}) {
		t.Fatalf("cluster sizes: got %v, want [4 1 1]", got)
	}
}

func TestClusterRecomputeOnLinkRemoval(t *testing.T) {
	g, ids := chainGame(t, 5)
	if size := g.clusterSizeFor(ids[0]); size != 5 {
		t.Fatalf("initial cluster size: got %d, want 5", size)
	}

	// Break the middle of the chain; both halves shrink.
	var middle types.EntityID
	for _, linkID := range g.ECS.SortedLinkIDs() {
		link := g.ECS.Links[linkID]
		if link.From == ids[1] && link.To == ids[2] {
			middle = linkID
		}
	}
	if middle == 0 {
		t.Fatalf("middle link not found")
	}
	g.RemoveLink(middle)

	if size := g.clusterSizeFor(ids[0]); size != 2 {
		t.Errorf("left half size: got %d, want 2", size)
	}
	if size := g.clusterSizeFor(ids[4]); size != 3 {
		t.Errorf("right half size: got %d, want 3", size)
	}
}

func TestClusterIgnoresForeignEndpoints(t *testing.T) {
	// A link whose endpoint was captured no longer carries territory.
	g, ids := chainGame(t, 3)
	g.ECS.Towers[ids[1]].Owner = types.OwnerEnemy
	g.markClustersDirty()

	if size := g.clusterSizeFor(ids[0]); size != 1 {
		t.Errorf("cluster through a captured tower: got %d, want 1", size)
	}
	if size := g.clusterSizeFor(ids[2]); size != 1 {
		t.Errorf("cluster through a captured tower: got %d, want 1", size)
	}
}

func TestCaptureInvalidatesClusters(t *testing.T) {
	g, ids := chainGame(t, 3)
	if size := g.clusterSizeFor(ids[0]); size != 3 {
		t.Fatalf("initial cluster size: got %d, want 3", size)
	}

	// An enemy assault flips the middle tower; the capture event must
	// invalidate the cached index without a manual dirty call.
	tower := g.ECS.Towers[ids[1]]
	tower.Troops = 1
	pid := g.ECS.NewEntity()
	g.ECS.Packets[pid] = &component.UnitPacket{
		Owner: types.OwnerEnemy, Troops: 10, EffDamage: 1.0,
		Target: ids[1], Progress: 1,
	}
	g.resolveArrivals()

	if tower.Owner != types.OwnerEnemy {
		t.Fatalf("middle tower not captured")
	}
	if size := g.clusterSizeFor(ids[0]); size != 1 {
		t.Errorf("cluster size after capture: got %d, want 1", size)
	}
}
