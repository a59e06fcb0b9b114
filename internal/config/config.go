// internal/config/config.go
package config

const (
	MaxDeltaTime = 0.06

	// Wave plan clamps. Malformed content data must never produce
	// degenerate mission lengths or scalars.
	MinWaveCount         = 1
	MaxWaveCount         = 12
	MinDifficultyScalar  = 0.6
	MaxDifficultyScalar  = 2.0
	MinFirstAppearanceWv = 1

	// Territory cluster breakpoints. Bonuses are additive per breakpoint
	// reached, so a 5-tower cluster gets both tiers.
	ClusterTier1Size = 3
	ClusterTier2Size = 5

	ClusterTier1RegenBonus = 0.15
	ClusterTier2RegenBonus = 0.25
	ClusterTier1ArmorBonus = 0.05
	ClusterTier2ArmorBonus = 0.10
	ClusterTier1Vision     = 1
	ClusterTier2Vision     = 2

	// Defaults used when a level omits a rule tunable.
	DefaultMaxOutgoingLinks  = 3
	DefaultSendRate          = 4.0
	DefaultSendTroopFloor    = 2.0
	DefaultCollisionDistance = 14.0
	DefaultCaptureSeedTroops = 5.0
	DefaultNeighborRadius    = 160.0
	DefaultUnitSpeed         = 60.0
	DefaultUnitDPS           = 10.0
	DefaultUnitHP            = 10.0
	DefaultLinkIntegrity     = 100.0
	DefaultAIThinkInterval   = 2.0
	DefaultAIMinTroops       = 8.0

	// Per-level link upgrades scale packet speed/armor/damage and the
	// integrity pool of the link itself.
	LinkLevelSpeedBonus     = 0.10
	LinkLevelArmorBonus     = 0.05
	LinkLevelDamageBonus    = 0.10
	LinkLevelIntegrityBonus = 0.25

	// Wave pacing fallbacks when the balance config leaves them unset.
	DefaultWaveCooldown  = 8.0
	DefaultSpawnInterval = 0.8
)
