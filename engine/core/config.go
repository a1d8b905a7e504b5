package core

import "github.com/pkg/errors"

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every gameplay constant. Build it once with DefaultConfig
// and pass it by pointer; nothing mutates it after the match starts.
type Config struct {
	// Field geometry
	FieldWidth    float64
	FieldHeight   float64
	VersusWidth   float64
	VersusHeight  float64
	FPS           int
	PlayerSize    float64
	PlayerYOffset float64 // player starts this far above the bottom edge
	AlienSize     float64
	BulletWidth   float64
	BulletHeight  float64

	// Movement
	PlayerSpeed          float64
	AlienSpeed           float64
	AlienHorizontalSpeed float64
	BulletSpeed          float64
	DirectionChangeMin   int // frames
	DirectionChangeMax   int // frames

	// Combat
	FireRate      int // shots per second
	BulletDamage  int
	AlienHealth   int
	PointsPerKill int

	// Spawning
	AlienSpawnInterval int64 // ms
	MinAliensPerSpawn  int
	MaxAliensPerSpawn  int

	// Match targets
	WinScore       int
	VersusWinScore int

	// Explosions
	ExplosionDuration  int // frames
	ExplosionParticles int
	ExplosionSpeed     float64
	ExplosionDamping   float64
	ParticleMinRadius  int
	ParticleMaxRadius  int

	// Upgrades
	UpgradeScoreInterval     int
	BulletSpeedUpgrade       float64
	AlienSpawnUpgrade        float64
	ClearScreenCooldown      int64 // ms
	ClearScreenReduction     int64 // ms
	ClearScreenMinCooldown   int64 // ms
	TripleShotSideSpeedRatio float64
	TripleShotSideDamage     int
	TripleShotDamageMult     float64
	TripleShotMaxDamage      int
	PlayerSpeedUpgrade       float64
	ScoreMultiplierUpgrade   float64
	WingmanSizeRatio         float64
	WingmanBulletDamage      int
	WingmanBulletSpeedRatio  float64
	WingmanSpeed             float64
	WingmanYOffset           float64
	MilestoneInterval        int
	MilestoneAlienIncrease   float64
	UpgradeStopScore         int
	HealthBoostInterval      int
	HealthBoostMultiplier    float64

	// Background
	BackgroundRectWidth  float64
	BackgroundRectHeight float64
	BackgroundSpeed      float64
	BackgroundSpacing    float64
	BackgroundMaxRects   int
	BackgroundJitter     int
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		FieldWidth:    600,
		FieldHeight:   750,
		VersusWidth:   1000,
		VersusHeight:  750,
		FPS:           60,
		PlayerSize:    30,
		PlayerYOffset: 50,
		AlienSize:     30,
		BulletWidth:   3,
		BulletHeight:  10,

		PlayerSpeed:          4,
		AlienSpeed:           1,
		AlienHorizontalSpeed: 0.5,
		BulletSpeed:          10,
		DirectionChangeMin:   60,
		DirectionChangeMax:   180,

		FireRate:      5,
		BulletDamage:  50,
		AlienHealth:   100,
		PointsPerKill: 5,

		AlienSpawnInterval: 5000,
		MinAliensPerSpawn:  1,
		MaxAliensPerSpawn:  5,

		WinScore:       100,
		VersusWinScore: 500,

		ExplosionDuration:  30,
		ExplosionParticles: 8,
		ExplosionSpeed:     3,
		ExplosionDamping:   0.95,
		ParticleMinRadius:  2,
		ParticleMaxRadius:  5,

		UpgradeScoreInterval:     100,
		BulletSpeedUpgrade:       0.15,
		AlienSpawnUpgrade:        0.2,
		ClearScreenCooldown:      40000,
		ClearScreenReduction:     10000,
		ClearScreenMinCooldown:   20000,
		TripleShotSideSpeedRatio: 0.5,
		TripleShotSideDamage:     10,
		TripleShotDamageMult:     1.5,
		TripleShotMaxDamage:      100,
		PlayerSpeedUpgrade:       0.2,
		ScoreMultiplierUpgrade:   0.15,
		WingmanSizeRatio:         0.25,
		WingmanBulletDamage:      10,
		WingmanBulletSpeedRatio:  0.5,
		WingmanSpeed:             1,
		WingmanYOffset:           5,
		MilestoneInterval:        1000,
		MilestoneAlienIncrease:   0.6,
		UpgradeStopScore:         10000,
		HealthBoostInterval:      500,
		HealthBoostMultiplier:    0.3,

		BackgroundRectWidth:  20,
		BackgroundRectHeight: 60,
		BackgroundSpeed:      2,
		BackgroundSpacing:    100,
		BackgroundMaxRects:   50,
		BackgroundJitter:     20,
	}
}

// ShotInterval returns the milliseconds between two shot events
func (c *Config) ShotInterval() int64 {
	if c.FireRate <= 0 {
		return 1000
	}
	return int64(1000 / c.FireRate)
}

// WingmanSize returns the side length of a wingman
func (c *Config) WingmanSize() float64 {
	return float64(int(c.PlayerSize * c.WingmanSizeRatio))
}

// Validate checks the config for values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.FieldWidth <= c.PlayerSize || c.FieldHeight <= c.PlayerSize:
		return errors.Wrapf(ErrInvalidConfig, "field %vx%v smaller than player", c.FieldWidth, c.FieldHeight)
	case c.VersusWidth <= 2*c.PlayerSize || c.VersusHeight <= c.PlayerSize:
		return errors.Wrapf(ErrInvalidConfig, "versus field %vx%v too small", c.VersusWidth, c.VersusHeight)
	case c.AlienSize <= 0 || c.AlienSize >= c.FieldWidth/2:
		return errors.Wrapf(ErrInvalidConfig, "alien size %v", c.AlienSize)
	case c.FPS <= 0 || c.FireRate <= 0:
		return errors.Wrap(ErrInvalidConfig, "fps and fire rate must be positive")
	case c.AlienSpawnInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "spawn interval %d", c.AlienSpawnInterval)
	case c.MinAliensPerSpawn < 0 || c.MaxAliensPerSpawn < c.MinAliensPerSpawn:
		return errors.Wrapf(ErrInvalidConfig, "alien spawn range [%d, %d]", c.MinAliensPerSpawn, c.MaxAliensPerSpawn)
	case c.DirectionChangeMin <= 0 || c.DirectionChangeMax < c.DirectionChangeMin:
		return errors.Wrapf(ErrInvalidConfig, "direction change range [%d, %d]", c.DirectionChangeMin, c.DirectionChangeMax)
	case c.ParticleMinRadius <= 0 || c.ParticleMaxRadius < c.ParticleMinRadius:
		return errors.Wrapf(ErrInvalidConfig, "particle radius range [%d, %d]", c.ParticleMinRadius, c.ParticleMaxRadius)
	case c.UpgradeScoreInterval <= 0 || c.MilestoneInterval <= 0 || c.HealthBoostInterval <= 0:
		return errors.Wrap(ErrInvalidConfig, "score intervals must be positive")
	case c.ExplosionDamping <= 0 || c.ExplosionDamping >= 1:
		return errors.Wrapf(ErrInvalidConfig, "explosion damping %v", c.ExplosionDamping)
	case c.ClearScreenMinCooldown > c.ClearScreenCooldown:
		return errors.Wrap(ErrInvalidConfig, "clear-screen floor above base cooldown")
	case c.WinScore <= 0 || c.VersusWinScore <= 0:
		return errors.Wrap(ErrInvalidConfig, "win scores must be positive")
	}
	return nil
}
