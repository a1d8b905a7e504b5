package core

// Player is a ship together with the upgrades it has collected
type Player struct {
	Rect
	BaseSpeed float64

	// Upgrade modifiers
	SpeedMultiplier float64
	ScoreMultiplier float64
	TripleShot      bool
	SideDamage      int
	ClearScreen     bool
	ClearCooldown   int64 // ms
	LastClear       int64 // ms, valid once ClearUsed
	ClearUsed       bool
	HasWingmen      bool
}

// NewPlayer creates a player at the bottom centre of lane
func NewPlayer(lane Rect, cfg *Config) *Player {
	return &Player{
		Rect: Rect{
			X: lane.X + float64(int(lane.W)/2) - float64(int(cfg.PlayerSize)/2),
			Y: lane.Bottom() - cfg.PlayerYOffset,
			W: cfg.PlayerSize,
			H: cfg.PlayerSize,
		},
		BaseSpeed:       cfg.PlayerSpeed,
		SpeedMultiplier: 1,
		ScoreMultiplier: 1,
	}
}

// Speed returns pixels per frame after upgrades
func (p *Player) Speed() float64 {
	return p.BaseSpeed * p.SpeedMultiplier
}

// Move applies one frame of intent and keeps the ship inside lane
func (p *Player) Move(in Intent, lane Rect) {
	dx, dy := in.Axis()
	s := p.Speed()
	p.X += dx * s
	p.Y += dy * s
	p.ClampInto(lane)
}

// KillScore returns the points one kill is worth for this player
func (p *Player) KillScore(points int) int {
	return int(float64(points) * p.ScoreMultiplier)
}

// ClearReady reports whether the clear-screen ability can fire at now
func (p *Player) ClearReady(now int64) bool {
	if !p.ClearScreen {
		return false
	}
	return !p.ClearUsed || now-p.LastClear >= p.ClearCooldown
}

// ClearRemaining returns ms until the ability is ready, 0 when ready
func (p *Player) ClearRemaining(now int64) int64 {
	if !p.ClearScreen || !p.ClearUsed {
		return 0
	}
	left := p.ClearCooldown - (now - p.LastClear)
	if left < 0 {
		return 0
	}
	return left
}
