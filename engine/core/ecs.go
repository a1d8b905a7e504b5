package core

// EntityID identifies an entity within its pool. IDs are never reused.
type EntityID uint64

// Pool is a stable-index arena. Destroy only marks a slot; indexes stay
// valid until Compact, which drops marked slots and keeps creation order.
type Pool[T any] struct {
	items  []T
	ids    []EntityID
	dead   []bool
	marked int
	nextID EntityID
}

// NewPool creates an empty pool
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Spawn appends v and returns its ID
func (p *Pool[T]) Spawn(v T) EntityID {
	p.nextID++
	p.items = append(p.items, v)
	p.ids = append(p.ids, p.nextID)
	p.dead = append(p.dead, false)
	return p.nextID
}

// Len returns the number of slots, marked ones included
func (p *Pool[T]) Len() int { return len(p.items) }

// Count returns the number of live entities
func (p *Pool[T]) Count() int { return len(p.items) - p.marked }

// At returns the slot at i. The pointer is valid until the next Spawn or Compact.
func (p *Pool[T]) At(i int) *T { return &p.items[i] }

// ID returns the entity ID at slot i
func (p *Pool[T]) ID(i int) EntityID { return p.ids[i] }

// Alive reports whether slot i has not been marked
func (p *Pool[T]) Alive(i int) bool { return !p.dead[i] }

// Destroy marks slot i for removal
func (p *Pool[T]) Destroy(i int) {
	if p.dead[i] {
		return
	}
	p.dead[i] = true
	p.marked++
}

// Each calls fn for every live slot in creation order. Slots destroyed
// inside fn are skipped for the rest of the pass.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.items {
		if !p.dead[i] {
			fn(i, &p.items[i])
		}
	}
}

// Items returns a copy of the live entities in creation order
func (p *Pool[T]) Items() []T {
	out := make([]T, 0, p.Count())
	p.Each(func(_ int, v *T) { out = append(out, *v) })
	return out
}

// Compact removes marked slots
func (p *Pool[T]) Compact() {
	if p.marked == 0 {
		return
	}
	n := 0
	for i := range p.items {
		if p.dead[i] {
			continue
		}
		p.items[n] = p.items[i]
		p.ids[n] = p.ids[i]
		p.dead[n] = false
		n++
	}
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
	p.ids = p.ids[:n]
	p.dead = p.dead[:n]
	p.marked = 0
}

// Clear drops every entity. IDs keep counting up.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	p.ids = p.ids[:0]
	p.dead = p.dead[:0]
	p.marked = 0
}

// Modifiers are the cumulative difficulty and weapon multipliers of a field
type Modifiers struct {
	BulletSpeed    float64
	AlienSpawn     float64 // from upgrades
	AlienHealth    float64 // end-game health boosts
	MilestoneSpawn float64 // from score milestones
}

// DefaultModifiers returns all multipliers at 1
func DefaultModifiers() Modifiers {
	return Modifiers{BulletSpeed: 1, AlienSpawn: 1, AlienHealth: 1, MilestoneSpawn: 1}
}

// SpawnMultiplier returns the total multiplier applied to the spawn count
func (m Modifiers) SpawnMultiplier() float64 {
	return m.AlienSpawn * m.MilestoneSpawn
}

// Field is one play area with its own entities, timers and score. Single
// player uses one field; versus runs one per half of the screen.
type Field struct {
	Index int
	Lane  Rect
	Cfg   *Config
	Rng   Rand
	Bus   *EventBus

	Player      *Player
	Aliens      *Pool[Alien]
	Projectiles *Pool[Projectile]
	Explosions  *Pool[Explosion]
	Wingmen     *Pool[Wingman]

	Mods            Modifiers
	Score           int
	FrameStartScore int
	UpgradeScore    int
	PendingUpgrades []UpgradeKind
	Lost            bool
	Intent          Intent
	LastSpawn       int64 // ms
	LastShot        int64 // ms
	ShotCount       int   // drives the colour cycle
	TickCount       uint64

	systems []System
	effects []System
}

// System processes a field each frame
type System interface {
	Update(f *Field, now int64)
	Priority() int
}

// NewField creates a field for lane
func NewField(index int, lane Rect, cfg *Config, rng Rand, bus *EventBus) *Field {
	f := &Field{
		Index:       index,
		Lane:        lane,
		Cfg:         cfg,
		Rng:         rng,
		Bus:         bus,
		Aliens:      NewPool[Alien](),
		Projectiles: NewPool[Projectile](),
		Explosions:  NewPool[Explosion](),
		Wingmen:     NewPool[Wingman](),
	}
	f.Reset(0)
	return f
}

// AddSystem registers a gameplay system
func (f *Field) AddSystem(s System) {
	f.systems = insertByPriority(f.systems, s)
}

// AddEffect registers a system that keeps running while gameplay is
// suspended
func (f *Field) AddEffect(s System) {
	f.effects = insertByPriority(f.effects, s)
}

func insertByPriority(list []System, s System) []System {
	list = append(list, s)
	for i := len(list) - 1; i > 0; i-- {
		if list[i].Priority() < list[i-1].Priority() {
			list[i], list[i-1] = list[i-1], list[i]
		}
	}
	return list
}

// Animate runs the effect systems once
func (f *Field) Animate(now int64) {
	for _, s := range f.effects {
		s.Update(f, now)
	}
	f.Explosions.Compact()
}

// Tick runs the gameplay systems once. A loss stops the remaining systems
// for this frame.
func (f *Field) Tick(now int64) {
	f.FrameStartScore = f.Score
	for _, s := range f.systems {
		if f.Lost {
			break
		}
		s.Update(f, now)
	}
	f.Aliens.Compact()
	f.Projectiles.Compact()
	f.Explosions.Compact()
	f.Wingmen.Compact()
	f.TickCount++
}

// AddScore raises the score. Negative amounts are ignored.
func (f *Field) AddScore(points int) {
	if points > 0 {
		f.Score += points
	}
}

// Emit queues an event tagged with this field
func (f *Field) Emit(t EventType, payload interface{}) {
	if f.Bus == nil {
		return
	}
	f.Bus.Emit(Event{Type: t, Field: f.Index, Tick: f.TickCount, Payload: payload})
}

// Reset restores the field to its starting state with its spawn and shot
// timers starting at now. Systems stay registered.
func (f *Field) Reset(now int64) {
	f.Player = NewPlayer(f.Lane, f.Cfg)
	f.Aliens.Clear()
	f.Projectiles.Clear()
	f.Explosions.Clear()
	f.Wingmen.Clear()
	f.Mods = DefaultModifiers()
	f.Score = 0
	f.FrameStartScore = 0
	f.UpgradeScore = 0
	f.PendingUpgrades = nil
	f.Lost = false
	f.Intent = Intent{}
	f.LastSpawn = now
	f.LastShot = now
	f.ShotCount = 0
	f.TickCount = 0
}
