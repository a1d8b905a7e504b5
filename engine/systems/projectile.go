package systems

import (
	"github.com/1siamBot/alien-shooter/engine/core"
)

// ProjectileSystem moves projectiles and drops the ones that left the lane
type ProjectileSystem struct{}

func (s *ProjectileSystem) Priority() int { return 40 }

func (s *ProjectileSystem) Update(f *core.Field, _ int64) {
	f.Projectiles.Each(func(i int, p *core.Projectile) {
		p.Move()
		if p.Gone(f.Lane) {
			f.Projectiles.Destroy(i)
		}
	})
}
