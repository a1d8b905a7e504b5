package core

import "math"

// Rect is an axis-aligned box in field pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Bounded is anything with a collision rectangle
type Bounded interface {
	Bounds() Rect
}

func (r Rect) Bounds() Rect { return r }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether the two boxes overlap. Touching edges do not
// count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Collide reports whether two bounded things overlap
func Collide(a, b Bounded) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// ClampInto moves r so that it lies inside area. r must not be larger
// than area.
func (r *Rect) ClampInto(area Rect) {
	r.X = clamp(r.X, area.X, area.Right()-r.W)
	r.Y = clamp(r.Y, area.Y, area.Bottom()-r.H)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StarPoints returns the 10 vertices of a five-point star in drawing order,
// alternating outer tips and inner corners at half the radius. The first tip
// points up.
func StarPoints(cx, cy, radius float64) [10][2]float64 {
	var pts [10][2]float64
	for i := range pts {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		rad := radius
		if i%2 == 1 {
			rad = radius * 0.5
		}
		pts[i] = [2]float64{cx + rad*math.Cos(angle), cy + rad*math.Sin(angle)}
	}
	return pts
}
