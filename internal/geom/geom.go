// Package geom holds the stateless overlap tests shared by every actor
// category: rectangle overlap, point containment and circle proximity.
package geom

import "math"

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports strict overlap; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// ContainsPoint reports whether (x, y) lies strictly inside the box.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Union returns the smallest box covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// CircleTouchesRect reports whether the circle at (cx, cy) with radius
// reaches the box, measured from the box's closest point to the centre.
func CircleTouchesRect(cx, cy, radius float64, r Rect) bool {
	closestX := Clamp(cx, r.X, r.Right())
	closestY := Clamp(cy, r.Y, r.Bottom())
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= radius*radius
}

// PointInCircle reports whether (px, py) is within radius of (cx, cy).
func PointInCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}

// DistSq is the squared euclidean distance between two points.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Aim returns a velocity of the given speed pointing from (ox, oy) at
// (tx, ty). Distances under one pixel are treated as one pixel.
func Aim(ox, oy, tx, ty, speed float64) (float64, float64) {
	dx := tx - ox
	dy := ty - oy
	dist := math.Max(1, math.Hypot(dx, dy))
	return dx / dist * speed, dy / dist * speed
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
