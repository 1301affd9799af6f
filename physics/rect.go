package physics

// Rect is an axis-aligned box in playfield units, origin at the top-left corner
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// WithCenter returns r moved so its centre is (cx, cy)
func (r Rect) WithCenter(cx, cy float64) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Intersects reports strict overlap; touching edges do not count
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClampVertical returns r shifted so that top >= 0 and bottom <= height
func (r Rect) ClampVertical(height float64) Rect {
	r.Y = Clamp(r.Y, 0, height-r.H)
	return r
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
