package overlay

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inset returns r shrunk by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  max(0, r.Width-2*n),
		Height: max(0, r.Height-2*n),
	}
}

// Centered returns a region covering the given percentages of r, centered in it.
// Percentages are clamped to 0..100.
func (r Rect) Centered(widthPercent, heightPercent int) Rect {
	w := r.Width * clampPercent(widthPercent) / 100
	h := r.Height * clampPercent(heightPercent) / 100
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Empty reports whether r has no drawable cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func clampPercent(p int) int {
	return min(100, max(0, p))
}
