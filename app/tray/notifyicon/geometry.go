package notifyicon

// Point is a position in virtual-screen coordinates.
type Point struct {
	X, Y int32
}

// Rect is a rectangle in virtual-screen coordinates. The zero value is
// empty and contains nothing.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Contains reports whether p lies within r. The right and bottom edges are
// exclusive, matching the Win32 RECT convention.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}
