package collision

import (
	"math"
)

// Point represents a 2D coordinate in screen units.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox represents a rectangular area centered on X/Y.
type BoundingBox struct {
	X      float64 // Center X coordinate
	Y      float64 // Center Y coordinate
	Width  float64 // Total width
	Height float64 // Total height
}

// NewBoundingBox creates a new bounding box centered at the given position
func NewBoundingBox(x, y, width, height float64) *BoundingBox {
	return &BoundingBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// FromRect builds a bounding box from a top-left corner and size.
func FromRect(left, top, width, height float64) *BoundingBox {
	return NewBoundingBox(left+width/2, top+height/2, width, height)
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2
	return bb.X - halfWidth, bb.Y - halfHeight, bb.X + halfWidth, bb.Y + halfHeight
}

// Contains checks if a point is inside the bounding box (edges included).
func (bb *BoundingBox) Contains(point Point) bool {
	minX, minY, maxX, maxY := bb.GetBounds()
	return point.X >= minX && point.X <= maxX && point.Y >= minY && point.Y <= maxY
}

// ClampPoint keeps p inside [0,width]x[0,height].
func ClampPoint(p Point, width, height float64) Point {
	p.X = math.Max(0, math.Min(p.X, width))
	p.Y = math.Max(0, math.Min(p.Y, height))
	return p
}
