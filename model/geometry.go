package model

import "math"

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (PDF coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from an origin and dimensions
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from two opposite corners,
// typically the (x0,y0)-(x1,y1) pairs reported by text extractors
func NewBBoxFromCorners(x0, y0, x1, y1 float64) BBox {
	x := math.Min(x0, x1)
	y := math.Min(y0, y1)
	return BBox{X: x, Y: y, Width: math.Abs(x1 - x0), Height: math.Abs(y1 - y0)}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// CenterY returns the vertical center of the box
func (b BBox) CenterY() float64 {
	return b.Y + b.Height/2
}

// IsZero reports whether the box carries no geometry at all
func (b BBox) IsZero() bool {
	return b.X == 0 && b.Y == 0 && b.Width == 0 && b.Height == 0
}
