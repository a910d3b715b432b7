package calc

import "math"

// RectangleArea returns length*height for whole-number sides.
func RectangleArea(length, height int) int {
	return length * height
}

// RectangleAreaF returns the single precision area of a rectangle.
func RectangleAreaF(length, width float32) float32 {
	return length * width
}

// CircleArea computes pi*r*r in double precision and narrows the result
// to single precision.
func CircleArea(radius float32) float32 {
	r := float64(radius)
	return float32(math.Pi * r * r)
}

// RectanglePerimeter returns 2*(length+width).
func RectanglePerimeter(length, width float64) float64 {
	return 2 * (length + width)
}
