package valueobjects

// Position is a value object for a node's location on the canvas.
// Coordinates are whatever the rendering collaborator reports; the core
// never interprets them beyond storing and echoing them back.
type Position struct {
	x float64
	y float64
}

// NewPosition creates a canvas position
func NewPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the horizontal coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the vertical coordinate
func (p Position) Y() float64 {
	return p.y
}

// Equals checks if two positions are equal
func (p Position) Equals(other Position) bool {
	return p.x == other.x && p.y == other.y
}
