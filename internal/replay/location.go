package replay

import "fmt"

// Location is a map coordinate pair. Event payloads that target a point on
// the map share this type; the coordinates themselves are never interpreted
// here.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}
