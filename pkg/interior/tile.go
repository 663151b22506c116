// pkg/interior/tile.go
package interior

// TileType identifies what occupies a grid cell
type TileType int

const (
	TileEmpty TileType = iota
	TileFloor
	TileWall
	TileBed
	TileDoorClosed
	TileDoorOpen
)

// String returns the wire name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileBed:
		return "Bed"
	case TileDoorClosed:
		return "DoorClosed"
	case TileDoorOpen:
		return "DoorOpen"
	default:
		return "Unknown"
	}
}

// SupportsAtmosphere reports whether this tile type can hold an
// atmosphere cell. Walls and empty space are always vacuum.
func (t TileType) SupportsAtmosphere() bool {
	switch t {
	case TileFloor, TileBed, TileDoorOpen, TileDoorClosed:
		return true
	default:
		return false
	}
}

// Passable reports whether a pawn can stand on this tile type
func (t TileType) Passable() bool {
	switch t {
	case TileFloor, TileBed, TileDoorOpen:
		return true
	default:
		return false
	}
}

// Tile is one cell of the interior grid
type Tile struct {
	Type TileType
}
