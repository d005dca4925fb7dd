package common

const (
	// TileSize is the edge of one grid cell in world pixels.
	TileSize = 64.0

	BaseWidth  = 1280
	BaseHeight = 720
)
