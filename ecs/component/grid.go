package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
)

// GridTarget holds the live cursor point and the committed destination.
// Target only changes on a commit or when free movement overrides it.
type GridTarget struct {
	Mouse  cp.Vector
	Target cp.Vector
}

var GridTargetComponent = NewComponent[GridTarget]()

// GridMovement is per-entity movement economy tuning. It is owned by the
// economy and only read here.
type GridMovement struct {
	Cost     common.Fixed
	Speed    common.Fixed
	Distance common.Fixed
}

// TripCost estimates the cost of walking dist world units at Cost per tile.
func (g GridMovement) TripCost(dist float64) common.Fixed {
	tiles := common.FixedFromFloat(dist / common.TileSize)
	return g.Cost.Mul(tiles)
}

var GridMovementComponent = NewComponent[GridMovement]()
