package domain

import (
	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/pkg/geo"
)

// CachedObstacle is the slim projection kept in the active-obstacle
// cache for the public nearby query.
type CachedObstacle struct {
	ID       uuid.UUID    `json:"id"`
	Type     ObstacleType `json:"type"`
	Severity Severity     `json:"severity"`
	Location geo.Point    `json:"location"`
}
