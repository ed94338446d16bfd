package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/pkg/geo"
)

// User holds the fields relevant to notification targeting. Profile
// management beyond these lives outside the engine.
type User struct {
	ID              uuid.UUID  `json:"id"`
	Location        *geo.Point `json:"location,omitempty"`
	PushToken       string     `json:"push_token,omitempty"`
	SubscribedToAll bool       `json:"subscribed_to_all"`
	LocationAt      *time.Time `json:"location_at,omitempty"`
}

// Reachable reports whether the user can receive a push at all.
func (u *User) Reachable() bool {
	return u.PushToken != ""
}
