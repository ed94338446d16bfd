package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/pkg/geo"
)

type ObstacleType string

const (
	ObstacleFlood    ObstacleType = "flood"
	ObstacleAccident ObstacleType = "accident"
	ObstacleProtest  ObstacleType = "protest"
	ObstacleClosure  ObstacleType = "closure"
	ObstacleTraffic  ObstacleType = "traffic"
	ObstaclePolice   ObstacleType = "police"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Obstacle is one reported road hazard. Once duplicates are merged,
// the primary record carries the aggregate state; linked records only
// point back at it.
type Obstacle struct {
	ID          uuid.UUID    `json:"id"`
	Type        ObstacleType `json:"type"`
	Location    geo.Point    `json:"location"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description"`
	ReporterID  uuid.UUID    `json:"reporter_id"`

	Active    bool       `json:"active"`
	IsPrimary bool       `json:"is_primary"`
	LinkedTo  *uuid.UUID `json:"linked_to,omitempty"`

	LinkedObstacles []uuid.UUID `json:"linked_obstacles,omitempty"`
	ConfirmedBy     []uuid.UUID `json:"confirmed_by"`
	Confirmations   int         `json:"confirmations"`
	ResolvedBy      []uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedCount   int         `json:"resolved_count"`

	NotificationSent bool `json:"notification_sent"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// HasConfirmer reports set membership in ConfirmedBy.
func (o *Obstacle) HasConfirmer(userID uuid.UUID) bool {
	for _, id := range o.ConfirmedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// AddConfirmer adds userID to the confirmation set and keeps the cached
// count in sync. Adding an existing member is a no-op; reports whether
// the set grew.
func (o *Obstacle) AddConfirmer(userID uuid.UUID) bool {
	if o.HasConfirmer(userID) {
		return false
	}
	o.ConfirmedBy = append(o.ConfirmedBy, userID)
	o.Confirmations = len(o.ConfirmedBy)
	return true
}

func (o *Obstacle) HasResolver(userID uuid.UUID) bool {
	for _, id := range o.ResolvedBy {
		if id == userID {
			return true
		}
	}
	return false
}

func (o *Obstacle) AddResolver(userID uuid.UUID) bool {
	if o.HasResolver(userID) {
		return false
	}
	o.ResolvedBy = append(o.ResolvedBy, userID)
	o.ResolvedCount = len(o.ResolvedBy)
	return true
}

func (o *Obstacle) HasLinked(id uuid.UUID) bool {
	for _, l := range o.LinkedObstacles {
		if l == id {
			return true
		}
	}
	return false
}

// Expired reports whether the obstacle has an expiry in the past.
func (o *Obstacle) Expired(now time.Time) bool {
	return o.ExpiresAt != nil && !now.Before(*o.ExpiresAt)
}

// ObstacleLabel returns the display label used in notification messages.
func ObstacleLabel(t ObstacleType) string {
	switch t {
	case ObstacleFlood:
		return "Inondation"
	case ObstacleAccident:
		return "Accident"
	case ObstacleProtest:
		return "Manifestation"
	case ObstacleClosure:
		return "Route fermée"
	case ObstacleTraffic:
		return "Embouteillage"
	case ObstaclePolice:
		return "Police routière"
	default:
		return "Obstacle"
	}
}

// DefaultSeverity is applied when the reporter does not pick one.
func DefaultSeverity(t ObstacleType) Severity {
	switch t {
	case ObstacleFlood, ObstacleAccident:
		return SeverityHigh
	case ObstacleProtest:
		return SeverityCritical
	case ObstaclePolice:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

type DeactivationReason string

const (
	DeactivatedExpired  DeactivationReason = "expired"
	DeactivatedResolved DeactivationReason = "resolved"
	DeactivatedByAdmin  DeactivationReason = "admin"
)
