package domain

import "github.com/google/uuid"

type ReportObstacleRequest struct {
	Type        ObstacleType `json:"type" validate:"required,obstacle_type"`
	Lat         float64      `json:"lat" validate:"lat"`
	Lng         float64      `json:"lng" validate:"lng"`
	Severity    Severity     `json:"severity" validate:"omitempty,severity"`
	Description string       `json:"description" validate:"max=500"`
	ReporterID  string       `json:"reporter_id" validate:"required,uuid"`
	TTLMinutes  int          `json:"ttl_minutes" validate:"omitempty,min=1,max=1440"`
}

type ConfirmObstacleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type ResolveObstacleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// Outcome is the user-visible result of report/confirm/resolve.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeAlreadyConfirmed Outcome = "already_confirmed"
	OutcomeAlreadyResolved  Outcome = "already_resolved"
)

type LocationCheckRequest struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Lat    float64 `json:"lat" validate:"lat"`
	Lng    float64 `json:"lng" validate:"lng"`
}

type LocationCheckResponse struct {
	Obstacles []NearbyObstacle `json:"obstacles"`
}

type NearbyObstacle struct {
	ID         uuid.UUID    `json:"id"`
	Type       ObstacleType `json:"type"`
	Severity   Severity     `json:"severity"`
	DistanceKm float64      `json:"distance_km"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type UpdateTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

type UpdateSubscriptionRequest struct {
	SubscribedToAll bool `json:"subscribed_to_all"`
}

type BroadcastRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=1000"`
}

type ListObstaclesRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}
