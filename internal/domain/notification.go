package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/pkg/geo"
)

// NotificationIntent is the immutable snapshot written when an obstacle
// crosses the confirmation threshold. The dispatch pipeline works from
// this snapshot only, never from live obstacle state.
type NotificationIntent struct {
	ObstacleID    uuid.UUID    `json:"obstacle_id"`
	Type          ObstacleType `json:"type"`
	Location      geo.Point    `json:"location"`
	Description   string       `json:"description"`
	Confirmations int          `json:"confirmations"`
	CreatedAt     time.Time    `json:"created_at"`
	Sent          bool         `json:"sent"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
}

// PushMessage is what the external sender accepts alongside the batch of
// destination addresses.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// ComposeMessage builds the alert message for an intent. Format follows
// the product copy: type label, reporter description, confirmation count.
func ComposeMessage(intent NotificationIntent) PushMessage {
	label := ObstacleLabel(intent.Type)
	return PushMessage{
		Title: fmt.Sprintf("⚠️ %s signalé", label),
		Body:  fmt.Sprintf("%s - %d confirmations", intent.Description, intent.Confirmations),
		Data: map[string]string{
			"obstacleId": intent.ObstacleID.String(),
			"type":       string(intent.Type),
			"lat":        fmt.Sprintf("%g", intent.Location.Lat),
			"lng":        fmt.Sprintf("%g", intent.Location.Lng),
		},
	}
}

// ErrorClass distinguishes a dead address from a delivery hiccup.
type ErrorClass string

const (
	ErrorClassNone           ErrorClass = ""
	ErrorClassInvalidAddress ErrorClass = "invalid-address"
	ErrorClassTransient      ErrorClass = "transient"
)

// DeliveryResult is the per-address outcome of one sender call.
type DeliveryResult struct {
	Address    string     `json:"address"`
	Success    bool       `json:"success"`
	ErrorClass ErrorClass `json:"error_class,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// DispatchReport aggregates one dispatch attempt.
type DispatchReport struct {
	ObstacleID uuid.UUID        `json:"obstacle_id"`
	Attempted  int              `json:"attempted"`
	Delivered  int              `json:"delivered"`
	Invalid    int              `json:"invalid"`
	Results    []DeliveryResult `json:"results,omitempty"`
}
