package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
	"github.com/armelyara/TraficDay/pkg/validator"
)

// UserService maintains the targeting fields the engine reads: last-known
// location, push token, broad-topic subscription.
type UserService struct {
	users  UserDirectory
	clock  Clock
	logger *slog.Logger
}

func NewUserService(users UserDirectory, clock Clock, logger *slog.Logger) *UserService {
	return &UserService{users: users, clock: clock, logger: logger}
}

func (s *UserService) UpdateLocation(ctx context.Context, userID uuid.UUID, req domain.UpdateLocationRequest) error {
	const op = "service.UpdateLocation"

	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	p := geo.Point{Lat: req.Lat, Lng: req.Lng}
	if err := s.users.SaveLocation(ctx, userID, p, s.clock.Now()); err != nil {
		return err
	}

	s.logger.Debug("user location updated", slog.String("user_id", userID.String()))
	return nil
}

func (s *UserService) UpdateToken(ctx context.Context, userID uuid.UUID, req domain.UpdateTokenRequest) error {
	const op = "service.UpdateToken"

	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if err := s.users.SaveToken(ctx, userID, req.Token); err != nil {
		return err
	}

	s.logger.Debug("user push token updated", slog.String("user_id", userID.String()))
	return nil
}

func (s *UserService) UpdateSubscription(ctx context.Context, userID uuid.UUID, req domain.UpdateSubscriptionRequest) error {
	if err := s.users.SaveSubscription(ctx, userID, req.SubscribedToAll); err != nil {
		return err
	}

	s.logger.Debug("user subscription updated",
		slog.String("user_id", userID.String()),
		slog.Bool("subscribed_to_all", req.SubscribedToAll),
	)
	return nil
}
