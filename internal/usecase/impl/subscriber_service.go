package impl

import (
	"context"
	"log/slog"
	"time"

	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/domain/service"
	"headend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
	packageRepo    repository.PackageRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// SubscriberServiceParams holds dependencies for SubscriberService, injected by Fx.
type SubscriberServiceParams struct {
	fx.In

	SubscriberRepo repository.SubscriberRepository
	PackageRepo    repository.PackageRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewSubscriberService creates a new subscriber service instance
func NewSubscriberService(params SubscriberServiceParams) usecase.SubscriberUsecase {
	return &subscriberService{
		subscriberRepo: params.SubscriberRepo,
		packageRepo:    params.PackageRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// ListSubscribers retrieves all subscriber accounts
func (s *subscriberService) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	subscribers, err := s.subscriberRepo.ListSubscribers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

// Provision creates a subscriber account directly from operator input
func (s *subscriberService) Provision(ctx context.Context, info *usecase.SubscriberInfo) (*entity.Subscriber, error) {
	now := s.now()
	subscriber := &entity.Subscriber{
		ID:         uuid.NewString(),
		Name:       info.Name,
		Mobile:     info.Mobile,
		MACAddress: info.MACAddress,
		ExpiryDate: now.AddDate(0, 0, -1),
		Status:     entity.StatusExpired,
		ActivePlan: entity.NoPlan,
		CreatedAt:  now,
	}

	if err := s.subscriberRepo.CreateSubscriber(ctx, subscriber); err != nil {
		return nil, errors.Wrap(err, "failed to create subscriber")
	}

	return subscriber, nil
}

// Recharge applies a package to a subscriber. The new expiry is the package
// duration counted from now; remaining time never stacks. A vanished package
// is a no-op.
func (s *subscriberService) Recharge(ctx context.Context, subscriberID, packageID string) error {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find package by ID")
	}

	now := s.now()
	expiry := now.AddDate(0, 0, pkg.DurationDays)

	if err := s.subscriberRepo.UpdateEntitlement(ctx, subscriberID, expiry, pkg.Name); err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrSubscriberNotFound
		}

		return errors.Wrap(err, "failed to update entitlement")
	}

	event := &service.ProvisioningEvent{
		Type:         service.EventSubscriberRecharged,
		SubscriberID: subscriberID,
		Plan:         pkg.Name,
		ExpiryDate:   expiry,
		OccurredAt:   now,
	}
	if err := s.publisher.PublishProvisioningEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish recharge event",
			slog.String("subscriber_id", subscriberID),
			slog.Any("error", err),
		)
	}

	return nil
}

// Delete removes a subscriber account permanently
func (s *subscriberService) Delete(ctx context.Context, subscriberID string) error {
	if err := s.subscriberRepo.DeleteSubscriber(ctx, subscriberID); err != nil {
		return errors.Wrap(err, "failed to delete subscriber")
	}

	return nil
}
