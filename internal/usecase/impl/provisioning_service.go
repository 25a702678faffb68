// Package impl provides the concrete implementations of the use case interfaces.
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

type provisioningService struct {
	requestRepo    repository.DeviceRequestRepository
	subscriberRepo repository.SubscriberRepository
	qrcodeService  service.QRCodeService
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// ProvisioningServiceParams holds dependencies for ProvisioningService, injected by Fx.
type ProvisioningServiceParams struct {
	fx.In

	RequestRepo    repository.DeviceRequestRepository
	SubscriberRepo repository.SubscriberRepository
	QRCodeService  service.QRCodeService
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewProvisioningService creates a new provisioning service instance
func NewProvisioningService(params ProvisioningServiceParams) usecase.ProvisioningUsecase {
	return &provisioningService{
		requestRepo:    params.RequestRepo,
		subscriberRepo: params.SubscriberRepo,
		qrcodeService:  params.QRCodeService,
		publisher:      params.Publisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// ListRequests retrieves all pending device requests
func (s *provisioningService) ListRequests(ctx context.Context) ([]*entity.DeviceRequest, error) {
	requests, err := s.requestRepo.ListRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device requests")
	}

	return requests, nil
}

// Approve creates a subscriber account from a pending request and consumes
// the request. A vanished request is a no-op.
func (s *provisioningService) Approve(ctx context.Context, requestID string, info *usecase.ApprovalInfo) (*entity.Subscriber, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			// Another operator already resolved it.
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	now := s.now()
	subscriber := &entity.Subscriber{
		ID:         uuid.NewString(),
		Name:       info.Name,
		Mobile:     info.Mobile,
		MACAddress: request.MACAddress,
		// The account starts already lapsed so the first recharge, not the
		// approval, defines the entitlement window.
		ExpiryDate: now.AddDate(0, 0, -1),
		Status:     entity.StatusExpired,
		ActivePlan: entity.NoPlan,
		CreatedAt:  now,
	}

	if err := s.subscriberRepo.CreateSubscriber(ctx, subscriber); err != nil {
		return nil, errors.Wrap(err, "failed to create subscriber")
	}

	if err := s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return nil, errors.Wrap(err, "failed to delete request")
	}

	s.publishEvent(ctx, &service.ProvisioningEvent{
		RequestID:    requestID,
		Type:         service.EventDeviceApproved,
		SubscriberID: subscriber.ID,
		MACAddress:   subscriber.MACAddress,
		OccurredAt:   now,
	})

	return subscriber, nil
}

// Swap moves a pending request's hardware identifier onto an existing
// subscriber and consumes the request. A vanished request is a no-op.
func (s *provisioningService) Swap(ctx context.Context, requestID, subscriberID string) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find request by ID")
	}

	if _, err := s.subscriberRepo.FindSubscriberByID(ctx, subscriberID); err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrSubscriberNotFound
		}

		return errors.Wrap(err, "failed to find subscriber by ID")
	}

	if err := s.subscriberRepo.UpdateMACAddress(ctx, subscriberID, request.MACAddress); err != nil {
		// The subscriber can still vanish between the check and the write.
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrSubscriberNotFound
		}

		return errors.Wrap(err, "failed to update MAC address")
	}

	if err := s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return errors.Wrap(err, "failed to delete request")
	}

	s.publishEvent(ctx, &service.ProvisioningEvent{
		RequestID:    requestID,
		Type:         service.EventDeviceSwapped,
		SubscriberID: subscriberID,
		MACAddress:   request.MACAddress,
		OccurredAt:   s.now(),
	})

	return nil
}

// Dismiss discards a pending request
func (s *provisioningService) Dismiss(ctx context.Context, requestID string) error {
	if err := s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return errors.Wrap(err, "failed to delete request")
	}

	return nil
}

// PairingQR renders a QR image carrying the request's identity
func (s *provisioningService) PairingQR(ctx context.Context, requestID string) ([]byte, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	qrCode, err := s.qrcodeService.GeneratePairingQR(request.ID, request.MACAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pairing QR")
	}

	return qrCode, nil
}

// publishEvent publishes a provisioning event on a best-effort basis. The
// workflow has already committed; a publish failure is logged, not returned.
func (s *provisioningService) publishEvent(ctx context.Context, event *service.ProvisioningEvent) {
	if err := s.publisher.PublishProvisioningEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish provisioning event",
			slog.String("type", event.Type),
			slog.String("subscriber_id", event.SubscriberID),
			slog.Any("error", err),
		)
	}
}
