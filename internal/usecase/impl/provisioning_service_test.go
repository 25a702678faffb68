package impl

import (
	"context"
	"testing"
	"time"

	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/domain/service"
	mockRepo "headend/internal/mocks/repository"
	mockService "headend/internal/mocks/service"
	"headend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// provisioningFixtures holds all test dependencies for provisioning tests.
type provisioningFixtures struct {
	service        usecase.ProvisioningUsecase
	requestRepo    *mockRepo.MockDeviceRequestRepository
	subscriberRepo *mockRepo.MockSubscriberRepository
	qrcodeService  *mockService.MockQRCodeService
	publisher      *mockService.MockEventPublisher
}

func createTestProvisioningService(t *testing.T, now time.Time) provisioningFixtures {
	requestRepo := mockRepo.NewMockDeviceRequestRepository(t)
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewProvisioningService(ProvisioningServiceParams{
		RequestRepo:    requestRepo,
		SubscriberRepo: subscriberRepo,
		QRCodeService:  qrcodeService,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})
	svc.(*provisioningService).now = func() time.Time { return now }

	return provisioningFixtures{
		service:        svc,
		requestRepo:    requestRepo,
		subscriberRepo: subscriberRepo,
		qrcodeService:  qrcodeService,
		publisher:      publisher,
	}
}

func TestProvisioningService_Approve_CreatesExpiredAccount(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	fx := createTestProvisioningService(t, now)

	ctx := context.Background()
	request := &entity.DeviceRequest{
		ID:          "req-1",
		MACAddress:  "AA:BB:CC:DD:EE:FF",
		RequestTime: now.Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-1").
		Return(request, nil)

	var created *entity.Subscriber
	fx.subscriberRepo.EXPECT().
		CreateSubscriber(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Run(func(_ context.Context, subscriber *entity.Subscriber) {
			created = subscriber
		}).
		Return(nil)

	fx.requestRepo.EXPECT().
		DeleteRequest(ctx, "req-1").
		Return(nil)

	fx.publisher.EXPECT().
		PublishProvisioningEvent(ctx, mock.AnythingOfType("*service.ProvisioningEvent")).
		Return(nil)

	subscriber, err := fx.service.Approve(ctx, "req-1", &usecase.ApprovalInfo{
		Name:   "Asha",
		Mobile: "9000000000",
	})
	require.NoError(t, err)
	require.NotNil(t, subscriber)
	assert.Same(t, created, subscriber)

	assert.Equal(t, "Asha", subscriber.Name)
	assert.Equal(t, "9000000000", subscriber.Mobile)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", subscriber.MACAddress)
	assert.Equal(t, entity.NoPlan, subscriber.ActivePlan)
	assert.Equal(t, entity.StatusExpired, subscriber.Status)
	// The entitlement must already be lapsed at creation time.
	assert.True(t, subscriber.ExpiryDate.Before(now))
	assert.Equal(t, now.AddDate(0, 0, -1), subscriber.ExpiryDate)
	assert.NoError(t, uuid.Validate(subscriber.ID))
}

func TestProvisioningService_Approve_VanishedRequestIsNoop(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "gone").
		Return(nil, repository.ErrRequestNotFound)

	subscriber, err := fx.service.Approve(ctx, "gone", &usecase.ApprovalInfo{
		Name:   "Asha",
		Mobile: "9000000000",
	})
	require.NoError(t, err)
	assert.Nil(t, subscriber)
}

func TestProvisioningService_Approve_CreateFailureKeepsRequest(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-1", MACAddress: "AA:BB:CC:DD:EE:FF"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-1").
		Return(request, nil)

	fx.subscriberRepo.EXPECT().
		CreateSubscriber(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Return(errors.New("store unavailable"))

	subscriber, err := fx.service.Approve(ctx, "req-1", &usecase.ApprovalInfo{
		Name:   "Asha",
		Mobile: "9000000000",
	})
	require.Error(t, err)
	assert.Nil(t, subscriber)
	// DeleteRequest must not have been called; mock expectations verify it.
}

func TestProvisioningService_Approve_PublishFailureIsTolerated(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-1", MACAddress: "AA:BB:CC:DD:EE:FF"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-1").
		Return(request, nil)

	fx.subscriberRepo.EXPECT().
		CreateSubscriber(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Return(nil)

	fx.requestRepo.EXPECT().
		DeleteRequest(ctx, "req-1").
		Return(nil)

	fx.publisher.EXPECT().
		PublishProvisioningEvent(ctx, mock.AnythingOfType("*service.ProvisioningEvent")).
		Return(errors.New("broker down"))

	subscriber, err := fx.service.Approve(ctx, "req-1", &usecase.ApprovalInfo{
		Name:   "Asha",
		Mobile: "9000000000",
	})
	require.NoError(t, err)
	assert.NotNil(t, subscriber)
}

func TestProvisioningService_Swap_UpdatesOnlyMAC(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	fx := createTestProvisioningService(t, now)

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-2", MACAddress: "11:22:33:44:55:66"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-2").
		Return(request, nil)

	fx.subscriberRepo.EXPECT().
		FindSubscriberByID(ctx, "sub-1").
		Return(&entity.Subscriber{ID: "sub-1", MACAddress: "AA:BB:CC:DD:EE:FF"}, nil)

	fx.subscriberRepo.EXPECT().
		UpdateMACAddress(ctx, "sub-1", "11:22:33:44:55:66").
		Return(nil)

	fx.requestRepo.EXPECT().
		DeleteRequest(ctx, "req-2").
		Return(nil)

	fx.publisher.EXPECT().
		PublishProvisioningEvent(ctx, mock.AnythingOfType("*service.ProvisioningEvent")).
		Run(func(_ context.Context, event *service.ProvisioningEvent) {
			assert.Equal(t, service.EventDeviceSwapped, event.Type)
			assert.Equal(t, "sub-1", event.SubscriberID)
			assert.Equal(t, "11:22:33:44:55:66", event.MACAddress)
		}).
		Return(nil)

	err := fx.service.Swap(ctx, "req-2", "sub-1")
	require.NoError(t, err)
}

func TestProvisioningService_Swap_VanishedRequestIsNoop(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "gone").
		Return(nil, repository.ErrRequestNotFound)

	err := fx.service.Swap(ctx, "gone", "sub-1")
	require.NoError(t, err)
}

func TestProvisioningService_Swap_UnknownSubscriberFails(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-2", MACAddress: "11:22:33:44:55:66"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-2").
		Return(request, nil)

	fx.subscriberRepo.EXPECT().
		FindSubscriberByID(ctx, "missing").
		Return(nil, repository.ErrSubscriberNotFound)

	err := fx.service.Swap(ctx, "req-2", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriberNotFound))
	fx.subscriberRepo.AssertNotCalled(t, "UpdateMACAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestProvisioningService_Swap_SubscriberVanishesBeforeWrite(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-2", MACAddress: "11:22:33:44:55:66"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-2").
		Return(request, nil)

	fx.subscriberRepo.EXPECT().
		FindSubscriberByID(ctx, "sub-1").
		Return(&entity.Subscriber{ID: "sub-1"}, nil)

	fx.subscriberRepo.EXPECT().
		UpdateMACAddress(ctx, "sub-1", "11:22:33:44:55:66").
		Return(repository.ErrSubscriberNotFound)

	err := fx.service.Swap(ctx, "req-2", "sub-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriberNotFound))
}

func TestProvisioningService_Dismiss(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	fx.requestRepo.EXPECT().
		DeleteRequest(ctx, "req-3").
		Return(nil)

	err := fx.service.Dismiss(ctx, "req-3")
	require.NoError(t, err)
}

func TestProvisioningService_ListRequests(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	expected := []*entity.DeviceRequest{
		{ID: "req-1", MACAddress: "AA:BB:CC:DD:EE:FF"},
		{ID: "req-2", MACAddress: "11:22:33:44:55:66"},
	}

	fx.requestRepo.EXPECT().
		ListRequests(ctx).
		Return(expected, nil)

	requests, err := fx.service.ListRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestProvisioningService_PairingQR(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	request := &entity.DeviceRequest{ID: "req-1", MACAddress: "AA:BB:CC:DD:EE:FF"}

	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "req-1").
		Return(request, nil)

	fx.qrcodeService.EXPECT().
		GeneratePairingQR("req-1", "AA:BB:CC:DD:EE:FF").
		Return([]byte("png-bytes"), nil)

	qr, err := fx.service.PairingQR(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestProvisioningService_PairingQR_MissingRequest(t *testing.T) {
	fx := createTestProvisioningService(t, time.Now())

	ctx := context.Background()
	fx.requestRepo.EXPECT().
		FindRequestByID(ctx, "gone").
		Return(nil, repository.ErrRequestNotFound)

	qr, err := fx.service.PairingQR(ctx, "gone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
	assert.Nil(t, qr)
}
