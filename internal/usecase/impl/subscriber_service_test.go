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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// subscriberFixtures holds all test dependencies for subscriber tests.
type subscriberFixtures struct {
	service        usecase.SubscriberUsecase
	subscriberRepo *mockRepo.MockSubscriberRepository
	packageRepo    *mockRepo.MockPackageRepository
	publisher      *mockService.MockEventPublisher
}

func createTestSubscriberService(t *testing.T, now time.Time) subscriberFixtures {
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewSubscriberService(SubscriberServiceParams{
		SubscriberRepo: subscriberRepo,
		PackageRepo:    packageRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})
	svc.(*subscriberService).now = func() time.Time { return now }

	return subscriberFixtures{
		service:        svc,
		subscriberRepo: subscriberRepo,
		packageRepo:    packageRepo,
		publisher:      publisher,
	}
}

func TestSubscriberService_Provision(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	fx := createTestSubscriberService(t, now)

	ctx := context.Background()
	fx.subscriberRepo.EXPECT().
		CreateSubscriber(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Return(nil)

	subscriber, err := fx.service.Provision(ctx, &usecase.SubscriberInfo{
		Name:       "Ravi",
		Mobile:     "9111111111",
		MACAddress: "AA:BB:CC:00:11:22",
	})
	require.NoError(t, err)
	require.NotNil(t, subscriber)

	assert.Equal(t, "Ravi", subscriber.Name)
	assert.Equal(t, "AA:BB:CC:00:11:22", subscriber.MACAddress)
	assert.Equal(t, entity.NoPlan, subscriber.ActivePlan)
	assert.Equal(t, entity.StatusExpired, subscriber.Status)
	assert.Equal(t, now.AddDate(0, 0, -1), subscriber.ExpiryDate)
	assert.Equal(t, now, subscriber.CreatedAt)
}

func TestSubscriberService_Recharge_CalendarAdd(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestSubscriberService(t, now)

	ctx := context.Background()
	pkg := &entity.Package{
		ID:           "pkg-1",
		Name:         "Gold Monthly",
		DurationDays: 30,
	}

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, "pkg-1").
		Return(pkg, nil)

	// 30 calendar days from 2024-01-01 lands on 2024-01-31, regardless of
	// any entitlement the subscriber still had.
	wantExpiry := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	fx.subscriberRepo.EXPECT().
		UpdateEntitlement(ctx, "sub-1", wantExpiry, "Gold Monthly").
		Return(nil)

	fx.publisher.EXPECT().
		PublishProvisioningEvent(ctx, mock.AnythingOfType("*service.ProvisioningEvent")).
		Run(func(_ context.Context, event *service.ProvisioningEvent) {
			assert.Equal(t, service.EventSubscriberRecharged, event.Type)
			assert.Equal(t, "Gold Monthly", event.Plan)
			assert.Equal(t, wantExpiry, event.ExpiryDate)
		}).
		Return(nil)

	err := fx.service.Recharge(ctx, "sub-1", "pkg-1")
	require.NoError(t, err)
}

func TestSubscriberService_Recharge_VanishedPackageIsNoop(t *testing.T) {
	fx := createTestSubscriberService(t, time.Now())

	ctx := context.Background()
	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, "gone").
		Return(nil, repository.ErrPackageNotFound)

	err := fx.service.Recharge(ctx, "sub-1", "gone")
	require.NoError(t, err)
}

func TestSubscriberService_Recharge_UnknownSubscriberFails(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestSubscriberService(t, now)

	ctx := context.Background()
	pkg := &entity.Package{ID: "pkg-1", Name: "Gold Monthly", DurationDays: 30}

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, "pkg-1").
		Return(pkg, nil)

	fx.subscriberRepo.EXPECT().
		UpdateEntitlement(ctx, "missing", mock.AnythingOfType("time.Time"), "Gold Monthly").
		Return(repository.ErrSubscriberNotFound)

	err := fx.service.Recharge(ctx, "missing", "pkg-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriberNotFound))
}

func TestSubscriberService_ListSubscribers(t *testing.T) {
	fx := createTestSubscriberService(t, time.Now())

	ctx := context.Background()
	expected := []*entity.Subscriber{
		{ID: "sub-1", Name: "Asha"},
		{ID: "sub-2", Name: "Ravi"},
	}

	fx.subscriberRepo.EXPECT().
		ListSubscribers(ctx).
		Return(expected, nil)

	subscribers, err := fx.service.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, subscribers)
}

func TestSubscriberService_Delete(t *testing.T) {
	fx := createTestSubscriberService(t, time.Now())

	ctx := context.Background()
	fx.subscriberRepo.EXPECT().
		DeleteSubscriber(ctx, "sub-1").
		Return(nil)

	err := fx.service.Delete(ctx, "sub-1")
	require.NoError(t, err)
}
