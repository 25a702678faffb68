package impl

import (
	"context"
	"testing"
	"time"

	"headend/internal/domain/entity"
	mockRepo "headend/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// consoleFeedFixtures holds the feed plus the send side of every listener
// channel so tests can push snapshots.
type consoleFeedFixtures struct {
	feed        *consoleFeed
	subscribers chan []*entity.Subscriber
	requests    chan []*entity.DeviceRequest
	categories  chan []*entity.Category
	bouquets    chan []*entity.Bouquet
	channels    chan []*entity.Channel
	packages    chan []*entity.Package
}

func createTestConsoleFeed(t *testing.T, now time.Time) consoleFeedFixtures {
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	requestRepo := mockRepo.NewMockDeviceRequestRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	bouquetRepo := mockRepo.NewMockBouquetRepository(t)
	channelRepo := mockRepo.NewMockChannelRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)

	fixtures := consoleFeedFixtures{
		subscribers: make(chan []*entity.Subscriber, 1),
		requests:    make(chan []*entity.DeviceRequest, 1),
		categories:  make(chan []*entity.Category, 1),
		bouquets:    make(chan []*entity.Bouquet, 1),
		channels:    make(chan []*entity.Channel, 1),
		packages:    make(chan []*entity.Package, 1),
	}

	subscriberRepo.EXPECT().WatchSubscribers(mock.Anything).
		Return((<-chan []*entity.Subscriber)(fixtures.subscribers), nil)
	requestRepo.EXPECT().WatchRequests(mock.Anything).
		Return((<-chan []*entity.DeviceRequest)(fixtures.requests), nil)
	categoryRepo.EXPECT().WatchCategories(mock.Anything).
		Return((<-chan []*entity.Category)(fixtures.categories), nil)
	bouquetRepo.EXPECT().WatchBouquets(mock.Anything).
		Return((<-chan []*entity.Bouquet)(fixtures.bouquets), nil)
	channelRepo.EXPECT().WatchChannels(mock.Anything).
		Return((<-chan []*entity.Channel)(fixtures.channels), nil)
	packageRepo.EXPECT().WatchPackages(mock.Anything).
		Return((<-chan []*entity.Package)(fixtures.packages), nil)

	fixtures.feed = &consoleFeed{
		subscriberRepo: subscriberRepo,
		requestRepo:    requestRepo,
		categoryRepo:   categoryRepo,
		bouquetRepo:    bouquetRepo,
		channelRepo:    channelRepo,
		packageRepo:    packageRepo,
		logger:         newDiscardLogger(),
		now:            func() time.Time { return now },
	}

	return fixtures
}

// closeChannels closes every listener channel, mirroring the real watch
// implementations which close their channels on context cancellation. Without
// this, stop() would wait forever on the listener goroutines.
func (f consoleFeedFixtures) closeChannels() {
	close(f.subscribers)
	close(f.requests)
	close(f.categories)
	close(f.bouquets)
	close(f.channels)
	close(f.packages)
}

func TestConsoleFeed_StateTracksSnapshots(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	fx := createTestConsoleFeed(t, now)

	require.NoError(t, fx.feed.start())
	defer fx.feed.stop()
	defer fx.closeChannels()

	fx.subscribers <- []*entity.Subscriber{{ID: "sub-1", Name: "Asha"}}
	fx.channels <- []*entity.Channel{{ID: "ch-1", Name: "Metro News"}}

	// Listener goroutines apply snapshots asynchronously.
	assert.Eventually(t, func() bool {
		state, err := fx.feed.State(context.Background())
		if err != nil {
			return false
		}

		return len(state.Subscribers) == 1 && len(state.Channels) == 1
	}, time.Second, 5*time.Millisecond)

	state, err := fx.feed.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asha", state.Subscribers[0].Name)
	assert.Equal(t, now, state.UpdatedAt)
}

func TestConsoleFeed_StateReplacedOnNewSnapshot(t *testing.T) {
	fx := createTestConsoleFeed(t, time.Now())

	require.NoError(t, fx.feed.start())
	defer fx.feed.stop()
	defer fx.closeChannels()

	fx.packages <- []*entity.Package{{ID: "pkg-1"}, {ID: "pkg-2"}}
	assert.Eventually(t, func() bool {
		state, _ := fx.feed.State(context.Background())

		return len(state.Packages) == 2
	}, time.Second, 5*time.Millisecond)

	// A later snapshot replaces the whole collection, it never appends.
	fx.packages <- []*entity.Package{{ID: "pkg-2"}}
	assert.Eventually(t, func() bool {
		state, _ := fx.feed.State(context.Background())

		return len(state.Packages) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestConsoleFeed_DashboardDerivesStatusAtCallTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	fx := createTestConsoleFeed(t, now)

	require.NoError(t, fx.feed.start())
	defer fx.feed.stop()
	defer fx.closeChannels()

	fx.subscribers <- []*entity.Subscriber{
		{ID: "sub-1", ExpiryDate: now.AddDate(0, 0, 10)},
		{ID: "sub-2", ExpiryDate: now.AddDate(0, 0, -1)},
		{ID: "sub-3", ExpiryDate: now.AddDate(0, 1, 0)},
	}
	fx.requests <- []*entity.DeviceRequest{{ID: "req-1"}}
	fx.channels <- []*entity.Channel{{ID: "ch-1"}, {ID: "ch-2"}}
	fx.packages <- []*entity.Package{{ID: "pkg-1"}}

	assert.Eventually(t, func() bool {
		stats, err := fx.feed.Dashboard(context.Background())

		return err == nil && stats.TotalSubscribers == 3 && stats.PendingRequests == 1
	}, time.Second, 5*time.Millisecond)

	stats, err := fx.feed.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSubscribers)
	assert.Equal(t, 2, stats.ActiveSubscribers)
	assert.Equal(t, 1, stats.ExpiredSubscribers)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 2, stats.ChannelCount)
	assert.Equal(t, 1, stats.PackageCount)
}

func TestConsoleFeed_EmptyStateBeforeFirstSnapshot(t *testing.T) {
	fx := createTestConsoleFeed(t, time.Now())

	require.NoError(t, fx.feed.start())
	defer fx.feed.stop()
	defer fx.closeChannels()

	state, err := fx.feed.State(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Subscribers)
	assert.Empty(t, state.Requests)

	stats, err := fx.feed.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSubscribers)
}
