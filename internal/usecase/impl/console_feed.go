package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"headend/internal/domain/entity"
	"headend/internal/domain/repository"
	"headend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// consoleFeed maintains the live console snapshot. One goroutine per
// collection listener applies incoming snapshots under a shared lock.
type consoleFeed struct {
	subscriberRepo repository.SubscriberRepository
	requestRepo    repository.DeviceRequestRepository
	categoryRepo   repository.CategoryRepository
	bouquetRepo    repository.BouquetRepository
	channelRepo    repository.ChannelRepository
	packageRepo    repository.PackageRepository
	logger         *slog.Logger
	now            func() time.Time

	mu     sync.RWMutex
	state  usecase.ConsoleState
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ConsoleFeedParams holds dependencies for ConsoleFeed, injected by Fx.
type ConsoleFeedParams struct {
	fx.In

	Lc             fx.Lifecycle
	SubscriberRepo repository.SubscriberRepository
	RequestRepo    repository.DeviceRequestRepository
	CategoryRepo   repository.CategoryRepository
	BouquetRepo    repository.BouquetRepository
	ChannelRepo    repository.ChannelRepository
	PackageRepo    repository.PackageRepository
	Logger         *slog.Logger
}

// NewConsoleFeed creates the live console feed and registers its lifecycle hooks
func NewConsoleFeed(params ConsoleFeedParams) usecase.ConsoleUsecase {
	feed := &consoleFeed{
		subscriberRepo: params.SubscriberRepo,
		requestRepo:    params.RequestRepo,
		categoryRepo:   params.CategoryRepo,
		bouquetRepo:    params.BouquetRepo,
		channelRepo:    params.ChannelRepo,
		packageRepo:    params.PackageRepo,
		logger:         params.Logger,
		now:            time.Now,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return feed.start()
		},
		OnStop: func(ctx context.Context) error {
			feed.stop()

			return nil
		},
	})

	return feed
}

// start opens one listener per collection and fans each into the shared state
func (f *consoleFeed) start() error {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	subscribers, err := f.subscriberRepo.WatchSubscribers(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch subscribers")
	}
	requests, err := f.requestRepo.WatchRequests(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch requests")
	}
	categories, err := f.categoryRepo.WatchCategories(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch categories")
	}
	bouquets, err := f.bouquetRepo.WatchBouquets(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch bouquets")
	}
	channels, err := f.channelRepo.WatchChannels(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch channels")
	}
	packages, err := f.packageRepo.WatchPackages(ctx)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch packages")
	}

	runFeed(f, subscribers, func(state *usecase.ConsoleState, items []*entity.Subscriber) {
		state.Subscribers = items
	})
	runFeed(f, requests, func(state *usecase.ConsoleState, items []*entity.DeviceRequest) {
		state.Requests = items
	})
	runFeed(f, categories, func(state *usecase.ConsoleState, items []*entity.Category) {
		state.Categories = items
	})
	runFeed(f, bouquets, func(state *usecase.ConsoleState, items []*entity.Bouquet) {
		state.Bouquets = items
	})
	runFeed(f, channels, func(state *usecase.ConsoleState, items []*entity.Channel) {
		state.Channels = items
	})
	runFeed(f, packages, func(state *usecase.ConsoleState, items []*entity.Package) {
		state.Packages = items
	})

	f.logger.Info("Console feed started")

	return nil
}

// stop cancels all listeners and waits for them to drain
func (f *consoleFeed) stop() {
	if f.cancel != nil {
		f.cancel()
	}
	f.wg.Wait()
	f.logger.Info("Console feed stopped")
}

// runFeed consumes one listener channel until it closes
func runFeed[T any](f *consoleFeed, ch <-chan []T, apply func(*usecase.ConsoleState, []T)) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		for items := range ch {
			f.mu.Lock()
			apply(&f.state, items)
			f.state.UpdatedAt = f.now()
			f.mu.Unlock()
		}
	}()
}

// State returns the latest snapshot of all console collections
func (f *consoleFeed) State(_ context.Context) (*usecase.ConsoleState, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	state := f.state

	return &state, nil
}

// Dashboard computes summary statistics from the latest snapshot. Subscriber
// status is re-derived at call time so a snapshot that straddles an expiry
// still counts correctly.
func (f *consoleFeed) Dashboard(_ context.Context) (*usecase.DashboardStats, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	now := f.now()
	stats := &usecase.DashboardStats{
		TotalSubscribers: len(f.state.Subscribers),
		PendingRequests:  len(f.state.Requests),
		ChannelCount:     len(f.state.Channels),
		PackageCount:     len(f.state.Packages),
	}

	for _, subscriber := range f.state.Subscribers {
		if entity.StatusAt(subscriber.ExpiryDate, now) == entity.StatusActive {
			stats.ActiveSubscribers++
		} else {
			stats.ExpiredSubscribers++
		}
	}

	return stats, nil
}
