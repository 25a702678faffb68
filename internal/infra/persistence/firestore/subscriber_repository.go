package firestore

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"headend/internal/domain/constants"
	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/errors"
	"headend/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(client *fs.Client, logger *slog.Logger) repository.SubscriberRepository {
	return &subscriberRepository{
		client: client,
		logger: logger,
	}
}

func (repo *subscriberRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

// CreateSubscriber persists a new subscriber document under its pre-assigned id.
func (repo *subscriberRepository) CreateSubscriber(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := model.FromSubscriberDomain(subscriber)

	if _, err := repo.collection().Doc(subscriber.ID).Create(ctx, subscriberM); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create subscriber")
	}

	return nil
}

// FindSubscriberByID retrieves a subscriber by its document id.
func (repo *subscriberRepository) FindSubscriberByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	doc, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by ID")
	}

	var subscriberM model.SubscriberModel
	if err := doc.DataTo(&subscriberM); err != nil {
		return nil, errors.Wrap(err, "failed to decode subscriber document")
	}

	return model.ToSubscriberDomain(doc.Ref.ID, &subscriberM, time.Now()), nil
}

// ListSubscribers retrieves all subscribers, newest accounts first.
func (repo *subscriberRepository) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	now := time.Now()
	subscribers := make([]*entity.Subscriber, 0, len(docs))
	for _, doc := range docs {
		var subscriberM model.SubscriberModel
		if err := doc.DataTo(&subscriberM); err != nil {
			repo.logger.Warn("skipping malformed subscriber document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		subscribers = append(subscribers, model.ToSubscriberDomain(doc.Ref.ID, &subscriberM, now))
	}

	sortSubscribers(subscribers)

	return subscribers, nil
}

// UpdateMACAddress replaces the hardware identifier of a subscriber. No
// other field is touched.
func (repo *subscriberRepository) UpdateMACAddress(ctx context.Context, id, macAddress string) error {
	_, err := repo.collection().Doc(id).Update(ctx, []fs.Update{
		{Path: "macAddress", Value: macAddress},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrSubscriberNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update subscriber MAC address")
	}

	return nil
}

// UpdateEntitlement sets the expiry timestamp and active plan of a
// subscriber. The derived status is never written.
func (repo *subscriberRepository) UpdateEntitlement(ctx context.Context, id string, expiry time.Time, plan string) error {
	_, err := repo.collection().Doc(id).Update(ctx, []fs.Update{
		{Path: "expiryDate", Value: model.FormatTime(expiry)},
		{Path: "activePlan", Value: plan},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrSubscriberNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update subscriber entitlement")
	}

	return nil
}

// DeleteSubscriber removes a subscriber document. Deleting a missing id is a no-op.
func (repo *subscriberRepository) DeleteSubscriber(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete subscriber")
	}

	return nil
}

// WatchSubscribers delivers the full subscriber collection on every store change.
func (repo *subscriberRepository) WatchSubscribers(ctx context.Context) (<-chan []*entity.Subscriber, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionUsers,
		func(doc *fs.DocumentSnapshot, now time.Time) (*entity.Subscriber, error) {
			var subscriberM model.SubscriberModel
			if err := doc.DataTo(&subscriberM); err != nil {
				return nil, errors.Wrap(err, "failed to decode subscriber document")
			}

			return model.ToSubscriberDomain(doc.Ref.ID, &subscriberM, now), nil
		},
		sortSubscribers,
	)

	return ch, nil
}

// sortSubscribers orders newest accounts first, matching the console list view.
func sortSubscribers(subscribers []*entity.Subscriber) {
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].CreatedAt.After(subscribers[j].CreatedAt)
	})
}
