package firestore

import (
	"context"
	"log/slog"
	"time"

	"headend/internal/domain/constants"
	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/errors"
	"headend/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// channelRepository implements the repository.ChannelRepository interface.
type channelRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewChannelRepository is the constructor for channelRepository.
func NewChannelRepository(client *fs.Client, logger *slog.Logger) repository.ChannelRepository {
	return &channelRepository{
		client: client,
		logger: logger,
	}
}

func (repo *channelRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionChannels)
}

// CreateChannel persists a new channel document under its pre-assigned id.
func (repo *channelRepository) CreateChannel(ctx context.Context, channel *entity.Channel) error {
	if _, err := repo.collection().Doc(channel.ID).Create(ctx, model.FromChannelDomain(channel)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create channel")
	}

	return nil
}

// UpdateChannel overwrites the stored document with the given record.
func (repo *channelRepository) UpdateChannel(ctx context.Context, channel *entity.Channel) error {
	if _, err := repo.collection().Doc(channel.ID).Set(ctx, model.FromChannelDomain(channel)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update channel")
	}

	return nil
}

// ListChannels retrieves all channels.
func (repo *channelRepository) ListChannels(ctx context.Context) ([]*entity.Channel, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channels")
	}

	channels := make([]*entity.Channel, 0, len(docs))
	for _, doc := range docs {
		var channelM model.ChannelModel
		if err := doc.DataTo(&channelM); err != nil {
			repo.logger.Warn("skipping malformed channel document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		channels = append(channels, model.ToChannelDomain(doc.Ref.ID, &channelM))
	}

	return channels, nil
}

// DeleteChannel removes a channel document. Deleting a missing id is a no-op.
func (repo *channelRepository) DeleteChannel(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete channel")
	}

	return nil
}

// WatchChannels delivers the full channel collection on every store change.
func (repo *channelRepository) WatchChannels(ctx context.Context) (<-chan []*entity.Channel, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionChannels,
		func(doc *fs.DocumentSnapshot, _ time.Time) (*entity.Channel, error) {
			var channelM model.ChannelModel
			if err := doc.DataTo(&channelM); err != nil {
				return nil, errors.Wrap(err, "failed to decode channel document")
			}

			return model.ToChannelDomain(doc.Ref.ID, &channelM), nil
		},
		nil,
	)

	return ch, nil
}
