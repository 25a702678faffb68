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

// bouquetRepository implements the repository.BouquetRepository interface.
type bouquetRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewBouquetRepository is the constructor for bouquetRepository.
func NewBouquetRepository(client *fs.Client, logger *slog.Logger) repository.BouquetRepository {
	return &bouquetRepository{
		client: client,
		logger: logger,
	}
}

func (repo *bouquetRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionBouquets)
}

// CreateBouquet persists a new bouquet document under its pre-assigned id.
func (repo *bouquetRepository) CreateBouquet(ctx context.Context, bouquet *entity.Bouquet) error {
	if _, err := repo.collection().Doc(bouquet.ID).Create(ctx, model.FromBouquetDomain(bouquet)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create bouquet")
	}

	return nil
}

// ListBouquets retrieves all bouquets.
func (repo *bouquetRepository) ListBouquets(ctx context.Context) ([]*entity.Bouquet, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bouquets")
	}

	bouquets := make([]*entity.Bouquet, 0, len(docs))
	for _, doc := range docs {
		var bouquetM model.BouquetModel
		if err := doc.DataTo(&bouquetM); err != nil {
			repo.logger.Warn("skipping malformed bouquet document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		bouquets = append(bouquets, model.ToBouquetDomain(doc.Ref.ID, &bouquetM))
	}

	return bouquets, nil
}

// DeleteBouquet removes a bouquet document. Deleting a missing id is a no-op.
func (repo *bouquetRepository) DeleteBouquet(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete bouquet")
	}

	return nil
}

// WatchBouquets delivers the full bouquet collection on every store change.
func (repo *bouquetRepository) WatchBouquets(ctx context.Context) (<-chan []*entity.Bouquet, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionBouquets,
		func(doc *fs.DocumentSnapshot, _ time.Time) (*entity.Bouquet, error) {
			var bouquetM model.BouquetModel
			if err := doc.DataTo(&bouquetM); err != nil {
				return nil, errors.Wrap(err, "failed to decode bouquet document")
			}

			return model.ToBouquetDomain(doc.Ref.ID, &bouquetM), nil
		},
		nil,
	)

	return ch, nil
}
