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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(client *fs.Client, logger *slog.Logger) repository.CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (repo *categoryRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionCategories)
}

// CreateCategory persists a new category document under its pre-assigned id.
func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	if _, err := repo.collection().Doc(category.ID).Create(ctx, model.FromCategoryDomain(category)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create category")
	}

	return nil
}

// ListCategories retrieves all categories.
func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(docs))
	for _, doc := range docs {
		var categoryM model.CategoryModel
		if err := doc.DataTo(&categoryM); err != nil {
			repo.logger.Warn("skipping malformed category document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		categories = append(categories, model.ToCategoryDomain(doc.Ref.ID, &categoryM))
	}

	return categories, nil
}

// DeleteCategory removes a category document. Deleting a missing id is a no-op.
func (repo *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete category")
	}

	return nil
}

// WatchCategories delivers the full category collection on every store change.
func (repo *categoryRepository) WatchCategories(ctx context.Context) (<-chan []*entity.Category, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionCategories,
		func(doc *fs.DocumentSnapshot, _ time.Time) (*entity.Category, error) {
			var categoryM model.CategoryModel
			if err := doc.DataTo(&categoryM); err != nil {
				return nil, errors.Wrap(err, "failed to decode category document")
			}

			return model.ToCategoryDomain(doc.Ref.ID, &categoryM), nil
		},
		nil,
	)

	return ch, nil
}
