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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// packageRepository implements the repository.PackageRepository interface.
type packageRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(client *fs.Client, logger *slog.Logger) repository.PackageRepository {
	return &packageRepository{
		client: client,
		logger: logger,
	}
}

func (repo *packageRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionPackages)
}

// CreatePackage persists a new package document under its pre-assigned id.
func (repo *packageRepository) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	if _, err := repo.collection().Doc(pkg.ID).Create(ctx, model.FromPackageDomain(pkg)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create package")
	}

	return nil
}

// FindPackageByID retrieves a package by its document id.
func (repo *packageRepository) FindPackageByID(ctx context.Context, id string) (*entity.Package, error) {
	doc, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	var packageM model.PackageModel
	if err := doc.DataTo(&packageM); err != nil {
		return nil, errors.Wrap(err, "failed to decode package document")
	}

	return model.ToPackageDomain(doc.Ref.ID, &packageM), nil
}

// ListPackages retrieves all packages.
func (repo *packageRepository) ListPackages(ctx context.Context) ([]*entity.Package, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	packages := make([]*entity.Package, 0, len(docs))
	for _, doc := range docs {
		var packageM model.PackageModel
		if err := doc.DataTo(&packageM); err != nil {
			repo.logger.Warn("skipping malformed package document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		packages = append(packages, model.ToPackageDomain(doc.Ref.ID, &packageM))
	}

	return packages, nil
}

// DeletePackage removes a package document. Deleting a missing id is a no-op.
func (repo *packageRepository) DeletePackage(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete package")
	}

	return nil
}

// WatchPackages delivers the full package collection on every store change.
func (repo *packageRepository) WatchPackages(ctx context.Context) (<-chan []*entity.Package, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionPackages,
		func(doc *fs.DocumentSnapshot, _ time.Time) (*entity.Package, error) {
			var packageM model.PackageModel
			if err := doc.DataTo(&packageM); err != nil {
				return nil, errors.Wrap(err, "failed to decode package document")
			}

			return model.ToPackageDomain(doc.Ref.ID, &packageM), nil
		},
		nil,
	)

	return ch, nil
}
