package impl

import (
	"context"

	"headend/internal/domain/entity"
	"headend/internal/domain/repository"
	"headend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type packageService struct {
	packageRepo repository.PackageRepository
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
}

// NewPackageService creates a new package service instance
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		packageRepo: params.PackageRepo,
	}
}

// AddPackage creates a commercial plan
func (s *packageService) AddPackage(ctx context.Context, info *usecase.PackageInfo) (*entity.Package, error) {
	pkg := &entity.Package{
		ID:           uuid.NewString(),
		Name:         info.Name,
		Price:        info.Price,
		DurationDays: info.DurationDays,
		Bouquets:     info.Bouquets,
	}

	if err := s.packageRepo.CreatePackage(ctx, pkg); err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	return pkg, nil
}

// ListPackages retrieves all plans
func (s *packageService) ListPackages(ctx context.Context) ([]*entity.Package, error) {
	packages, err := s.packageRepo.ListPackages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return packages, nil
}

// DeletePackage removes a plan without touching recharged subscribers
func (s *packageService) DeletePackage(ctx context.Context, id string) error {
	if err := s.packageRepo.DeletePackage(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete package")
	}

	return nil
}
