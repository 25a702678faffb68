package usecase

import (
	"context"

	"headend/internal/domain/entity"
)

// PackageInfo carries operator input for creating a commercial plan.
type PackageInfo struct {
	Name         string   `json:"name" validate:"required"`
	Price        float64  `json:"price" validate:"gt=0"`
	DurationDays int      `json:"durationDays" validate:"gt=0"`
	Bouquets     []string `json:"bouquets"`
}

// PackageUsecase defines commercial plan management use cases.
type PackageUsecase interface {
	// AddPackage creates a plan offering the named bouquets for a number
	// of days at a price.
	AddPackage(ctx context.Context, info *PackageInfo) (*entity.Package, error)

	// ListPackages retrieves all plans.
	ListPackages(ctx context.Context) ([]*entity.Package, error)

	// DeletePackage removes a plan. Subscribers already recharged with it
	// keep their entitlement and plan name.
	DeletePackage(ctx context.Context, id string) error
}
