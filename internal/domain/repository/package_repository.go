// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"headend/internal/domain/entity"
	"headend/internal/errors"
)

// ErrPackageNotFound is returned when a package is not found.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines store operations for commercial plans.
type PackageRepository interface {
	CreatePackage(ctx context.Context, pkg *entity.Package) error

	// FindPackageByID retrieves a package by its document id.
	FindPackageByID(ctx context.Context, id string) (*entity.Package, error)

	ListPackages(ctx context.Context) ([]*entity.Package, error)

	// DeletePackage removes a package document. Deleting a missing id is a no-op.
	DeletePackage(ctx context.Context, id string) error

	WatchPackages(ctx context.Context) (<-chan []*entity.Package, error)
}
