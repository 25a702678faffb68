package model

import (
	"headend/internal/domain/entity"
)

// PackageModel is the Firestore document shape for the 'packages' collection.
type PackageModel struct {
	Name         string   `firestore:"name"`
	Price        float64  `firestore:"price"`
	DurationDays int      `firestore:"durationDays"`
	Bouquets     []string `firestore:"bouquets"`
}

// ToPackageDomain maps a stored package to the domain entity.
func ToPackageDomain(id string, packageM *PackageModel) *entity.Package {
	return &entity.Package{
		ID:           id,
		Name:         packageM.Name,
		Price:        packageM.Price,
		DurationDays: packageM.DurationDays,
		Bouquets:     packageM.Bouquets,
	}
}

// FromPackageDomain maps the domain entity to its document shape.
func FromPackageDomain(pkg *entity.Package) *PackageModel {
	return &PackageModel{
		Name:         pkg.Name,
		Price:        pkg.Price,
		DurationDays: pkg.DurationDays,
		Bouquets:     pkg.Bouquets,
	}
}
