package impl

import (
	"context"
	"testing"

	"headend/internal/domain/entity"
	mockRepo "headend/internal/mocks/repository"
	"headend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPackageService(t *testing.T) (usecase.PackageUsecase, *mockRepo.MockPackageRepository) {
	packageRepo := mockRepo.NewMockPackageRepository(t)
	svc := NewPackageService(PackageServiceParams{PackageRepo: packageRepo})

	return svc, packageRepo
}

func TestPackageService_AddPackage(t *testing.T) {
	svc, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	packageRepo.EXPECT().
		CreatePackage(ctx, mock.AnythingOfType("*entity.Package")).
		Return(nil)

	pkg, err := svc.AddPackage(ctx, &usecase.PackageInfo{
		Name:         "Gold Monthly",
		Price:        299,
		DurationDays: 30,
		Bouquets:     []string{"Basic", "Premium"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pkg.ID)
	assert.Equal(t, "Gold Monthly", pkg.Name)
	assert.Equal(t, 30, pkg.DurationDays)
	assert.Equal(t, []string{"Basic", "Premium"}, pkg.Bouquets)
}

func TestPackageService_ListPackages(t *testing.T) {
	svc, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	expected := []*entity.Package{
		{ID: "pkg-1", Name: "Gold Monthly"},
	}

	packageRepo.EXPECT().
		ListPackages(ctx).
		Return(expected, nil)

	packages, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, packages)
}

func TestPackageService_DeletePackage(t *testing.T) {
	svc, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	packageRepo.EXPECT().
		DeletePackage(ctx, "pkg-1").
		Return(nil)

	err := svc.DeletePackage(ctx, "pkg-1")
	require.NoError(t, err)
}
