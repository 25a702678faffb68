package impl

import (
	"context"

	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo repository.CategoryRepository
	bouquetRepo  repository.BouquetRepository
	channelRepo  repository.ChannelRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	BouquetRepo  repository.BouquetRepository
	ChannelRepo  repository.ChannelRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		bouquetRepo:  params.BouquetRepo,
		channelRepo:  params.ChannelRepo,
	}
}

// AddCategory creates a named channel grouping
func (s *catalogService) AddCategory(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories retrieves all categories with their channel counts
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	channels, err := s.channelRepo.ListChannels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channels")
	}

	counts := make(map[string]int, len(categories))
	for _, channel := range channels {
		counts[channel.Category]++
	}
	for _, category := range categories {
		category.ChannelCount = counts[category.Name]
	}

	return categories, nil
}

// DeleteCategory removes a category, leaving its channels orphaned
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// AddBouquet creates a named channel bundle
func (s *catalogService) AddBouquet(ctx context.Context, name string) (*entity.Bouquet, error) {
	bouquet := &entity.Bouquet{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.bouquetRepo.CreateBouquet(ctx, bouquet); err != nil {
		return nil, errors.Wrap(err, "failed to create bouquet")
	}

	return bouquet, nil
}

// ListBouquets retrieves all bouquets with their channel counts
func (s *catalogService) ListBouquets(ctx context.Context) ([]*entity.Bouquet, error) {
	bouquets, err := s.bouquetRepo.ListBouquets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bouquets")
	}

	channels, err := s.channelRepo.ListChannels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channels")
	}

	counts := make(map[string]int, len(bouquets))
	for _, channel := range channels {
		counts[channel.Bouquet]++
	}
	for _, bouquet := range bouquets {
		bouquet.ChannelCount = counts[bouquet.Name]
	}

	return bouquets, nil
}

// DeleteBouquet removes a bouquet, leaving referencing channels and packages untouched
func (s *catalogService) DeleteBouquet(ctx context.Context, id string) error {
	if err := s.bouquetRepo.DeleteBouquet(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete bouquet")
	}

	return nil
}

// AddChannel creates a channel after validating its sources
func (s *catalogService) AddChannel(ctx context.Context, info *usecase.ChannelInfo) (*entity.Channel, error) {
	if err := validateSources(info.Sources); err != nil {
		return nil, err
	}

	channel := &entity.Channel{
		ID:          uuid.NewString(),
		SID:         info.SID,
		Name:        info.Name,
		Img:         info.Img,
		Category:    info.Category,
		Bouquet:     info.Bouquet,
		Description: info.Description,
		Sources:     info.Sources,
	}

	if err := s.channelRepo.CreateChannel(ctx, channel); err != nil {
		return nil, errors.Wrap(err, "failed to create channel")
	}

	return channel, nil
}

// UpdateChannel replaces an existing channel's record under the same id
func (s *catalogService) UpdateChannel(ctx context.Context, id string, info *usecase.ChannelInfo) (*entity.Channel, error) {
	if err := validateSources(info.Sources); err != nil {
		return nil, err
	}

	channel := &entity.Channel{
		ID:          id,
		SID:         info.SID,
		Name:        info.Name,
		Img:         info.Img,
		Category:    info.Category,
		Bouquet:     info.Bouquet,
		Description: info.Description,
		Sources:     info.Sources,
	}

	if err := s.channelRepo.UpdateChannel(ctx, channel); err != nil {
		return nil, errors.Wrap(err, "failed to update channel")
	}

	return channel, nil
}

// ListChannels retrieves all channels
func (s *catalogService) ListChannels(ctx context.Context) ([]*entity.Channel, error) {
	channels, err := s.channelRepo.ListChannels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channels")
	}

	return channels, nil
}

// DeleteChannel removes a channel permanently
func (s *catalogService) DeleteChannel(ctx context.Context, id string) error {
	if err := s.channelRepo.DeleteChannel(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete channel")
	}

	return nil
}

// validateSources checks that a channel carries at least one source and that
// every dash source has complete clear-key material.
func validateSources(sources []entity.ChannelSource) error {
	if len(sources) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("channel must have at least one source")
	}

	for _, source := range sources {
		if source.Type != entity.SourceTypeDASH {
			continue
		}
		if source.DRM == nil || source.DRM.KID == "" || source.DRM.Key == "" {
			return domainerrors.ErrMissingClearKey
		}
	}

	return nil
}
