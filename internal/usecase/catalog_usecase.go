package usecase

import (
	"context"

	"headend/internal/domain/entity"
)

// ChannelInfo carries operator input for creating or replacing a channel.
type ChannelInfo struct {
	SID         string                 `json:"sid"`
	Name        string                 `json:"name" validate:"required"`
	Img         string                 `json:"img"`
	Category    string                 `json:"category" validate:"required"`
	Bouquet     string                 `json:"bouquet" validate:"required"`
	Description string                 `json:"description"`
	Sources     []entity.ChannelSource `json:"sources" validate:"required,min=1"`
}

// CatalogUsecase defines content catalog management use cases: categories,
// bouquets and the channels filed under them.
type CatalogUsecase interface {
	// AddCategory creates a named channel grouping.
	AddCategory(ctx context.Context, name string) (*entity.Category, error)

	// ListCategories retrieves all categories with their channel counts.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// DeleteCategory removes a category. Channels filed under it keep
	// their category name and become orphaned until re-filed.
	DeleteCategory(ctx context.Context, id string) error

	// AddBouquet creates a named channel bundle.
	AddBouquet(ctx context.Context, name string) (*entity.Bouquet, error)

	// ListBouquets retrieves all bouquets with their channel counts.
	ListBouquets(ctx context.Context) ([]*entity.Bouquet, error)

	// DeleteBouquet removes a bouquet. Channels and packages referencing
	// it by name are left untouched.
	DeleteBouquet(ctx context.Context, id string) error

	// AddChannel creates a channel. Every dash source must carry complete
	// clear-key material or the call fails validation.
	AddChannel(ctx context.Context, info *ChannelInfo) (*entity.Channel, error)

	// UpdateChannel replaces an existing channel's record under the same
	// id, subject to the same source validation as AddChannel.
	UpdateChannel(ctx context.Context, id string, info *ChannelInfo) (*entity.Channel, error)

	// ListChannels retrieves all channels.
	ListChannels(ctx context.Context) ([]*entity.Channel, error)

	// DeleteChannel removes a channel permanently.
	DeleteChannel(ctx context.Context, id string) error
}
