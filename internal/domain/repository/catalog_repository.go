// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"headend/internal/domain/entity"
)

// CategoryRepository defines store operations for channel categories.
// Categories are created and deleted by operators, never mutated otherwise.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	// DeleteCategory removes a category document. Deleting a missing id is a no-op.
	DeleteCategory(ctx context.Context, id string) error
	WatchCategories(ctx context.Context) (<-chan []*entity.Category, error)
}

// BouquetRepository defines store operations for channel bouquets.
type BouquetRepository interface {
	CreateBouquet(ctx context.Context, bouquet *entity.Bouquet) error
	ListBouquets(ctx context.Context) ([]*entity.Bouquet, error)
	// DeleteBouquet removes a bouquet document. Deleting a missing id is a no-op.
	DeleteBouquet(ctx context.Context, id string) error
	WatchBouquets(ctx context.Context) (<-chan []*entity.Bouquet, error)
}

// ChannelRepository defines store operations for broadcast channels.
type ChannelRepository interface {
	CreateChannel(ctx context.Context, channel *entity.Channel) error
	// UpdateChannel overwrites the stored document with the given record.
	UpdateChannel(ctx context.Context, channel *entity.Channel) error
	ListChannels(ctx context.Context) ([]*entity.Channel, error)
	// DeleteChannel removes a channel document. Deleting a missing id is a no-op.
	DeleteChannel(ctx context.Context, id string) error
	WatchChannels(ctx context.Context) (<-chan []*entity.Channel, error)
}
