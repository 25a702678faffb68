package model

import (
	"headend/internal/domain/entity"
)

// CategoryModel is the Firestore document shape for the 'categories' collection.
type CategoryModel struct {
	Name         string `firestore:"name"`
	ChannelCount int    `firestore:"channelCount"`
}

// ToCategoryDomain maps a stored category to the domain entity.
func ToCategoryDomain(id string, categoryM *CategoryModel) *entity.Category {
	return &entity.Category{
		ID:           id,
		Name:         categoryM.Name,
		ChannelCount: categoryM.ChannelCount,
	}
}

// FromCategoryDomain maps the domain entity to its document shape.
func FromCategoryDomain(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Name:         category.Name,
		ChannelCount: category.ChannelCount,
	}
}

// BouquetModel is the Firestore document shape for the 'bouquets' collection.
type BouquetModel struct {
	Name         string `firestore:"name"`
	ChannelCount int    `firestore:"channelCount"`
}

// ToBouquetDomain maps a stored bouquet to the domain entity.
func ToBouquetDomain(id string, bouquetM *BouquetModel) *entity.Bouquet {
	return &entity.Bouquet{
		ID:           id,
		Name:         bouquetM.Name,
		ChannelCount: bouquetM.ChannelCount,
	}
}

// FromBouquetDomain maps the domain entity to its document shape.
func FromBouquetDomain(bouquet *entity.Bouquet) *BouquetModel {
	return &BouquetModel{
		Name:         bouquet.Name,
		ChannelCount: bouquet.ChannelCount,
	}
}

// ChannelSourceModel is one playback origin inside a channel document.
type ChannelSourceModel struct {
	Name string         `firestore:"name"`
	URL  string         `firestore:"url"`
	Type string         `firestore:"type"`
	DRM  *ClearKeyModel `firestore:"drm,omitempty"`
}

// ClearKeyModel carries opaque clear-key DRM material.
type ClearKeyModel struct {
	KID string `firestore:"kid"`
	Key string `firestore:"key"`
}

// ChannelModel is the Firestore document shape for the 'channels' collection.
type ChannelModel struct {
	SID         string               `firestore:"sid"`
	Name        string               `firestore:"name"`
	Img         string               `firestore:"img"`
	Category    string               `firestore:"category"`
	Bouquet     string               `firestore:"bouquet"`
	Description string               `firestore:"description"`
	Sources     []ChannelSourceModel `firestore:"sources"`
}

// ToChannelDomain maps a stored channel to the domain entity.
func ToChannelDomain(id string, channelM *ChannelModel) *entity.Channel {
	sources := make([]entity.ChannelSource, 0, len(channelM.Sources))
	for _, sourceM := range channelM.Sources {
		source := entity.ChannelSource{
			Name: sourceM.Name,
			URL:  sourceM.URL,
			Type: sourceM.Type,
		}
		if sourceM.DRM != nil {
			source.DRM = &entity.ClearKey{KID: sourceM.DRM.KID, Key: sourceM.DRM.Key}
		}
		sources = append(sources, source)
	}

	return &entity.Channel{
		ID:          id,
		SID:         channelM.SID,
		Name:        channelM.Name,
		Img:         channelM.Img,
		Category:    channelM.Category,
		Bouquet:     channelM.Bouquet,
		Description: channelM.Description,
		Sources:     sources,
	}
}

// FromChannelDomain maps the domain entity to its document shape.
func FromChannelDomain(channel *entity.Channel) *ChannelModel {
	sources := make([]ChannelSourceModel, 0, len(channel.Sources))
	for _, source := range channel.Sources {
		sourceM := ChannelSourceModel{
			Name: source.Name,
			URL:  source.URL,
			Type: source.Type,
		}
		if source.DRM != nil {
			sourceM.DRM = &ClearKeyModel{KID: source.DRM.KID, Key: source.DRM.Key}
		}
		sources = append(sources, sourceM)
	}

	return &ChannelModel{
		SID:         channel.SID,
		Name:        channel.Name,
		Img:         channel.Img,
		Category:    channel.Category,
		Bouquet:     channel.Bouquet,
		Description: channel.Description,
		Sources:     sources,
	}
}
