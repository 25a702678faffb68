package model

import (
	"testing"

	"headend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelModel_RoundTripPreservesSourcesAndDRM(t *testing.T) {
	stored := &ChannelModel{
		SID:         "101",
		Name:        "News 24",
		Img:         "https://cdn.example.com/news24.png",
		Category:    "News",
		Bouquet:     "Basic",
		Description: "Round the clock news",
		Sources: []ChannelSourceModel{
			{Name: "edge-1", URL: "https://edge1.example.com/news24.m3u8", Type: entity.SourceTypeHLS},
			{
				Name: "edge-2",
				URL:  "https://edge2.example.com/news24.mpd",
				Type: entity.SourceTypeDASH,
				DRM:  &ClearKeyModel{KID: "10616d7c4bee41f1", Key: "dc85f2112f63477f"},
			},
		},
	}

	channel := ToChannelDomain("chan-1", stored)
	require.Equal(t, "chan-1", channel.ID)
	require.Len(t, channel.Sources, 2)
	require.NotNil(t, channel.Sources[1].DRM)
	assert.Nil(t, channel.Sources[0].DRM)

	back := FromChannelDomain(channel)
	assert.Equal(t, stored, back)
}

func TestPackageModel_RoundTrip(t *testing.T) {
	stored := &PackageModel{
		Name:         "Gold Monthly",
		Price:        299,
		DurationDays: 30,
		Bouquets:     []string{"Basic", "Sports"},
	}

	pkg := ToPackageDomain("pkg-1", stored)
	assert.Equal(t, "pkg-1", pkg.ID)
	assert.Equal(t, stored, FromPackageDomain(pkg))
}

func TestCategoryAndBouquetModel_IdentityProjection(t *testing.T) {
	category := ToCategoryDomain("cat-1", &CategoryModel{Name: "News", ChannelCount: 12})
	assert.Equal(t, &entity.Category{ID: "cat-1", Name: "News", ChannelCount: 12}, category)
	assert.Equal(t, &CategoryModel{Name: "News", ChannelCount: 12}, FromCategoryDomain(category))

	bouquet := ToBouquetDomain("bq-1", &BouquetModel{Name: "Basic", ChannelCount: 40})
	assert.Equal(t, &entity.Bouquet{ID: "bq-1", Name: "Basic", ChannelCount: 40}, bouquet)
	assert.Equal(t, &BouquetModel{Name: "Basic", ChannelCount: 40}, FromBouquetDomain(bouquet))
}
