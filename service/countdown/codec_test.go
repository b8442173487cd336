package countdown

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

func TestEncodeDecodePromotions(t *testing.T) {
	promotions := []model.Promotion{
		{
			ID:              "8d3c7c1e-5b7f-4a55-9bd6-6a1f6f0f2a11",
			Shop:            "shop01.myshopify.com",
			Title:           "Flash sale",
			Mode:            model.TimerModeEvergreen,
			DurationMinutes: 90,
			StartDate:       "2026-10-01T00:00:00Z",
			EndDate:         "2026-10-31T00:00:00.000Z",
			TargetScope:     model.TargetScopeProduct,
			ProductIDs:      []string{"gid://shopify/Product/1", "gid://shopify/Product/2"},
			Display: model.Display{
				Position: model.DisplayPositionBottom,
				Size:     model.DisplaySizeLarge,
				Color:    "#008000",
			},
			Urgency: model.Urgency{
				Type:           model.UrgencyTypeBanner,
				TriggerMinutes: 15,
				Color:          "#d32f2f",
			},
			Description: "Hurry up!",
			ViewCount:   123,
			CreatedAt:   newTime("2026-09-01T10:00:00Z"),
			UpdatedAt:   newTime("2026-09-02T10:00:00Z"),
		},
		{
			ID:          "second",
			Shop:        "shop01.myshopify.com",
			Mode:        model.TimerModeFixed,
			TargetScope: model.TargetScopeAll,
		},
	}

	data := EncodePromotions(promotions)

	result, err := DecodePromotions(data)
	assert.Equal(t, nil, err)
	assert.Equal(t, promotions, result)
}

func TestDecodePromotions__Empty(t *testing.T) {
	result, err := DecodePromotions(EncodePromotions(nil))
	assert.Equal(t, nil, err)
	assert.Nil(t, result)
}

func TestDecodePromotions__Skip_Unknown_Fields(t *testing.T) {
	data := EncodePromotions([]model.Promotion{{ID: "a"}})
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 10)

	result, err := DecodePromotions(data)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Promotion{{ID: "a"}}, result)
}

func TestDecodePromotions__Truncated(t *testing.T) {
	data := EncodePromotions([]model.Promotion{{ID: "some-id", Description: "text"}})

	_, err := DecodePromotions(data[:len(data)-2])
	assert.Equal(t, ErrMalformedCacheData, errors.Cause(err))
}
