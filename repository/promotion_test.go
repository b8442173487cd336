//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/integration"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type promotionTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Promotion
}

func newPromotionTest() *promotionTest {
	tc := integration.NewTestCase()
	tc.Truncate("promotion")
	return &promotionTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewPromotion(),
	}
}

func newPromotion01() model.Promotion {
	return model.Promotion{
		ID:    "6a1f5d3e-0000-4000-8000-000000000001",
		Shop:  "shop01.myshopify.com",
		Title: "Flash Sale",

		Mode:      model.TimerModeFixed,
		StartDate: "2022-05-07T10:00:00Z",
		EndDate:   "2022-05-14T10:00:00Z",

		TargetScope: model.TargetScopeProduct,
		ProductIDs: []string{
			"gid://shopify/Product/11",
			"gid://shopify/Product/12",
		},

		Display: model.Display{
			Position: model.DisplayPositionTop,
			Size:     model.DisplaySizeMedium,
			Color:    "#008000",
		},
		Urgency: model.Urgency{
			Type:           model.UrgencyTypePulse,
			TriggerMinutes: 15,
			Color:          "#d32f2f",
		},
		Description: "Limited Time Offer!",

		CreatedAt: newTime("2022-05-01T10:00:00Z"),
		UpdatedAt: newTime("2022-05-01T10:00:00Z"),
	}
}

func TestPromotion(t *testing.T) {
	tc := newPromotionTest()

	//---------------------------------------
	// Find Empty
	//---------------------------------------
	readCtx := tc.provider.Readonly(newContext())
	promotions, err := tc.repo.FindPromotionsByShop(readCtx, "shop01.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Nil(t, promotions)

	//---------------------------------------
	// Insert
	//---------------------------------------
	promotion01 := newPromotion01()
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return tc.repo.InsertPromotion(ctx, promotion01)
	})
	assert.Equal(t, nil, err)

	promotions, err = tc.repo.FindPromotionsByShop(readCtx, "shop01.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Promotion{promotion01}, promotions)

	// Other shops never see it
	promotions, err = tc.repo.FindPromotionsByShop(readCtx, "shop02.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Nil(t, promotions)

	//---------------------------------------
	// Update
	//---------------------------------------
	promotion01.Title = "Flash Sale 2"
	promotion01.Mode = model.TimerModeEvergreen
	promotion01.DurationMinutes = 30
	promotion01.TargetScope = model.TargetScopeCollection
	promotion01.ProductIDs = nil
	promotion01.CollectionIDs = []string{"gid://shopify/Collection/7"}
	promotion01.UpdatedAt = newTime("2022-05-02T10:00:00Z")

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return tc.repo.UpdatePromotion(ctx, promotion01)
	})
	assert.Equal(t, nil, err)

	nullPromotion, err := tc.repo.GetPromotion(readCtx, "shop01.myshopify.com", promotion01.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullPromotion{Valid: true, Promotion: promotion01}, nullPromotion)

	//---------------------------------------
	// Increment View Count
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return tc.repo.IncrementViewCount(ctx, "shop01.myshopify.com", promotion01.ID, 3)
	})
	assert.Equal(t, nil, err)

	nullPromotion, err = tc.repo.GetPromotion(readCtx, "shop01.myshopify.com", promotion01.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), nullPromotion.Promotion.ViewCount)
	assert.Equal(t, promotion01.UpdatedAt, nullPromotion.Promotion.UpdatedAt)

	//---------------------------------------
	// Delete
	//---------------------------------------
	var deleted bool
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		deleted, err = tc.repo.DeletePromotion(ctx, "shop02.myshopify.com", promotion01.ID)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, deleted)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		deleted, err = tc.repo.DeletePromotion(ctx, "shop01.myshopify.com", promotion01.ID)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, deleted)

	nullPromotion, err = tc.repo.GetPromotion(readCtx, "shop01.myshopify.com", promotion01.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullPromotion{}, nullPromotion)
}

func TestStore(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("store")

	provider := NewProvider(tc.DB)
	repo := NewStore()
	readCtx := provider.Readonly(newContext())

	nullStore, err := repo.GetStore(readCtx, "shop01.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, nullStore.Valid)

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertStore(ctx, model.Store{
			Shop:        "shop01.myshopify.com",
			AccessToken: "token01",
		})
	})
	assert.Equal(t, nil, err)

	nullStore, err = repo.GetStore(readCtx, "shop01.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullStore.Store.IsActive)
	assert.Equal(t, "token01", nullStore.Store.AccessToken)

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.DeactivateStore(ctx, "shop01.myshopify.com")
	})
	assert.Equal(t, nil, err)

	nullStore, err = repo.GetStore(readCtx, "shop01.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, nullStore.Store.IsActive)
}

func TestStore__Deactivate_Unknown_Shop(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("store")

	provider := NewProvider(tc.DB)
	repo := NewStore()

	err := repo.DeactivateStore(provider.Autocommit(newContext()), "shop02.myshopify.com")
	assert.Equal(t, nil, err)

	nullStore, err := repo.GetStore(provider.Readonly(newContext()), "shop02.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullStore.Valid)
	assert.Equal(t, false, nullStore.Store.IsActive)

	err = repo.UpsertStore(provider.Autocommit(newContext()), model.Store{
		Shop:        "shop02.myshopify.com",
		AccessToken: "token02",
	})
	assert.Equal(t, nil, err)

	nullStore, err = repo.GetStore(provider.Readonly(newContext()), "shop02.myshopify.com")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullStore.Store.IsActive)
}
