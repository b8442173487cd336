package admin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/leasecache"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/otellib"
	"github.com/visalkrishnan/shopify-product-countdown-timer/repository"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService manages the promotions and the install state of shops
type IService interface {
	ListPromotions(ctx context.Context, shop string) ([]model.Promotion, error)
	GetPromotion(ctx context.Context, shop string, id string) (model.Promotion, error)
	UpsertPromotion(ctx context.Context, shop string, input model.PromotionInput) (model.Promotion, error)
	DeletePromotion(ctx context.Context, shop string, id string) error

	InstallStore(ctx context.Context, shop string, accessToken string) error
	UninstallStore(ctx context.Context, shop string) error
}

// ErrPromotionNotFound also when the promotion belongs to another shop
var ErrPromotionNotFound = errors.New("promotion not found")

// ErrMissingShop ...
var ErrMissingShop = errors.New("missing shop")

// Service ...
type Service struct {
	provider      repository.Provider
	promotionRepo repository.Promotion
	storeRepo     repository.Store
	cache         leasecache.Cache

	now   func() time.Time
	newID func() string
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	promotionRepo repository.Promotion,
	storeRepo repository.Store,
	cache leasecache.Cache,
) *Service {
	return &Service{
		provider:      provider,
		promotionRepo: promotionRepo,
		storeRepo:     storeRepo,
		cache:         cache,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) currentTime() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) invalidate(ctx context.Context, shop string) {
	err := s.cache.Invalidate(ctx, countdown.PromotionCacheKey(shop))
	if err != nil {
		otellib.Extract(ctx).Warn("Invalidate promotion cache failed",
			zap.String("shop", shop), zap.Error(err))
	}
}

func checkShop(shop string) (string, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return "", ErrMissingShop
	}
	return shop, nil
}

// ListPromotions returns the promotions of the shop, newest first
func (s *Service) ListPromotions(ctx context.Context, shop string) ([]model.Promotion, error) {
	shop, err := checkShop(shop)
	if err != nil {
		return nil, err
	}
	return s.promotionRepo.FindPromotionsByShop(s.provider.Readonly(ctx), shop)
}

// GetPromotion ...
func (s *Service) GetPromotion(ctx context.Context, shop string, id string) (model.Promotion, error) {
	shop, err := checkShop(shop)
	if err != nil {
		return model.Promotion{}, err
	}

	nullPromotion, err := s.promotionRepo.GetPromotion(s.provider.Readonly(ctx), shop, id)
	if err != nil {
		return model.Promotion{}, err
	}
	if !nullPromotion.Valid {
		return model.Promotion{}, ErrPromotionNotFound
	}
	return nullPromotion.Promotion, nil
}

// UpsertPromotion creates a promotion when input has no id, otherwise updates the promotion of the same shop
func (s *Service) UpsertPromotion(
	ctx context.Context, shop string, input model.PromotionInput,
) (model.Promotion, error) {
	promotion, err := Normalize(shop, input)
	if err != nil {
		return model.Promotion{}, err
	}

	now := s.currentTime()
	id := strings.TrimSpace(input.ID)

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if id == "" {
			promotion.ID = s.newID()
			promotion.CreatedAt = now
			promotion.UpdatedAt = now
			return s.promotionRepo.InsertPromotion(ctx, promotion)
		}

		existing, err := s.promotionRepo.GetPromotion(ctx, promotion.Shop, id)
		if err != nil {
			return err
		}
		if !existing.Valid {
			return ErrPromotionNotFound
		}

		promotion.ID = id
		promotion.ViewCount = existing.Promotion.ViewCount
		promotion.CreatedAt = existing.Promotion.CreatedAt
		promotion.UpdatedAt = now
		return s.promotionRepo.UpdatePromotion(ctx, promotion)
	})
	if err != nil {
		return model.Promotion{}, err
	}

	s.invalidate(ctx, promotion.Shop)
	return promotion, nil
}

// DeletePromotion ...
func (s *Service) DeletePromotion(ctx context.Context, shop string, id string) error {
	shop, err := checkShop(shop)
	if err != nil {
		return err
	}

	deleted, err := s.promotionRepo.DeletePromotion(s.provider.Autocommit(ctx), shop, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPromotionNotFound
	}

	s.invalidate(ctx, shop)
	return nil
}

// InstallStore activates the shop, also after a previous uninstall
func (s *Service) InstallStore(ctx context.Context, shop string, accessToken string) error {
	shop, err := checkShop(shop)
	if err != nil {
		return err
	}

	now := s.currentTime()
	err = s.storeRepo.UpsertStore(s.provider.Autocommit(ctx), model.Store{
		Shop:        shop,
		AccessToken: accessToken,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, shop)
	return nil
}

// UninstallStore deactivates the shop, its promotions are kept but never selected
func (s *Service) UninstallStore(ctx context.Context, shop string) error {
	shop, err := checkShop(shop)
	if err != nil {
		return err
	}

	err = s.storeRepo.DeactivateStore(s.provider.Autocommit(ctx), shop)
	if err != nil {
		return err
	}

	s.invalidate(ctx, shop)
	return nil
}
