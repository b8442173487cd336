package countdown

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/leasecache"
	"github.com/visalkrishnan/shopify-product-countdown-timer/repository"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Select(ctx context.Context, input Input) (Output, error)
}

// Input is the storefront context of one page view
type Input struct {
	Shop          string
	ProductID     string
	CollectionIDs []string
}

// Output ...
type Output struct {
	Active    bool
	Promotion model.Promotion
}

// ErrMissingParameters when shop or product id is empty
var ErrMissingParameters = errors.New("missing parameters")

const (
	productGIDPrefix    = "gid://shopify/Product/"
	collectionGIDPrefix = "gid://shopify/Collection/"
)

// NormalizeProductID turns a bare numeric id into the global id form
func NormalizeProductID(id string) string {
	return normalizeGID(id, productGIDPrefix)
}

// NormalizeCollectionID ...
func NormalizeCollectionID(id string) string {
	return normalizeGID(id, collectionGIDPrefix)
}

func normalizeGID(id string, prefix string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "gid://") {
		return id
	}
	return prefix + id
}

// ParseCollectionIDs splits a comma separated list, blanks are dropped
func ParseCollectionIDs(s string) []string {
	var result []string
	for _, id := range strings.Split(s, ",") {
		id = NormalizeCollectionID(id)
		if id == "" {
			continue
		}
		result = append(result, id)
	}
	return result
}

// PromotionCacheKey is the cache key of the promotion list of a shop
func PromotionCacheKey(shop string) string {
	return "cd:promotions:" + shop
}

// Service ...
type Service struct {
	provider      repository.Provider
	promotionRepo repository.Promotion
	storeRepo     repository.Store
	cache         leasecache.Cache
	viewCounter   ViewCounter

	now func() time.Time
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	promotionRepo repository.Promotion,
	storeRepo repository.Store,
	cache leasecache.Cache,
	viewCounter ViewCounter,
) *Service {
	return &Service{
		provider:      provider,
		promotionRepo: promotionRepo,
		storeRepo:     storeRepo,
		cache:         cache,
		viewCounter:   viewCounter,

		now: time.Now,
	}
}

// Select returns the promotion to show for the page view, or an inactive output
func (s *Service) Select(ctx context.Context, input Input) (Output, error) {
	shop := strings.TrimSpace(input.Shop)
	productID := NormalizeProductID(input.ProductID)
	if shop == "" || productID == "" {
		selectionTotal.WithLabelValues(resultMissingParams).Inc()
		return Output{}, ErrMissingParameters
	}

	collectionIDs := make([]string, 0, len(input.CollectionIDs))
	for _, id := range input.CollectionIDs {
		id = NormalizeCollectionID(id)
		if id == "" {
			continue
		}
		collectionIDs = append(collectionIDs, id)
	}

	promotions, err := s.getPromotions(ctx, shop)
	if err != nil {
		selectionTotal.WithLabelValues(resultError).Inc()
		return Output{}, err
	}

	winner, ok := Select(promotions, s.now(), Target{
		ProductID:     productID,
		CollectionIDs: collectionIDs,
	})
	if !ok {
		selectionTotal.WithLabelValues(resultInactive).Inc()
		return Output{}, nil
	}

	s.viewCounter.Enqueue(shop, winner.ID)

	selectionTotal.WithLabelValues(resultActive).Inc()
	return Output{
		Active:    true,
		Promotion: winner,
	}, nil
}

func (s *Service) getPromotions(ctx context.Context, shop string) ([]model.Promotion, error) {
	data, err := s.cache.Get(ctx, PromotionCacheKey(shop), func(ctx context.Context) ([]byte, error) {
		return s.loadPromotions(ctx, shop)
	})
	if err != nil {
		return nil, err
	}
	return DecodePromotions(data)
}

// loadPromotions reads the promotions of an installed shop, an uninstalled shop gets none
func (s *Service) loadPromotions(ctx context.Context, shop string) ([]byte, error) {
	ctx = s.provider.Readonly(ctx)

	store, err := s.storeRepo.GetStore(ctx, shop)
	if err != nil {
		return nil, err
	}
	if store.Valid && !store.Store.IsActive {
		return EncodePromotions(nil), nil
	}

	promotions, err := s.promotionRepo.FindPromotionsByShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	return EncodePromotions(promotions), nil
}
