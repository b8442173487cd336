package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// Store keeps the install state of shops
type Store interface {
	GetStore(ctx context.Context, shop string) (model.NullStore, error)
	UpsertStore(ctx context.Context, store model.Store) error
	DeactivateStore(ctx context.Context, shop string) error
}

type storeImpl struct {
}

// NewStore ...
func NewStore() Store {
	return &storeImpl{}
}

// GetStore ...
func (s *storeImpl) GetStore(ctx context.Context, shop string) (model.NullStore, error) {
	query := `
SELECT shop, access_token, is_active, created_at, updated_at
FROM store WHERE shop = ?
`
	var stores []model.Store
	err := GetReadonly(ctx).SelectContext(ctx, &stores, query, shop)
	if err != nil {
		return model.NullStore{}, errors.Wrapf(err, "get store %q", shop)
	}
	if len(stores) == 0 {
		return model.NullStore{}, nil
	}
	return model.NullStore{
		Valid: true,
		Store: stores[0],
	}, nil
}

// UpsertStore marks the shop as installed and active
func (s *storeImpl) UpsertStore(ctx context.Context, store model.Store) error {
	query := `
INSERT INTO store (shop, access_token, is_active)
VALUES (:shop, :access_token, TRUE) AS NEW
ON DUPLICATE KEY UPDATE
	access_token = NEW.access_token,
	is_active = TRUE
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, store)
	return errors.Wrap(err, "upsert store")
}

// DeactivateStore marks the shop as uninstalled, a row is created when the shop was never seen
func (s *storeImpl) DeactivateStore(ctx context.Context, shop string) error {
	query := `
INSERT INTO store (shop, access_token, is_active)
VALUES (?, '', FALSE)
ON DUPLICATE KEY UPDATE
	access_token = '',
	is_active = FALSE
`
	_, err := GetTx(ctx).ExecContext(ctx, query, shop)
	return errors.Wrap(err, "deactivate store")
}
