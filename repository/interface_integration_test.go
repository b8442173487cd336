//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/integration"
)

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly_Uses_Transaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)
		return db.GetContext(ctx, &version, "SELECT VERSION()")
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)
			return tx.GetContext(ctx, &version, "SELECT VERSION()")
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("store")

	p := NewProvider(tc.DB)
	errRollback := errors.New("rollback")

	err := p.Transact(newContext(), func(ctx context.Context) error {
		_, err := GetTx(ctx).ExecContext(ctx, "INSERT INTO store (shop) VALUES (?)", "shop01")
		assert.Equal(t, nil, err)
		return errRollback
	})
	assert.Equal(t, errRollback, err)

	var count int
	err = GetReadonly(p.Readonly(newContext())).GetContext(newContext(), &count, "SELECT COUNT(*) FROM store")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)
}

func TestProvider_Autocommit(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("store")

	p := NewProvider(tc.DB)
	ctx := p.Autocommit(newContext())

	_, err := GetTx(ctx).ExecContext(ctx, "INSERT INTO store (shop) VALUES (?)", "shop01")
	assert.Equal(t, nil, err)

	var count int
	err = GetReadonly(ctx).GetContext(ctx, &count, "SELECT COUNT(*) FROM store")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, count)
}
