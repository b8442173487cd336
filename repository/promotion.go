package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// Promotion is the record store for countdown promotions, every query is scoped by shop
type Promotion interface {
	FindPromotionsByShop(ctx context.Context, shop string) ([]model.Promotion, error)
	GetPromotion(ctx context.Context, shop string, id string) (model.NullPromotion, error)
	InsertPromotion(ctx context.Context, promotion model.Promotion) error
	UpdatePromotion(ctx context.Context, promotion model.Promotion) error
	DeletePromotion(ctx context.Context, shop string, id string) (bool, error)
	IncrementViewCount(ctx context.Context, shop string, id string, delta int64) error
}

type promotionRow struct {
	ID    string `db:"id"`
	Shop  string `db:"shop"`
	Title string `db:"title"`

	Mode            string `db:"mode"`
	DurationMinutes int64  `db:"duration_minutes"`
	StartDate       string `db:"start_date"`
	EndDate         string `db:"end_date"`

	TargetScope   string         `db:"target_scope"`
	ProductIDs    types.JSONText `db:"product_ids"`
	CollectionIDs types.JSONText `db:"collection_ids"`

	DisplayPosition string `db:"display_position"`
	DisplaySize     string `db:"display_size"`
	DisplayColor    string `db:"display_color"`

	UrgencyType    string `db:"urgency_type"`
	UrgencyMinutes int64  `db:"urgency_minutes"`
	UrgencyColor   string `db:"urgency_color"`

	Description string `db:"description"`
	ViewCount   int64  `db:"view_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const promotionColumns = `
id, shop, title, mode, duration_minutes, start_date, end_date,
	target_scope, product_ids, collection_ids,
	display_position, display_size, display_color,
	urgency_type, urgency_minutes, urgency_color,
	description, view_count, created_at, updated_at`

func marshalIDs(ids []string) types.JSONText {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		panic(err)
	}
	return data
}

// unmarshalIDs treats a corrupted list as empty, a targeted record without ids never matches
func unmarshalIDs(text types.JSONText) []string {
	var ids []string
	if err := text.Unmarshal(&ids); err != nil {
		return nil
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func newPromotionRow(p model.Promotion) promotionRow {
	return promotionRow{
		ID:    p.ID,
		Shop:  p.Shop,
		Title: p.Title,

		Mode:            string(p.Mode),
		DurationMinutes: p.DurationMinutes,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,

		TargetScope:   string(p.TargetScope),
		ProductIDs:    marshalIDs(p.ProductIDs),
		CollectionIDs: marshalIDs(p.CollectionIDs),

		DisplayPosition: string(p.Display.Position),
		DisplaySize:     string(p.Display.Size),
		DisplayColor:    p.Display.Color,

		UrgencyType:    string(p.Urgency.Type),
		UrgencyMinutes: p.Urgency.TriggerMinutes,
		UrgencyColor:   p.Urgency.Color,

		Description: p.Description,
		ViewCount:   p.ViewCount,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r promotionRow) toModel() model.Promotion {
	return model.Promotion{
		ID:    r.ID,
		Shop:  r.Shop,
		Title: r.Title,

		Mode:            model.TimerMode(r.Mode),
		DurationMinutes: r.DurationMinutes,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,

		TargetScope:   model.TargetScope(r.TargetScope),
		ProductIDs:    unmarshalIDs(r.ProductIDs),
		CollectionIDs: unmarshalIDs(r.CollectionIDs),

		Display: model.Display{
			Position: model.DisplayPosition(r.DisplayPosition),
			Size:     model.DisplaySize(r.DisplaySize),
			Color:    r.DisplayColor,
		},
		Urgency: model.Urgency{
			Type:           model.UrgencyType(r.UrgencyType),
			TriggerMinutes: r.UrgencyMinutes,
			Color:          r.UrgencyColor,
		},

		Description: r.Description,
		ViewCount:   r.ViewCount,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type promotionImpl struct {
}

// NewPromotion ...
func NewPromotion() Promotion {
	return &promotionImpl{}
}

// FindPromotionsByShop returns all promotions of a shop, newest first
func (p *promotionImpl) FindPromotionsByShop(ctx context.Context, shop string) ([]model.Promotion, error) {
	query := `SELECT ` + promotionColumns + `
FROM promotion
WHERE shop = ?
ORDER BY created_at DESC, id
`
	var rows []promotionRow
	err := GetReadonly(ctx).SelectContext(ctx, &rows, query, shop)
	if err != nil {
		return nil, errors.Wrapf(err, "select promotions of shop %q", shop)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	result := make([]model.Promotion, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

// GetPromotion ...
func (p *promotionImpl) GetPromotion(ctx context.Context, shop string, id string) (model.NullPromotion, error) {
	query := `SELECT ` + promotionColumns + `
FROM promotion
WHERE shop = ? AND id = ?
`
	var rows []promotionRow
	err := GetReadonly(ctx).SelectContext(ctx, &rows, query, shop, id)
	if err != nil {
		return model.NullPromotion{}, errors.Wrapf(err, "get promotion %q", id)
	}
	if len(rows) == 0 {
		return model.NullPromotion{}, nil
	}
	return model.NullPromotion{
		Valid:     true,
		Promotion: rows[0].toModel(),
	}, nil
}

// InsertPromotion ...
func (p *promotionImpl) InsertPromotion(ctx context.Context, promotion model.Promotion) error {
	query := `
INSERT INTO promotion (
	id, shop, title, mode, duration_minutes, start_date, end_date,
	target_scope, product_ids, collection_ids,
	display_position, display_size, display_color,
	urgency_type, urgency_minutes, urgency_color,
	description, view_count, created_at, updated_at
) VALUES (
	:id, :shop, :title, :mode, :duration_minutes, :start_date, :end_date,
	:target_scope, :product_ids, :collection_ids,
	:display_position, :display_size, :display_color,
	:urgency_type, :urgency_minutes, :urgency_color,
	:description, :view_count, :created_at, :updated_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, newPromotionRow(promotion))
	return errors.Wrap(err, "insert promotion")
}

// UpdatePromotion updates every admin editable field, view_count and created_at are kept
func (p *promotionImpl) UpdatePromotion(ctx context.Context, promotion model.Promotion) error {
	query := `
UPDATE promotion SET
	title = :title,
	mode = :mode,
	duration_minutes = :duration_minutes,
	start_date = :start_date,
	end_date = :end_date,

	target_scope = :target_scope,
	product_ids = :product_ids,
	collection_ids = :collection_ids,

	display_position = :display_position,
	display_size = :display_size,
	display_color = :display_color,

	urgency_type = :urgency_type,
	urgency_minutes = :urgency_minutes,
	urgency_color = :urgency_color,

	description = :description,
	updated_at = :updated_at
WHERE shop = :shop AND id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, newPromotionRow(promotion))
	return errors.Wrap(err, "update promotion")
}

// DeletePromotion returns false when the promotion does not exist for the shop
func (p *promotionImpl) DeletePromotion(ctx context.Context, shop string, id string) (bool, error) {
	query := `DELETE FROM promotion WHERE shop = ? AND id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, shop, id)
	if err != nil {
		return false, errors.Wrap(err, "delete promotion")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete promotion")
	}
	return affected > 0, nil
}

// IncrementViewCount ...
func (p *promotionImpl) IncrementViewCount(ctx context.Context, shop string, id string, delta int64) error {
	query := `
UPDATE promotion SET view_count = view_count + ?, updated_at = updated_at
WHERE shop = ? AND id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, delta, shop, id)
	return errors.Wrap(err, "increment view count")
}
