package countdownrpc

import (
	"time"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// SelectRequest ...
type SelectRequest struct {
	Shop          string   `json:"shop"`
	ProductID     string   `json:"productId"`
	CollectionIDs []string `json:"collectionIds,omitempty"`
}

// SelectResponse is also the body of the public selection endpoint.
// Only Active is set when there is no promotion to show.
type SelectResponse struct {
	Active      bool           `json:"active"`
	ID          string         `json:"id,omitempty"`
	Type        string         `json:"type,omitempty"`
	Duration    int64          `json:"duration,omitempty"`
	EndDate     string         `json:"endDate,omitempty"`
	Description string         `json:"description,omitempty"`
	Display     *model.Display `json:"display,omitempty"`
	Urgency     *model.Urgency `json:"urgency,omitempty"`
}

// NewSelectResponse ...
func NewSelectResponse(p model.Promotion) *SelectResponse {
	display := p.Display
	urgency := p.Urgency
	return &SelectResponse{
		Active:      true,
		ID:          p.ID,
		Type:        string(p.Mode),
		Duration:    p.DurationMinutes,
		EndDate:     p.EndDate,
		Description: p.Description,
		Display:     &display,
		Urgency:     &urgency,
	}
}

// Promotion as shown to shop admins
type Promotion struct {
	model.PromotionInput `yaml:",inline"`

	ViewCount int64     `json:"viewCount" yaml:"view_count"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

// NewPromotion ...
func NewPromotion(p model.Promotion) Promotion {
	return Promotion{
		PromotionInput: p.ToInput(),
		ViewCount:      p.ViewCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ListPromotionsRequest ...
type ListPromotionsRequest struct {
	Shop string `json:"shop"`
}

// ListPromotionsResponse ...
type ListPromotionsResponse struct {
	Promotions []Promotion `json:"promotions"`
}

// UpsertPromotionRequest creates the promotion when its id is empty
type UpsertPromotionRequest struct {
	Shop      string               `json:"shop"`
	Promotion model.PromotionInput `json:"promotion"`
}

// UpsertPromotionResponse ...
type UpsertPromotionResponse struct {
	Promotion Promotion `json:"promotion"`
}

// DeletePromotionRequest ...
type DeletePromotionRequest struct {
	Shop string `json:"shop"`
	ID   string `json:"id"`
}

// DeletePromotionResponse ...
type DeletePromotionResponse struct {
}
