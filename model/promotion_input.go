package model

// PromotionInput is a promotion as submitted by an admin, before validation.
// Empty fields are filled with defaults.
type PromotionInput struct {
	ID              string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string   `json:"title" yaml:"title"`
	Mode            string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	DurationMinutes int64    `json:"durationMinutes,omitempty" yaml:"duration_minutes,omitempty"`
	StartDate       string   `json:"startDate" yaml:"start_date"`
	EndDate         string   `json:"endDate" yaml:"end_date"`
	TargetScope     string   `json:"targetScope,omitempty" yaml:"target_scope,omitempty"`
	ProductIDs      []string `json:"productIds,omitempty" yaml:"product_ids,omitempty"`
	CollectionIDs   []string `json:"collectionIds,omitempty" yaml:"collection_ids,omitempty"`

	Display     DisplayInput `json:"display" yaml:"display"`
	Urgency     UrgencyInput `json:"urgency" yaml:"urgency"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// DisplayInput ...
type DisplayInput struct {
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
}

// UrgencyInput ...
type UrgencyInput struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Minutes is nil when not submitted, zero is a valid threshold
	Minutes *int64 `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
}

// ToInput converts back to the input form, used for editing an existing promotion
func (p Promotion) ToInput() PromotionInput {
	minutes := p.Urgency.TriggerMinutes
	return PromotionInput{
		ID:              p.ID,
		Title:           p.Title,
		Mode:            string(p.Mode),
		DurationMinutes: p.DurationMinutes,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		TargetScope:     string(p.TargetScope),
		ProductIDs:      p.ProductIDs,
		CollectionIDs:   p.CollectionIDs,
		Display: DisplayInput{
			Position: string(p.Display.Position),
			Size:     string(p.Display.Size),
			Color:    p.Display.Color,
		},
		Urgency: UrgencyInput{
			Type:    string(p.Urgency.Type),
			Minutes: &minutes,
			Color:   p.Urgency.Color,
		},
		Description: p.Description,
	}
}
