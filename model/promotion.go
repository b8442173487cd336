package model

import (
	"time"
)

// Promotion is a countdown timer configured by a shop admin
type Promotion struct {
	ID    string
	Shop  string
	Title string

	Mode            TimerMode
	DurationMinutes int64

	// StartDate and EndDate are ISO-8601 instants kept exactly as stored
	StartDate string
	EndDate   string

	TargetScope   TargetScope
	ProductIDs    []string
	CollectionIDs []string

	Display     Display
	Urgency     Urgency
	Description string

	ViewCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Display ...
type Display struct {
	Position DisplayPosition `json:"position" yaml:"position"`
	Size     DisplaySize     `json:"size" yaml:"size"`
	Color    string          `json:"color" yaml:"color"`
}

// Urgency ...
type Urgency struct {
	Type           UrgencyType `json:"type" yaml:"type"`
	TriggerMinutes int64       `json:"minutes" yaml:"minutes"`
	Color          string      `json:"color" yaml:"color"`
}

// TimerMode ...
type TimerMode string

const (
	// TimerModeFixed counts down to the campaign end, the same for every visitor
	TimerModeFixed TimerMode = "fixed"

	// TimerModeEvergreen counts down a fixed duration started on each visitor's first view
	TimerModeEvergreen TimerMode = "evergreen"
)

// TargetScope ...
type TargetScope string

const (
	// TargetScopeAll ...
	TargetScopeAll TargetScope = "all"

	// TargetScopeProduct ...
	TargetScopeProduct TargetScope = "product"

	// TargetScopeCollection ...
	TargetScopeCollection TargetScope = "collection"
)

// DisplayPosition ...
type DisplayPosition string

const (
	// DisplayPositionTop ...
	DisplayPositionTop DisplayPosition = "top"

	// DisplayPositionBottom ...
	DisplayPositionBottom DisplayPosition = "bottom"
)

// DisplaySize ...
type DisplaySize string

const (
	// DisplaySizeSmall ...
	DisplaySizeSmall DisplaySize = "small"

	// DisplaySizeMedium ...
	DisplaySizeMedium DisplaySize = "medium"

	// DisplaySizeLarge ...
	DisplaySizeLarge DisplaySize = "large"
)

// UrgencyType ...
type UrgencyType string

const (
	// UrgencyTypeNone ...
	UrgencyTypeNone UrgencyType = "none"

	// UrgencyTypePulse ...
	UrgencyTypePulse UrgencyType = "pulse"

	// UrgencyTypeBanner ...
	UrgencyTypeBanner UrgencyType = "banner"
)

// IsValid ...
func (m TimerMode) IsValid() bool {
	return m == TimerModeFixed || m == TimerModeEvergreen
}

// IsValid ...
func (s TargetScope) IsValid() bool {
	return s == TargetScopeAll || s == TargetScopeProduct || s == TargetScopeCollection
}

// IsValid ...
func (p DisplayPosition) IsValid() bool {
	return p == DisplayPositionTop || p == DisplayPositionBottom
}

// IsValid ...
func (s DisplaySize) IsValid() bool {
	return s == DisplaySizeSmall || s == DisplaySizeMedium || s == DisplaySizeLarge
}

// IsValid ...
func (t UrgencyType) IsValid() bool {
	return t == UrgencyTypeNone || t == UrgencyTypePulse || t == UrgencyTypeBanner
}

// NullPromotion ...
type NullPromotion struct {
	Valid     bool
	Promotion Promotion
}
