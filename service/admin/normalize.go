package admin

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

// ErrInvalidPromotion is the cause of every validation error
var ErrInvalidPromotion = errors.New("invalid promotion")

const (
	defaultDisplayColor   = "#008000"
	defaultUrgencyColor   = "#d32f2f"
	defaultUrgencyMinutes = 15
	defaultDescription    = "Limited Time Offer!"

	maxTitleLength       = 255
	maxDescriptionLength = 1024
)

var colorRegexp = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidPromotion, format, args...)
}

func withDefault(s string, defaultValue string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultValue
	}
	return s
}

// Normalize validates the input of a shop admin and returns the typed record.
// ID and timestamps are left for the caller.
//
//revive:disable-next-line:cyclomatic,function-length
func Normalize(shop string, input model.PromotionInput) (model.Promotion, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return model.Promotion{}, invalidf("shop is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Promotion{}, invalidf("title is required")
	}
	if len(title) > maxTitleLength {
		return model.Promotion{}, invalidf("title is longer than %d bytes", maxTitleLength)
	}

	mode := model.TimerMode(withDefault(input.Mode, string(model.TimerModeFixed)))
	if !mode.IsValid() {
		return model.Promotion{}, invalidf("unknown mode %q", mode)
	}

	var durationMinutes int64
	if mode == model.TimerModeEvergreen {
		if input.DurationMinutes <= 0 {
			return model.Promotion{}, invalidf("duration must be positive for evergreen timer")
		}
		durationMinutes = input.DurationMinutes
	}

	startDate := strings.TrimSpace(input.StartDate)
	start, err := countdown.ParseInstant(startDate)
	if err != nil {
		return model.Promotion{}, invalidf("start date %q is not an ISO-8601 instant", startDate)
	}
	endDate := strings.TrimSpace(input.EndDate)
	end, err := countdown.ParseInstant(endDate)
	if err != nil {
		return model.Promotion{}, invalidf("end date %q is not an ISO-8601 instant", endDate)
	}
	if end.Before(start) {
		return model.Promotion{}, invalidf("end date is before start date")
	}

	scope, err := normalizeScope(input.TargetScope)
	if err != nil {
		return model.Promotion{}, err
	}

	productIDs := normalizeIDs(input.ProductIDs, countdown.NormalizeProductID)
	collectionIDs := normalizeIDs(input.CollectionIDs, countdown.NormalizeCollectionID)

	switch scope {
	case model.TargetScopeProduct:
		if len(productIDs) == 0 {
			return model.Promotion{}, invalidf("at least one product is required")
		}
	case model.TargetScopeCollection:
		if len(collectionIDs) == 0 {
			return model.Promotion{}, invalidf("at least one collection is required")
		}
	}

	display, err := normalizeDisplay(input.Display)
	if err != nil {
		return model.Promotion{}, err
	}

	urgency, err := normalizeUrgency(input.Urgency)
	if err != nil {
		return model.Promotion{}, err
	}

	description := withDefault(input.Description, defaultDescription)
	if len(description) > maxDescriptionLength {
		return model.Promotion{}, invalidf("description is longer than %d bytes", maxDescriptionLength)
	}

	return model.Promotion{
		Shop:  shop,
		Title: title,

		Mode:            mode,
		DurationMinutes: durationMinutes,

		StartDate: formatInstant(start),
		EndDate:   formatInstant(end),

		TargetScope:   scope,
		ProductIDs:    productIDs,
		CollectionIDs: collectionIDs,

		Display:     display,
		Urgency:     urgency,
		Description: description,
	}, nil
}

func normalizeScope(s string) (model.TargetScope, error) {
	s = withDefault(s, string(model.TargetScopeAll))
	if s == "specific" {
		return model.TargetScopeProduct, nil
	}

	scope := model.TargetScope(s)
	if !scope.IsValid() {
		return "", invalidf("unknown target scope %q", s)
	}
	return scope, nil
}

func normalizeIDs(ids []string, normalize func(string) string) []string {
	var result []string
	seen := map[string]struct{}{}
	for _, id := range ids {
		id = normalize(id)
		if id == "" {
			continue
		}
		if _, existed := seen[id]; existed {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func normalizeColor(s string, defaultValue string) (string, error) {
	color := withDefault(s, defaultValue)
	if !colorRegexp.MatchString(color) {
		return "", invalidf("color %q is not a hex color", color)
	}
	return strings.ToLower(color), nil
}

func normalizeDisplay(input model.DisplayInput) (model.Display, error) {
	position := model.DisplayPosition(withDefault(input.Position, string(model.DisplayPositionTop)))
	if !position.IsValid() {
		return model.Display{}, invalidf("unknown display position %q", position)
	}

	size := model.DisplaySize(withDefault(input.Size, string(model.DisplaySizeMedium)))
	if !size.IsValid() {
		return model.Display{}, invalidf("unknown display size %q", size)
	}

	color, err := normalizeColor(input.Color, defaultDisplayColor)
	if err != nil {
		return model.Display{}, err
	}

	return model.Display{
		Position: position,
		Size:     size,
		Color:    color,
	}, nil
}

func normalizeUrgency(input model.UrgencyInput) (model.Urgency, error) {
	urgencyType := model.UrgencyType(withDefault(input.Type, string(model.UrgencyTypePulse)))
	if !urgencyType.IsValid() {
		return model.Urgency{}, invalidf("unknown urgency type %q", urgencyType)
	}

	minutes := int64(defaultUrgencyMinutes)
	if input.Minutes != nil {
		minutes = *input.Minutes
	}
	if minutes < 0 {
		return model.Urgency{}, invalidf("urgency minutes must not be negative")
	}

	color, err := normalizeColor(input.Color, defaultUrgencyColor)
	if err != nil {
		return model.Urgency{}, err
	}

	return model.Urgency{
		Type:           urgencyType,
		TriggerMinutes: minutes,
		Color:          color,
	}, nil
}

// formatInstant stores instants in UTC with milliseconds
func formatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
