package widget

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// Selection is the promotion returned by the selection endpoint for one page view
type Selection struct {
	ID              string
	Shop            string
	Mode            model.TimerMode
	DurationMinutes int64
	EndDate         string
	Description     string
	Display         model.Display
	Urgency         model.Urgency
}

var (
	// ErrInvalidDuration when an evergreen selection has no positive duration
	ErrInvalidDuration = errors.New("invalid evergreen duration")

	// ErrInvalidEndDate ...
	ErrInvalidEndDate = errors.New("invalid end date")

	// ErrUnknownMode ...
	ErrUnknownMode = errors.New("unknown timer mode")
)

// VisitorStore keeps the evergreen expiry of a visitor, in epoch milliseconds
type VisitorStore interface {
	Load(key string) (int64, bool, error)
	Save(key string, expiryMillis int64) error
}

// VisitorKey is the visitor store key of a promotion
func VisitorKey(shop string, promotionID string) string {
	return "countdown:" + shop + ":" + promotionID
}

// Resolver computes the absolute expiry of a selection for the current visitor
type Resolver struct {
	store  VisitorStore
	now    func() time.Time
	logger *zap.Logger
}

// NewResolver ...
func NewResolver(store VisitorStore, now func() time.Time, logger *zap.Logger) *Resolver {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		store:  store,
		now:    now,
		logger: logger,
	}
}

// Resolve is called once per page view. A fixed timer ends at the campaign end.
// An evergreen timer keeps the stored expiry while it is in the future, otherwise starts a new window.
func (r *Resolver) Resolve(sel Selection) (time.Time, error) {
	switch sel.Mode {
	case model.TimerModeFixed:
		end, err := time.Parse(time.RFC3339Nano, sel.EndDate)
		if err != nil {
			return time.Time{}, errors.Wrapf(ErrInvalidEndDate, "parse %q", sel.EndDate)
		}
		return end, nil

	case model.TimerModeEvergreen:
		return r.resolveEvergreen(sel)

	default:
		return time.Time{}, errors.Wrapf(ErrUnknownMode, "mode %q", sel.Mode)
	}
}

func (r *Resolver) resolveEvergreen(sel Selection) (time.Time, error) {
	if sel.DurationMinutes <= 0 {
		return time.Time{}, ErrInvalidDuration
	}

	now := r.now()
	nowMillis := now.UnixMilli()
	key := VisitorKey(sel.Shop, sel.ID)

	stored, ok, err := r.store.Load(key)
	if err != nil {
		r.logger.Warn("Load visitor expiry failed", zap.String("key", key), zap.Error(err))
		// an unreadable entry may still be in the future, so it is never overwritten
		return time.UnixMilli(nowMillis + sel.DurationMinutes*60000), nil
	}
	if ok && stored > nowMillis {
		return time.UnixMilli(stored), nil
	}

	expiry := nowMillis + sel.DurationMinutes*60000
	if err := r.store.Save(key, expiry); err != nil {
		r.logger.Warn("Save visitor expiry failed", zap.String("key", key), zap.Error(err))
	}
	return time.UnixMilli(expiry), nil
}
