package countdown

import (
	"sort"
	"time"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// Target is the storefront context a promotion is matched against
type Target struct {
	ProductID     string
	CollectionIDs []string
}

type candidate struct {
	promotion   model.Promotion
	specificity int
	end         time.Time
}

// ParseInstant parses an ISO-8601 instant with an optional fractional second
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// Select filters the records active at now that target the product or one of the collections
// and returns the winner: specific targeting first, then the soonest end, then the latest created.
// Records with unparsable instants are never active.
func Select(records []model.Promotion, now time.Time, target Target) (model.Promotion, bool) {
	candidates := make([]candidate, 0, len(records))
	for _, p := range records {
		c, ok := toCandidate(p, now, target)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return model.Promotion{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidateLess(candidates[i], candidates[j])
	})
	return candidates[0].promotion, true
}

func toCandidate(p model.Promotion, now time.Time, target Target) (candidate, bool) {
	start, err := ParseInstant(p.StartDate)
	if err != nil {
		return candidate{}, false
	}
	end, err := ParseInstant(p.EndDate)
	if err != nil {
		return candidate{}, false
	}
	if now.Before(start) || now.After(end) {
		return candidate{}, false
	}
	if !matchTarget(p, target) {
		return candidate{}, false
	}

	specificity := 0
	if p.TargetScope != model.TargetScopeAll {
		specificity = 1
	}
	return candidate{
		promotion:   p,
		specificity: specificity,
		end:         end,
	}, true
}

func matchTarget(p model.Promotion, target Target) bool {
	switch p.TargetScope {
	case model.TargetScopeAll:
		return true

	case model.TargetScopeProduct:
		for _, id := range p.ProductIDs {
			if id == target.ProductID {
				return true
			}
		}
		return false

	case model.TargetScopeCollection:
		for _, id := range p.CollectionIDs {
			for _, want := range target.CollectionIDs {
				if id == want {
					return true
				}
			}
		}
		return false

	default:
		return false
	}
}

func candidateLess(a, b candidate) bool {
	if a.specificity != b.specificity {
		return a.specificity > b.specificity
	}
	if !a.end.Equal(b.end) {
		return a.end.Before(b.end)
	}
	if !a.promotion.CreatedAt.Equal(b.promotion.CreatedAt) {
		return a.promotion.CreatedAt.After(b.promotion.CreatedAt)
	}
	return a.promotion.ID < b.promotion.ID
}
