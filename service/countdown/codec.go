package countdown

import (
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// field numbers of the cached promotion list, never reuse a number
const (
	fieldPromotion protowire.Number = 1
)

const (
	fieldID protowire.Number = iota + 1
	fieldShop
	fieldTitle
	fieldMode
	fieldDurationMinutes
	fieldStartDate
	fieldEndDate
	fieldTargetScope
	fieldProductID
	fieldCollectionID
	fieldDisplayPosition
	fieldDisplaySize
	fieldDisplayColor
	fieldUrgencyType
	fieldUrgencyMinutes
	fieldUrgencyColor
	fieldDescription
	fieldViewCount
	fieldCreatedAt
	fieldUpdatedAt
)

// ErrMalformedCacheData ...
var ErrMalformedCacheData = errors.New("malformed promotion cache data")

// EncodePromotions encodes the records in the protobuf wire format
func EncodePromotions(promotions []model.Promotion) []byte {
	var data []byte
	for _, p := range promotions {
		data = protowire.AppendTag(data, fieldPromotion, protowire.BytesType)
		data = protowire.AppendBytes(data, encodePromotion(p))
	}
	return data
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	return appendInt(b, num, t.UnixNano())
}

func encodePromotion(p model.Promotion) []byte {
	var b []byte
	b = appendString(b, fieldID, p.ID)
	b = appendString(b, fieldShop, p.Shop)
	b = appendString(b, fieldTitle, p.Title)
	b = appendString(b, fieldMode, string(p.Mode))
	b = appendInt(b, fieldDurationMinutes, p.DurationMinutes)
	b = appendString(b, fieldStartDate, p.StartDate)
	b = appendString(b, fieldEndDate, p.EndDate)
	b = appendString(b, fieldTargetScope, string(p.TargetScope))
	for _, id := range p.ProductIDs {
		b = protowire.AppendTag(b, fieldProductID, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	for _, id := range p.CollectionIDs {
		b = protowire.AppendTag(b, fieldCollectionID, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	b = appendString(b, fieldDisplayPosition, string(p.Display.Position))
	b = appendString(b, fieldDisplaySize, string(p.Display.Size))
	b = appendString(b, fieldDisplayColor, p.Display.Color)
	b = appendString(b, fieldUrgencyType, string(p.Urgency.Type))
	b = appendInt(b, fieldUrgencyMinutes, p.Urgency.TriggerMinutes)
	b = appendString(b, fieldUrgencyColor, p.Urgency.Color)
	b = appendString(b, fieldDescription, p.Description)
	b = appendInt(b, fieldViewCount, p.ViewCount)
	b = appendTime(b, fieldCreatedAt, p.CreatedAt)
	b = appendTime(b, fieldUpdatedAt, p.UpdatedAt)
	return b
}

// DecodePromotions is the inverse of EncodePromotions, unknown fields are skipped
func DecodePromotions(data []byte) ([]model.Promotion, error) {
	var result []model.Promotion
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
		}
		data = data[n:]

		if num != fieldPromotion || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
		}
		data = data[n:]

		p, err := decodePromotion(msg)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

//revive:disable-next-line:cyclomatic
func decodePromotion(b []byte) (model.Promotion, error) {
	var p model.Promotion
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return model.Promotion{}, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return model.Promotion{}, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
			}
			b = b[n:]
			setStringField(&p, num, s)

		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return model.Promotion{}, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
			}
			b = b[n:]
			setIntField(&p, num, protowire.DecodeZigZag(v))

		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return model.Promotion{}, errors.Wrap(ErrMalformedCacheData, protowire.ParseError(n).Error())
			}
			b = b[n:]
		}
	}
	return p, nil
}

//revive:disable-next-line:cyclomatic
func setStringField(p *model.Promotion, num protowire.Number, s string) {
	switch num {
	case fieldID:
		p.ID = s
	case fieldShop:
		p.Shop = s
	case fieldTitle:
		p.Title = s
	case fieldMode:
		p.Mode = model.TimerMode(s)
	case fieldStartDate:
		p.StartDate = s
	case fieldEndDate:
		p.EndDate = s
	case fieldTargetScope:
		p.TargetScope = model.TargetScope(s)
	case fieldProductID:
		p.ProductIDs = append(p.ProductIDs, s)
	case fieldCollectionID:
		p.CollectionIDs = append(p.CollectionIDs, s)
	case fieldDisplayPosition:
		p.Display.Position = model.DisplayPosition(s)
	case fieldDisplaySize:
		p.Display.Size = model.DisplaySize(s)
	case fieldDisplayColor:
		p.Display.Color = s
	case fieldUrgencyType:
		p.Urgency.Type = model.UrgencyType(s)
	case fieldUrgencyColor:
		p.Urgency.Color = s
	case fieldDescription:
		p.Description = s
	}
}

func setIntField(p *model.Promotion, num protowire.Number, v int64) {
	switch num {
	case fieldDurationMinutes:
		p.DurationMinutes = v
	case fieldUrgencyMinutes:
		p.Urgency.TriggerMinutes = v
	case fieldViewCount:
		p.ViewCount = v
	case fieldCreatedAt:
		p.CreatedAt = time.Unix(0, v).UTC()
	case fieldUpdatedAt:
		p.UpdatedAt = time.Unix(0, v).UTC()
	}
}
