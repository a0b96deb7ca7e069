package validate

// Item input shapes accepted by the batch paths. Constraints follow what the
// API enforces server-side so malformed items die locally instead of
// poisoning a mutate

import (
	"sync"

	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/platform/net/http/bind"
)

// KeywordInput is one keyword to add to an ad group
type KeywordInput struct {
	Text      string `json:"text" validate:"required,min=1,max=80"`
	MatchType string `json:"match_type" validate:"required,match_type"`
	// bid in micros; zero inherits the ad group default
	CPCBidMicros int64 `json:"cpc_bid_micros" validate:"omitempty,gt=0"`
}

// SitelinkInput is one sitelink asset
type SitelinkInput struct {
	LinkText     string `json:"link_text" validate:"required,min=1,max=25"`
	FinalURL     string `json:"final_url" validate:"required,http_url"`
	Description1 string `json:"description1" validate:"omitempty,max=35"`
	Description2 string `json:"description2" validate:"omitempty,max=35"`
}

// ConversionInput is one offline click conversion to import.
// ConversionDateTime must carry a timezone offset, e.g. 2026-08-25 14:05:00+00:00
type ConversionInput struct {
	GCLID              string  `json:"gclid" validate:"required"`
	ConversionAction   string  `json:"conversion_action" validate:"required"`
	ConversionDateTime string  `json:"conversion_datetime" validate:"required,datetime=2006-01-02 15:04:05-07:00"`
	Value              float64 `json:"value" validate:"gte=0"`
	CurrencyCode       string  `json:"currency_code" validate:"omitempty,len=3,alpha"`
}

// PriceItemInput is one row of a price asset
type PriceItemInput struct {
	Header       string `json:"header" validate:"required,min=1,max=25"`
	Description  string `json:"description" validate:"required,min=1,max=25"`
	PriceMicros  int64  `json:"price_micros" validate:"required,gt=0"`
	CurrencyCode string `json:"currency_code" validate:"required,len=3,alpha"`
	FinalURL     string `json:"final_url" validate:"omitempty,http_url"`
}

var tagsOnce sync.Once

// RegisterTags wires the domain validation tags into the shared binder.
// Safe to call from multiple modules; registration happens once
func RegisterTags() {
	tagsOnce.Do(func() {
		_ = bind.RegisterValidation("customer_id", func(fl bind.FieldLevel) bool {
			_, err := NumericID(fl.Field().String(), "customer_id")
			return err == nil
		})
		_ = bind.RegisterValidation("gads_date", func(fl bind.FieldLevel) bool {
			_, err := Date(fl.Field().String())
			return err == nil
		})
		_ = bind.RegisterValidation("named_range", func(fl bind.FieldLevel) bool {
			_, err := NamedRange(fl.Field().String())
			return err == nil
		})
		_ = bind.RegisterValidation("match_type", func(fl bind.FieldLevel) bool {
			_, err := Enum("match_type", fl.Field().String())
			return err == nil
		})
	})
}

// Struct validates a tagged input struct through the shared binder and maps
// the first failure to a validation error carrying the offending field
func Struct(v any) error {
	RegisterTags()
	if err := bind.Get().Validator.Struct(v); err != nil {
		field, msg := bind.ValidationFieldAndMessage(err)
		return perr.WithField(perr.Validationf("%s", msg), field)
	}
	return nil
}
