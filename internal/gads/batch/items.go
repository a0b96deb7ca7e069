package batch

// Concrete batch items. Identity keys casefold user-entered text so
// "Shoes" and "shoes" collapse; ids and enum members compare verbatim

import (
	"strconv"
	"strings"

	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// KeywordItem adds one keyword to an ad group
type KeywordItem struct {
	AdGroupID string
	Keyword   validate.KeywordInput
	// Status defaults to ENABLED, matching the API's own default for
	// newly added criteria
	Status string
}

// Key is the casefolded text plus match type
func (k KeywordItem) Key() string {
	return fold.String(k.Keyword.Text) + "|" + k.Keyword.MatchType
}

// Validate checks the keyword constraints and the ad group id
func (k KeywordItem) Validate() error {
	if _, err := validate.NumericID(k.AdGroupID, "ad_group_id"); err != nil {
		return err
	}
	if k.Status != "" {
		if _, err := validate.Status(k.Status); err != nil {
			return err
		}
	}
	return validate.Struct(k.Keyword)
}

// Operation renders an ad group criterion create
func (k KeywordItem) Operation(customerID string) (client.Operation, error) {
	adGroupID, err := validate.NumericID(k.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	status := k.Status
	if status == "" {
		status = "ENABLED"
	}
	criterion := map[string]any{
		"adGroup": client.ResourceName("adGroups", customerID, adGroupID),
		"status":  status,
		"keyword": map[string]any{
			"text":      k.Keyword.Text,
			"matchType": k.Keyword.MatchType,
		},
	}
	if k.Keyword.CPCBidMicros > 0 {
		criterion["cpcBidMicros"] = strconv.FormatInt(k.Keyword.CPCBidMicros, 10)
	}
	return client.Operation{
		"adGroupCriterionOperation": map[string]any{"create": criterion},
	}, nil
}

// SitelinkItem creates one sitelink asset
type SitelinkItem struct {
	Sitelink validate.SitelinkInput
}

// Key is the casefolded link text plus final URL
func (s SitelinkItem) Key() string {
	return fold.String(s.Sitelink.LinkText) + "|" + strings.ToLower(s.Sitelink.FinalURL)
}

// Validate checks the sitelink constraints
func (s SitelinkItem) Validate() error { return validate.Struct(s.Sitelink) }

// Operation renders an asset create
func (s SitelinkItem) Operation(string) (client.Operation, error) {
	sitelink := map[string]any{"linkText": s.Sitelink.LinkText}
	if s.Sitelink.Description1 != "" {
		sitelink["description1"] = s.Sitelink.Description1
	}
	if s.Sitelink.Description2 != "" {
		sitelink["description2"] = s.Sitelink.Description2
	}
	return client.Operation{
		"assetOperation": map[string]any{"create": map[string]any{
			"finalUrls":     []string{s.Sitelink.FinalURL},
			"sitelinkAsset": sitelink,
		}},
	}, nil
}

// ConversionItem imports one offline click conversion
type ConversionItem struct {
	Conversion validate.ConversionInput
}

// Key is gclid plus action plus conversion time; the same click converting
// through the same action at the same instant is one event
func (c ConversionItem) Key() string {
	return c.Conversion.GCLID + "|" + c.Conversion.ConversionAction + "|" + c.Conversion.ConversionDateTime
}

// Validate checks the conversion constraints
func (c ConversionItem) Validate() error { return validate.Struct(c.Conversion) }

// Operation renders the click conversion payload
func (c ConversionItem) Operation(customerID string) (client.Operation, error) {
	action, err := validate.NumericID(c.Conversion.ConversionAction, "conversion_action")
	if err != nil {
		return nil, err
	}
	conv := map[string]any{
		"gclid":              c.Conversion.GCLID,
		"conversionAction":   client.ResourceName("conversionActions", customerID, action),
		"conversionDateTime": c.Conversion.ConversionDateTime,
		"conversionValue":    c.Conversion.Value,
	}
	if c.Conversion.CurrencyCode != "" {
		conv["currencyCode"] = c.Conversion.CurrencyCode
	}
	return client.Operation{"clickConversion": conv}, nil
}

// StatusItem flips one resource to ENABLED or PAUSED. REMOVED is
// deliberately not expressible here; removal is permanent and stays a
// single-resource operation
type StatusItem struct {
	// ResourceType is campaign, ad_group, or ad
	ResourceType string
	ID           string
	// AdGroupID qualifies ads, which live under an ad group
	AdGroupID string
	Status    string
}

// Key is the resource type plus id, so one batch touches a resource once
func (s StatusItem) Key() string {
	id := s.ID
	if s.ResourceType == "ad" && s.AdGroupID != "" {
		id = s.AdGroupID + "~" + s.ID
	}
	return s.ResourceType + "|" + id
}

// Validate checks the target and the status against the batch allow-list
func (s StatusItem) Validate() error {
	switch s.ResourceType {
	case "campaign", "ad_group", "ad":
	default:
		return perr.WithField(
			perr.Validationf("resource_type must be campaign, ad_group, or ad; got %q",
				validate.Preview(s.ResourceType)),
			"resource_type",
		)
	}
	if _, err := validate.NumericID(s.ID, "id"); err != nil {
		return err
	}
	if s.ResourceType == "ad" {
		if _, err := validate.NumericID(s.AdGroupID, "ad_group_id"); err != nil {
			return err
		}
	}
	_, err := validate.Enum("batch_status", s.Status)
	return err
}

// Operation renders the update with a status-only field mask
func (s StatusItem) Operation(customerID string) (client.Operation, error) {
	id, err := validate.NumericID(s.ID, "id")
	if err != nil {
		return nil, err
	}
	switch s.ResourceType {
	case "campaign":
		return client.Operation{"campaignOperation": map[string]any{
			"updateMask": "status",
			"update": map[string]any{
				"resourceName": client.ResourceName("campaigns", customerID, id),
				"status":       s.Status,
			},
		}}, nil
	case "ad_group":
		return client.Operation{"adGroupOperation": map[string]any{
			"updateMask": "status",
			"update": map[string]any{
				"resourceName": client.ResourceName("adGroups", customerID, id),
				"status":       s.Status,
			},
		}}, nil
	case "ad":
		adGroupID, err := validate.NumericID(s.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		return client.Operation{"adGroupAdOperation": map[string]any{
			"updateMask": "status",
			"update": map[string]any{
				"resourceName": client.CompositeResourceName("adGroupAds", customerID, adGroupID, id),
				"status":       s.Status,
			},
		}}, nil
	}
	return nil, perr.Validationf("resource_type must be campaign, ad_group, or ad")
}
