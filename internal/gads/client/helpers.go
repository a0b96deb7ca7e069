package client

import (
	"encoding/json"
	"fmt"
	"math"
)

// Decode unmarshals one keyed section of a row (campaign, metrics, ...)
// into dst. A missing key leaves dst untouched and returns false
func (r Row) Decode(key string, dst any) (bool, error) {
	raw, ok := r[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Micros converts a currency-unit amount to the API's micro representation
func Micros(units float64) int64 {
	return int64(math.Round(units * 1_000_000))
}

// Units converts micros back to currency units
func Units(micros int64) float64 {
	return float64(micros) / 1_000_000
}

// ResourceName builds customers/{cid}/{collection}/{id}
func ResourceName(collection, customerID, id string) string {
	return fmt.Sprintf("customers/%s/%s/%s", customerID, collection, id)
}

// CompositeResourceName builds customers/{cid}/{collection}/{id}~{sub} for
// two-part resources like ad group ads and criteria
func CompositeResourceName(collection, customerID, id, sub string) string {
	return fmt.Sprintf("customers/%s/%s/%s~%s", customerID, collection, id, sub)
}
