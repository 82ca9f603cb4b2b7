package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Product is a single structured offer extracted from the model response.
// The model is instructed to emit a fixed field set but frequently deviates
// (missing fields, numbers as strings, non-string property values), so the
// JSON codec here is deliberately tolerant. Products are never mutated after
// extraction.
type Product struct {
	Provider          string            `json:"provider"`
	ProviderWebsite   string            `json:"provider_website"`
	ProviderURL       string            `json:"provider_url,omitempty"`
	ProductName       string            `json:"product_name"`
	ProductProperties map[string]string `json:"product_properties,omitempty"`
	ProductSKU        string            `json:"product_sku,omitempty"`
	ProductPrice      float64           `json:"product_price"`
	// PricePer holds every price_per_<basis> field the model emitted, keyed
	// by basis ("kg", "liter", ...). Display code must look the value up by
	// the request's objective rather than assume the model used the expected
	// key.
	PricePer   map[string]float64 `json:"-"`
	UnitType   string             `json:"unit_type,omitempty"`
	Evaluation string             `json:"evaluation"`
}

// PricePerObjective returns the per-basis price for the given objective and
// whether the model supplied it.
func (p *Product) PricePerObjective(objective PriceObjective) (float64, bool) {
	if objective == ObjectiveNone {
		return 0, false
	}
	v, ok := p.PricePer[string(objective)]
	return v, ok
}

const pricePerPrefix = "price_per_"

// UnmarshalJSON decodes a product record from model output, coercing scalar
// values into the expected types instead of failing on minor shape drift.
func (p *Product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	p.Provider = stringField(fields["provider"])
	p.ProviderWebsite = stringField(fields["provider_website"])
	p.ProviderURL = stringField(fields["provider_url"])
	p.ProductName = stringField(fields["product_name"])
	p.ProductSKU = stringField(fields["product_sku"])
	p.UnitType = stringField(fields["unit_type"])
	p.Evaluation = stringField(fields["evaluation"])

	if raw, ok := fields["product_properties"]; ok {
		var props map[string]json.RawMessage
		if err := json.Unmarshal(raw, &props); err == nil && len(props) > 0 {
			p.ProductProperties = make(map[string]string, len(props))
			for key, value := range props {
				p.ProductProperties[key] = stringField(value)
			}
		}
	}

	if raw, ok := fields["product_price"]; ok {
		if v, ok := numberField(raw); ok {
			p.ProductPrice = v
		}
	}

	for key, raw := range fields {
		basis, found := strings.CutPrefix(key, pricePerPrefix)
		if !found || basis == "" {
			continue
		}
		if v, ok := numberField(raw); ok {
			if p.PricePer == nil {
				p.PricePer = make(map[string]float64)
			}
			p.PricePer[basis] = v
		}
	}

	return nil
}

// MarshalJSON re-emits the record in the wire shape the model was asked for,
// including the dynamic price_per_<basis> fields.
func (p Product) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"provider":         p.Provider,
		"provider_website": p.ProviderWebsite,
		"product_name":     p.ProductName,
		"product_price":    p.ProductPrice,
		"evaluation":       p.Evaluation,
	}
	if p.ProviderURL != "" {
		out["provider_url"] = p.ProviderURL
	}
	if len(p.ProductProperties) > 0 {
		out["product_properties"] = p.ProductProperties
	}
	if p.ProductSKU != "" {
		out["product_sku"] = p.ProductSKU
	}
	for basis, value := range p.PricePer {
		out[pricePerPrefix+basis] = value
	}
	if p.UnitType != "" {
		out["unit_type"] = p.UnitType
	}
	return json.Marshal(out)
}

// stringField coerces a raw JSON value into a string. Non-string scalars are
// formatted; objects, arrays, and nulls become empty strings.
func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return fmt.Sprintf("%t", b)
	}
	return ""
}

// numberField coerces a raw JSON value into a float64, accepting numbers and
// numeric strings ("299.99").
func numberField(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
