package usecase

import (
	"fmt"
	"strings"

	"github.com/marketlens/backend/internal/domain"
)

// targetMarket is the fixed market the model is asked to analyze.
const targetMarket = "Lithuanian market"

// promptFragment is one instruction block of the search prompt, guarded by a
// predicate on the request. Keeping the directive set as an ordered list makes
// each directive enumerable and testable in isolation from formatting.
type promptFragment struct {
	applies func(req *domain.SearchRequest) bool
	render  func(req *domain.SearchRequest) string
}

func always(*domain.SearchRequest) bool { return true }

func hasPriceObjective(req *domain.SearchRequest) bool {
	return req.Objective() != domain.ObjectiveNone
}

func hasCustomUnitLabel(req *domain.SearchRequest) bool {
	return req.Objective() == domain.ObjectiveUnit && req.UnitLabel != ""
}

var promptFragments = []promptFragment{
	{applies: always, render: renderTaskHeader},
	{applies: always, render: renderFixedDirectives},
	{applies: hasPriceObjective, render: renderPriceDirective},
	{applies: always, render: renderSchemaOpen},
	{applies: hasPriceObjective, render: renderPriceField},
	{applies: hasCustomUnitLabel, render: renderUnitTypeField},
	{applies: always, render: renderSchemaClose},
}

// BuildPrompt assembles the single user message sent to the search model.
// Pure and deterministic: the same request always yields the same prompt.
func BuildPrompt(req *domain.SearchRequest) string {
	parts := make([]string, 0, len(promptFragments))
	for _, fragment := range promptFragments {
		if fragment.applies(req) {
			parts = append(parts, fragment.render(req))
		}
	}
	return strings.Join(parts, "\n")
}

func renderTaskHeader(req *domain.SearchRequest) string {
	return fmt.Sprintf(`Analyze the %s for %s and gather detailed product information according to the following:
             product name: %s
             product specification: %s`,
		targetMarket, req.Category, req.ProductName, req.TechSpec)
}

func renderFixedDirectives(req *domain.SearchRequest) string {
	return `2. Verify the product is currently available for purchase
3. Gather accurate pricing in EUR
4. Evaluate technical specification requirements one by one`
}

func renderPriceDirective(req *domain.SearchRequest) string {
	var basis string
	switch req.Objective() {
	case domain.ObjectiveUnit:
		basis = req.UnitLabel
		if basis == "" {
			basis = "unit"
		}
	case domain.ObjectiveKg:
		basis = "kilogram"
	case domain.ObjectiveLiter:
		basis = "liter"
	case domain.ObjectivePackage:
		basis = "package"
	}
	return fmt.Sprintf("5. Calculate and include price per %s for each product", basis)
}

func renderSchemaOpen(req *domain.SearchRequest) string {
	return `IMPORTANT: Your response MUST be formatted EXACTLY as a valid JSON array of product objects.
Each product in the array should have the following fields:

[
  {
    "provider": "Company selling the product",
    "provider_website": "Main website domain (e.g., telia.lt)",
    "provider_url": "Full URL to the specific product page",
    "product_name": "Complete product name with model",
    "product_properties": {
      "key_spec1": "value1",
      "key_spec2": "value2"
    },
    "product_sku": "Any product identifiers (SKU, UPC, model number)",
    "product_price": 299.99,`
}

func renderPriceField(req *domain.SearchRequest) string {
	return fmt.Sprintf(`    "%s": 9.99,`, req.Objective().PriceFieldName())
}

func renderUnitTypeField(req *domain.SearchRequest) string {
	return fmt.Sprintf(`    "unit_type": "%s",`, req.UnitLabel)
}

func renderSchemaClose(req *domain.SearchRequest) string {
	return `    "evaluation": "Detailed assessment of how the product meets or fails each technical specification"
  }
]

DO NOT include any explanation, preamble, or additional text - ONLY provide the JSON array.`
}
