package http

import (
	"fmt"

	"github.com/marketlens/backend/internal/domain"
)

// productView is the rendered form of one product: display strings with EUR
// formatting and the per-basis price suffix resolved from the request's
// objective (never from whatever key the model happened to emit).
type productView struct {
	Title           string            `json:"title"`
	Provider        string            `json:"provider"`
	ProviderWebsite string            `json:"provider_website"`
	ProductURL      string            `json:"product_url,omitempty"`
	SKU             string            `json:"sku,omitempty"`
	Price           string            `json:"price"`
	PricePer        string            `json:"price_per,omitempty"`
	Properties      map[string]string `json:"properties,omitempty"`
	Evaluation      string            `json:"evaluation"`
}

// searchResponse is the full rendering of one search outcome, including the
// raw product records for the raw-JSON view.
type searchResponse struct {
	Status     string           `json:"status"`
	Diagnostic string           `json:"diagnostic,omitempty"`
	Summary    string           `json:"summary"`
	Products   []productView    `json:"products"`
	Raw        []domain.Product `json:"raw"`
}

// historySummary is one line of the history listing.
type historySummary struct {
	ID          int    `json:"id"`
	Timestamp   string `json:"timestamp"`
	Category    string `json:"category"`
	ProductName string `json:"product_name"`
	Objective   string `json:"objective"`
	ResultCount int    `json:"result_count"`
	Status      string `json:"status"`
}

// historyDetail is the expanded rendering of one history entry.
type historyDetail struct {
	ID        int                  `json:"id"`
	Timestamp string               `json:"timestamp"`
	Request   domain.SearchRequest `json:"request"`
	Result    searchResponse       `json:"result"`
}

func presentOutcome(request *domain.SearchRequest, outcome *domain.SearchOutcome) searchResponse {
	return searchResponse{
		Status:     string(outcome.Status),
		Diagnostic: outcome.Diagnostic,
		Summary:    summaryLine(request, outcome.Status, len(outcome.Products)),
		Products:   presentProducts(request, outcome.Products),
		Raw:        outcome.Products,
	}
}

func summaryLine(request *domain.SearchRequest, status domain.SearchStatus, count int) string {
	switch status {
	case domain.StatusFound:
		return fmt.Sprintf("Found %d products for %s in %s category", count, request.ProductName, request.Category)
	case domain.StatusEmpty:
		return fmt.Sprintf("No products found matching your specifications for %s", request.ProductName)
	default:
		return "No products found or error occurred during analysis."
	}
}

func presentProducts(request *domain.SearchRequest, products []domain.Product) []productView {
	objective := request.Objective()
	views := make([]productView, 0, len(products))

	for i, product := range products {
		name := product.ProductName
		if name == "" {
			name = "Unknown Product"
		}

		title := fmt.Sprintf("%d. %s - €%.2f", i+1, name, product.ProductPrice)

		var pricePer string
		if value, ok := product.PricePerObjective(objective); ok {
			pricePer = fmt.Sprintf("€%.2f%s", value, objective.DisplaySuffix(product.UnitType))
			title += fmt.Sprintf(" (%s)", pricePer)
		}

		views = append(views, productView{
			Title:           title,
			Provider:        product.Provider,
			ProviderWebsite: product.ProviderWebsite,
			ProductURL:      product.ProviderURL,
			SKU:             product.ProductSKU,
			Price:           fmt.Sprintf("€%.2f", product.ProductPrice),
			PricePer:        pricePer,
			Properties:      product.ProductProperties,
			Evaluation:      product.Evaluation,
		})
	}

	return views
}

// presentHistory renders the session's entries most-recent-first. IDs are
// stable insertion-order indexes so an entry keeps its id as new searches
// are appended.
func presentHistory(entries []domain.HistoryEntry) []historySummary {
	summaries := make([]historySummary, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		summaries = append(summaries, historySummary{
			ID:          i,
			Timestamp:   entry.Timestamp,
			Category:    entry.Request.Category,
			ProductName: entry.Request.ProductName,
			Objective:   string(entry.Request.Objective()),
			ResultCount: len(entry.Products),
			Status:      string(entry.Status),
		})
	}
	return summaries
}

func presentHistoryEntry(id int, entry domain.HistoryEntry) historyDetail {
	return historyDetail{
		ID:        id,
		Timestamp: entry.Timestamp,
		Request:   entry.Request,
		Result: searchResponse{
			Status:     string(entry.Status),
			Diagnostic: entry.Diagnostic,
			Summary:    summaryLine(&entry.Request, entry.Status, len(entry.Products)),
			Products:   presentProducts(&entry.Request, entry.Products),
			Raw:        entry.Products,
		},
	}
}
