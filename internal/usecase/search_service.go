package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/marketlens/backend/internal/domain"
)

// SearchService orchestrates one market search: build the prompt, make a
// single model call, extract products from the reply, and record the outcome
// in the session's history. Transport and extraction failures are converted
// into a failed outcome with a user-visible diagnostic; they never propagate
// as errors or panics.
type SearchService struct {
	model   domain.ModelClient
	history domain.HistoryRepository
	now     func() time.Time
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(model domain.ModelClient, history domain.HistoryRepository) *SearchService {
	return &SearchService{
		model:   model,
		history: history,
		now:     time.Now,
	}
}

// Search runs one search for the session and appends a history entry for the
// completed orchestration, successful or not. The only error returned is
// domain.ErrInvalidRequest for requests that never reach the model.
func (s *SearchService) Search(ctx context.Context, sessionID string, request *domain.SearchRequest) (*domain.SearchOutcome, error) {
	if request == nil || request.Category == "" || request.ProductName == "" {
		return nil, domain.ErrInvalidRequest
	}
	if !request.Objective().Valid() {
		return nil, fmt.Errorf("%w: unknown price calculation objective %q", domain.ErrInvalidRequest, request.PriceCalcObjective)
	}

	outcome := s.run(ctx, request)

	entry := domain.HistoryEntry{
		Timestamp:  s.now().Format(domain.HistoryTimeFormat),
		Request:    *request,
		Products:   outcome.Products,
		Status:     outcome.Status,
		Diagnostic: outcome.Diagnostic,
	}
	if err := s.history.Append(ctx, sessionID, entry); err != nil {
		// History is best-effort display state; the search itself succeeded
		log.Printf("[SEARCH] Failed to record history entry: %v", err)
	}

	return outcome, nil
}

func (s *SearchService) run(ctx context.Context, request *domain.SearchRequest) *domain.SearchOutcome {
	prompt := BuildPrompt(request)

	log.Printf("[SEARCH] Querying model for %q in %q (objective: %s)",
		request.ProductName, request.Category, request.Objective())

	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[SEARCH] Model call failed: %v", err)
		return &domain.SearchOutcome{
			Products:   []domain.Product{},
			Status:     domain.StatusFailed,
			Diagnostic: fmt.Sprintf("API request failed: %v", err),
		}
	}

	products, err := Extract(raw)
	if err != nil {
		log.Printf("[SEARCH] Extraction failed: %v", err)
		return &domain.SearchOutcome{
			Products:   []domain.Product{},
			Status:     domain.StatusFailed,
			Diagnostic: fmt.Sprintf("Could not parse JSON from API response: %v", err),
		}
	}

	if len(products) == 0 {
		log.Printf("[SEARCH] No products found for %q", request.ProductName)
		return &domain.SearchOutcome{
			Products: []domain.Product{},
			Status:   domain.StatusEmpty,
		}
	}

	log.Printf("[SEARCH] Found %d products for %q", len(products), request.ProductName)
	return &domain.SearchOutcome{
		Products: products,
		Status:   domain.StatusFound,
	}
}
