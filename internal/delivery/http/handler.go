package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marketlens/backend/internal/domain"
	"github.com/marketlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
	history       domain.HistoryRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService, history domain.HistoryRepository) *Handler {
	return &Handler{
		searchService: searchService,
		history:       history,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "marketlens-backend",
		"version": "1.0.0",
	})
}

// SearchProducts runs one market search for the caller's session. The call
// blocks until the model replies; failures surface as a failed outcome in the
// 200 response body, never as a 5xx.
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.searchService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "search service not configured",
		})
		return
	}

	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "category and product_name are required",
		})
		return
	}

	if !request.Objective().Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "price_calc_objective must be one of: none, unit, kg, liter, package",
		})
		return
	}

	outcome, err := h.searchService.Search(c.Request.Context(), sessionID(c), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed unexpectedly"})
		return
	}

	c.JSON(http.StatusOK, presentOutcome(&request, outcome))
}

// ListHistory returns the session's past searches, most recent first
func (h *Handler) ListHistory(c *gin.Context) {
	entries, err := h.history.All(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": presentHistory(entries),
		"count":   len(entries),
	})
}

// GetHistoryEntry returns the full rendering of one past search
func (h *Handler) GetHistoryEntry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry id must be a non-negative integer"})
		return
	}

	entries, err := h.history.All(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	if id >= len(entries) {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrEntryNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, presentHistoryEntry(id, entries[id]))
}
