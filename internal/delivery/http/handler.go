package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/giftwise/backend/internal/domain"
	"github.com/giftwise/backend/internal/usecase"
)

// RecommendRequest is the raw quiz form payload. Enum-typed fields arrive as
// free text and are coerced through the domain parse functions, so any
// string is accepted; unrecognized values fall back to the fixed defaults.
type RecommendRequest struct {
	Age               int      `json:"age" binding:"min=0"`
	Relationship      string   `json:"relationship" binding:"required"`
	Interests         []string `json:"interests"`
	AdditionalDetails string   `json:"additionalDetails"`
	Budget            string   `json:"budget" binding:"required"`
	Occasion          string   `json:"occasion" binding:"required"`
	Limit             int      `json:"limit"`
}

// RecommendResponse wraps the ranked product list. Fallback is true when the
// engine produced no results and the static suggestion list was substituted.
type RecommendResponse struct {
	Recommendations []domain.Product `json:"recommendations"`
	Count           int              `json:"count"`
	Fallback        bool             `json:"fallback"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender *usecase.RecommendService
	cache       domain.CacheRepository
	cacheTTL    time.Duration
}

// NewHandler creates a new HTTP handler. The cache may be nil, in which case
// every request is computed fresh.
func NewHandler(recommender *usecase.RecommendService, cache domain.CacheRepository, cacheTTL time.Duration) *Handler {
	return &Handler{
		recommender: recommender,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": "giftwise-backend",
		"version": "1.0.0",
	}
	if h.recommender != nil {
		status["catalogSize"] = h.recommender.CatalogSize()
	}
	c.JSON(http.StatusOK, status)
}

// Recommend handles gift recommendation requests.
func (h *Handler) Recommend(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation engine not ready"})
		return
	}

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	prefs := mapRequest(&req)

	cacheKey := h.cacheKey(prefs, req.Limit)
	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil {
			if response, ok := cached.(*RecommendResponse); ok {
				c.JSON(http.StatusOK, response)
				return
			}
		}
	}

	results, err := h.recommender.GetRecommendations(c.Request.Context(), prefs, req.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPreferences) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[RECOMMEND] request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	response := &RecommendResponse{
		Recommendations: results,
		Count:           len(results),
	}
	if len(results) == 0 {
		// Never show an empty state: substitute the fixed example list.
		response.Recommendations = FallbackSuggestions()
		response.Count = len(response.Recommendations)
		response.Fallback = true
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), cacheKey, response, h.cacheTTL); err != nil {
			log.Printf("[RECOMMEND] cache set failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, response)
}

// mapRequest coerces the free-text form payload into a valid preference
// profile via the total domain parsers.
func mapRequest(req *RecommendRequest) *domain.UserPreferences {
	interests := make([]domain.Interest, 0, len(req.Interests))
	seen := make(map[domain.Interest]bool, len(req.Interests))
	for _, raw := range req.Interests {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		interest := domain.ParseInterest(raw)
		if !seen[interest] {
			seen[interest] = true
			interests = append(interests, interest)
		}
	}

	return &domain.UserPreferences{
		Age:               req.Age,
		Relationship:      domain.ParseRelationship(req.Relationship),
		Interests:         interests,
		AdditionalDetails: req.AdditionalDetails,
		BudgetRange:       domain.ParseBudgetRange(req.Budget),
		Occasion:          domain.ParseOccasion(req.Occasion),
	}
}

// cacheKey builds a normalized fingerprint of the profile. Interests are
// sorted so payload ordering does not fragment the cache; recommendations
// are deterministic for a given profile, so caching cannot change results.
func (h *Handler) cacheKey(prefs *domain.UserPreferences, limit int) string {
	interests := make([]string, len(prefs.Interests))
	for i, interest := range prefs.Interests {
		interests[i] = string(interest)
	}
	sort.Strings(interests)

	return fmt.Sprintf("recommend:%d:%s:%s:%s:%s:%d",
		prefs.Age, prefs.Relationship, strings.Join(interests, "+"),
		prefs.BudgetRange, prefs.Occasion, limit)
}
