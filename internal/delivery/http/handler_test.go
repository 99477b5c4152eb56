package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/backend/config"
	"github.com/giftwise/backend/internal/domain"
	"github.com/giftwise/backend/internal/infrastructure/cache"
	"github.com/giftwise/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testCatalog() []domain.Product {
	base := domain.Product{
		AgeRange:              domain.AgeRange{Min: 18, Max: 40},
		SuitableRelationships: []domain.Relationship{domain.RelationshipFriend},
		SuitableOccasions:     []domain.Occasion{domain.OccasionBirthday},
		InStock:               true,
	}

	speaker := base
	speaker.ID = "speaker"
	speaker.Name = "Smart Speaker"
	speaker.Price = 20
	speaker.Interests = []domain.Interest{domain.InterestTechnology}
	speaker.Rating = 5
	speaker.Popularity = 900

	book := base
	book.ID = "book"
	book.Name = "Novel Set"
	book.Price = 18
	book.Interests = []domain.Interest{domain.InterestReading}
	book.Rating = 4
	book.Popularity = 400

	pan := base
	pan.ID = "pan"
	pan.Name = "Chef Pan"
	pan.Price = 80
	pan.Interests = []domain.Interest{domain.InterestCooking}
	pan.Rating = 4.5
	pan.Popularity = 600

	return []domain.Product{speaker, book, pan}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 600, Burst: 100},
	}
}

func setupTestRouter(withCache bool) *gin.Engine {
	recommender := usecase.NewRecommendService(testCatalog(), usecase.RecommendConfig{})

	var responseCache domain.CacheRepository
	if withCache {
		responseCache = cache.NewMemoryCache()
	}

	handler := NewHandler(recommender, responseCache, time.Minute)
	return SetupRouter(testConfig(), handler)
}

func postRecommendations(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/v1/recommendations", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(false)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "giftwise-backend", response["service"])
	assert.Equal(t, float64(3), response["catalogSize"])
}

func TestRecommendEndpoint(t *testing.T) {
	t.Run("returns ranked recommendations", func(t *testing.T) {
		router := setupTestRouter(false)

		w := postRecommendations(router, `{
			"age": 25,
			"relationship": "friend",
			"interests": ["tech"],
			"budget": "Under $25",
			"occasion": "Birthday",
			"limit": 10
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var response RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Fallback)
		require.NotEmpty(t, response.Recommendations)
		assert.Equal(t, len(response.Recommendations), response.Count)

		// Chef Pan is priced out of "Under $25"; the tech match ranks first.
		assert.Equal(t, "speaker", response.Recommendations[0].ID)
		for _, p := range response.Recommendations {
			assert.NotEqual(t, "pan", p.ID)
		}
	})

	t.Run("unmapped free text is coerced, not rejected", func(t *testing.T) {
		router := setupTestRouter(false)

		w := postRecommendations(router, `{
			"age": 25,
			"relationship": "grandma",
			"interests": ["knitting"],
			"budget": "cheap",
			"occasion": "housewarming"
		}`)

		// Falls back to Other/Creative/Under $25/Other rather than erroring.
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing required fields is a 400", func(t *testing.T) {
		router := setupTestRouter(false)

		w := postRecommendations(router, `{"age": 25}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		router := setupTestRouter(false)

		w := postRecommendations(router, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty result substitutes the fallback list", func(t *testing.T) {
		// Catalog with nothing priced over $100.
		recommender := usecase.NewRecommendService(testCatalog(), usecase.RecommendConfig{})
		handler := NewHandler(recommender, nil, time.Minute)
		router := SetupRouter(testConfig(), handler)

		w := postRecommendations(router, `{
			"age": 25,
			"relationship": "friend",
			"budget": "Over $100",
			"occasion": "Birthday"
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var response RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Fallback)
		assert.NotEmpty(t, response.Recommendations)
	})

	t.Run("repeated requests are served from cache", func(t *testing.T) {
		router := setupTestRouter(true)
		payload := `{
			"age": 25,
			"relationship": "friend",
			"interests": ["reading", "tech"],
			"budget": "Under $25",
			"occasion": "Birthday"
		}`

		first := postRecommendations(router, payload)
		require.Equal(t, http.StatusOK, first.Code)

		second := postRecommendations(router, payload)
		require.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("engine not ready is a 503", func(t *testing.T) {
		handler := NewHandler(nil, nil, time.Minute)
		router := SetupRouter(testConfig(), handler)

		w := postRecommendations(router, `{
			"age": 25,
			"relationship": "friend",
			"budget": "Under $25",
			"occasion": "Birthday"
		}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := setupTestRouter(false)

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight request short-circuits", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/api/v1/recommendations", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	recommender := usecase.NewRecommendService(testCatalog(), usecase.RecommendConfig{})
	handler := NewHandler(recommender, nil, time.Minute)
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{PerIP: 1, Burst: 1}
	router := SetupRouter(cfg, handler)

	payload := `{
		"age": 25,
		"relationship": "friend",
		"budget": "Under $25",
		"occasion": "Birthday"
	}`

	first := postRecommendations(router, payload)
	require.Equal(t, http.StatusOK, first.Code)

	second := postRecommendations(router, payload)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
