package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/giftwise/backend/internal/domain"
)

// Hybrid blend weights: final ranking score is a fixed linear blend of the
// content and collaborative scores.
const (
	defaultContentBlendWeight       = 0.7
	defaultCollaborativeBlendWeight = 0.3
)

// defaultRecommendationLimit is used when the caller passes limit <= 0.
const defaultRecommendationLimit = 10

// RecommendConfig holds configuration for a recommendation service.
type RecommendConfig struct {
	// Weights are the content score factor weights; zero value means defaults.
	Weights ScoringWeights
	// ContentBlendWeight and CollaborativeBlendWeight form the hybrid blend;
	// both zero means the 0.7/0.3 defaults.
	ContentBlendWeight       float64
	CollaborativeBlendWeight float64
	// MaxNeighbors and BuildWorkers configure the similarity index build.
	MaxNeighbors int
	BuildWorkers int
	// DefaultLimit is the result size used when the caller passes limit <= 0.
	DefaultLimit       int
	EnableDebugLogging bool
}

// RecommendService turns a preference profile into a ranked, deduplicated
// top-N product list. It owns an immutable catalog snapshot and the
// similarity index built from it; all state is written once at construction,
// so one instance is safe for concurrent readers. A different catalog
// requires a new instance.
type RecommendService struct {
	products      []domain.Product
	scorer        *ScoringService
	index         SimilarityIndex
	contentWeight float64
	collabWeight  float64
	defaultLimit  int
	debugLogging  bool
}

// NewRecommendService builds a recommendation service over the given
// catalog. The similarity index is built synchronously here; for large
// catalogs this O(n^2) build is the dominant construction cost.
func NewRecommendService(products []domain.Product, cfg RecommendConfig) *RecommendService {
	contentWeight := cfg.ContentBlendWeight
	collabWeight := cfg.CollaborativeBlendWeight
	if contentWeight == 0 && collabWeight == 0 {
		contentWeight = defaultContentBlendWeight
		collabWeight = defaultCollaborativeBlendWeight
	}

	defaultLimit := cfg.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultRecommendationLimit
	}

	catalog := make([]domain.Product, len(products))
	copy(catalog, products)

	index := BuildSimilarityIndex(catalog, SimilarityConfig{
		MaxNeighbors:       cfg.MaxNeighbors,
		BuildWorkers:       cfg.BuildWorkers,
		EnableDebugLogging: cfg.EnableDebugLogging,
	})

	return &RecommendService{
		products:      catalog,
		scorer:        NewScoringService(cfg.Weights),
		index:         index,
		contentWeight: contentWeight,
		collabWeight:  collabWeight,
		defaultLimit:  defaultLimit,
		debugLogging:  cfg.EnableDebugLogging,
	}
}

// Scorer exposes the underlying content scorer, mainly for per-item score
// inspection in tests and tooling.
func (s *RecommendService) Scorer() *ScoringService {
	return s.scorer
}

// CatalogSize returns the number of products the service was built over.
func (s *RecommendService) CatalogSize() int {
	return len(s.products)
}

// GetRecommendations returns up to limit products ranked by descending
// hybrid score. Candidates are pre-filtered to the profile's budget
// interval, scored, stably sorted, then deduplicated by display name (first
// occurrence wins). An empty catalog or empty filtered set yields an empty
// slice, not an error. Output is deterministic for identical inputs.
func (s *RecommendService) GetRecommendations(ctx context.Context, prefs *domain.UserPreferences, limit int) ([]domain.Product, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Content scores for the whole catalog: candidates need them directly,
	// and collaborative scoring reads them for neighbors that may sit
	// outside the budget filter.
	contentScores := make(map[string]float64, len(s.products))
	for i := range s.products {
		contentScores[s.products[i].ID] = s.scorer.ContentScore(&s.products[i], prefs)
	}

	minPrice, maxPrice := prefs.BudgetRange.Bounds()

	type scoredProduct struct {
		product *domain.Product
		score   float64
	}
	scored := make([]scoredProduct, 0, len(s.products))
	for i := range s.products {
		p := &s.products[i]
		if p.Price < minPrice || p.Price > maxPrice {
			continue
		}
		hybrid := s.contentWeight*contentScores[p.ID] +
			s.collabWeight*s.collaborativeScore(p.ID, contentScores)
		scored = append(scored, scoredProduct{product: p, score: hybrid})
	}

	// Stable sort keeps catalog order as the tie-break, which makes the
	// ranking reproducible for identical inputs.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	// Dedupe by display name: the first (highest-scored) occurrence of each
	// name wins, later products sharing the name are dropped regardless of
	// other attribute differences.
	results := make([]domain.Product, 0, limit)
	seenNames := make(map[string]bool, limit)
	for _, sp := range scored {
		if seenNames[sp.product.Name] {
			continue
		}
		seenNames[sp.product.Name] = true
		results = append(results, *sp.product)
		if len(results) == limit {
			break
		}
	}

	if s.debugLogging {
		log.Printf("[RECOMMEND] budget=%q candidates=%d returned=%d",
			prefs.BudgetRange, len(scored), len(results))
	}

	return results, nil
}

// collaborativeScore averages the content scores of the product's stored
// neighbors, each weighted by its similarity. A product with no neighbors
// scores 0.
func (s *RecommendService) collaborativeScore(productID string, contentScores map[string]float64) float64 {
	neighbors := s.index.Neighbors(productID)
	if len(neighbors) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range neighbors {
		sum += contentScores[n.ProductID] * n.Similarity
	}
	return sum / float64(len(neighbors))
}
