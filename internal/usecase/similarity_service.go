package usecase

import (
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/giftwise/backend/internal/domain"
)

// Similarity component weights. They sum to 1.0 so pairwise similarity stays
// in [0,1].
const (
	interestSimWeight     = 0.35
	priceSimWeight        = 0.20
	ageRangeSimWeight     = 0.15
	relationshipSimWeight = 0.15
	occasionSimWeight     = 0.15
)

// defaultMaxNeighbors caps each product's stored neighbor list.
const defaultMaxNeighbors = 10

// SimilarityConfig holds configuration for building a similarity index.
type SimilarityConfig struct {
	// MaxNeighbors is the per-product neighbor cap; defaults to 10.
	MaxNeighbors int
	// BuildWorkers is the number of goroutines the pairwise build is
	// partitioned across; defaults to runtime.NumCPU().
	BuildWorkers int
	// EnableDebugLogging logs build timing.
	EnableDebugLogging bool
}

// SimilarityIndex maps each product id to its neighbors ordered by
// descending similarity. Built once per catalog and read-only afterwards.
type SimilarityIndex map[string][]domain.SimilarityEntry

// Neighbors returns the stored neighbor list for a product id, or nil when
// the id is unknown.
func (idx SimilarityIndex) Neighbors(productID string) []domain.SimilarityEntry {
	return idx[productID]
}

// BuildSimilarityIndex precomputes, for every product in the catalog, its
// most similar other products. The pairwise computation is O(n^2) in catalog
// size and is the cold-start cost of constructing a recommender; it is never
// paid per recommendation request. Each product's neighbor list is computed
// independently, so the build is partitioned across workers with no shared
// state beyond the preallocated result slots.
func BuildSimilarityIndex(products []domain.Product, cfg SimilarityConfig) SimilarityIndex {
	maxNeighbors := cfg.MaxNeighbors
	if maxNeighbors <= 0 {
		maxNeighbors = defaultMaxNeighbors
	}
	workers := cfg.BuildWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(products) {
		workers = len(products)
	}

	start := time.Now()
	neighborLists := make([][]domain.SimilarityEntry, len(products))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < len(products); i += workers {
				neighborLists[i] = neighborsOf(products, i, maxNeighbors)
			}
		}(w)
	}
	wg.Wait()

	index := make(SimilarityIndex, len(products))
	for i := range products {
		index[products[i].ID] = neighborLists[i]
	}

	if cfg.EnableDebugLogging {
		log.Printf("[SIMILARITY] Built index for %d products (workers=%d) in %s",
			len(products), workers, time.Since(start))
	}

	return index
}

// neighborsOf computes the ordered neighbor list for products[i], excluding
// the product itself. Ties keep catalog iteration order (stable sort).
func neighborsOf(products []domain.Product, i, maxNeighbors int) []domain.SimilarityEntry {
	entries := make([]domain.SimilarityEntry, 0, len(products)-1)
	for j := range products {
		if j == i {
			continue
		}
		entries = append(entries, domain.SimilarityEntry{
			ProductID:  products[j].ID,
			Similarity: ProductSimilarity(&products[i], &products[j]),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Similarity > entries[b].Similarity
	})

	if len(entries) > maxNeighbors {
		entries = entries[:maxNeighbors]
	}
	return entries
}

// ProductSimilarity computes the weighted attribute similarity between two
// products, in [0,1]. Symmetric in its arguments.
func ProductSimilarity(p, q *domain.Product) float64 {
	return interestSimWeight*interestSimilarity(p, q) +
		priceSimWeight*priceSimilarity(p, q) +
		ageRangeSimWeight*ageRangeSimilarity(p, q) +
		relationshipSimWeight*relationshipSimilarity(p, q) +
		occasionSimWeight*occasionSimilarity(p, q)
}

// interestSimilarity is the Jaccard similarity of the two interest sets.
func interestSimilarity(p, q *domain.Product) float64 {
	set := make(map[domain.Interest]bool, len(p.Interests))
	for _, i := range p.Interests {
		set[i] = true
	}
	intersection := 0
	union := len(set)
	for _, i := range q.Interests {
		if set[i] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// priceSimilarity is 1 minus the relative price gap, clamped at 0. Two
// zero-priced products have no defined relative gap and score 0.
func priceSimilarity(p, q *domain.Product) float64 {
	maxPrice := math.Max(p.Price, q.Price)
	if maxPrice == 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(p.Price-q.Price)/maxPrice)
}

// ageRangeSimilarity is the overlap of the two age intervals divided by
// their total span, clamped at 0. A zero-length span scores 0.
func ageRangeSimilarity(p, q *domain.Product) float64 {
	overlap := float64(min(p.AgeRange.Max, q.AgeRange.Max) - max(p.AgeRange.Min, q.AgeRange.Min))
	span := float64(max(p.AgeRange.Max, q.AgeRange.Max) - min(p.AgeRange.Min, q.AgeRange.Min))
	if span == 0 {
		return 0
	}
	return math.Max(0, overlap/span)
}

// relationshipSimilarity is the Jaccard similarity of the suitable
// relationship sets.
func relationshipSimilarity(p, q *domain.Product) float64 {
	set := make(map[domain.Relationship]bool, len(p.SuitableRelationships))
	for _, r := range p.SuitableRelationships {
		set[r] = true
	}
	intersection := 0
	union := len(set)
	for _, r := range q.SuitableRelationships {
		if set[r] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// occasionSimilarity is the Jaccard similarity of the suitable occasion sets.
func occasionSimilarity(p, q *domain.Product) float64 {
	set := make(map[domain.Occasion]bool, len(p.SuitableOccasions))
	for _, o := range p.SuitableOccasions {
		set[o] = true
	}
	intersection := 0
	union := len(set)
	for _, o := range q.SuitableOccasions {
		if set[o] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
