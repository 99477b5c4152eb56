package usecase

import (
	"math"

	"github.com/giftwise/backend/internal/domain"
)

// Default content score weights. They sum to 1.0, so a content score stays
// in [0,1] except for the popularity overflow case noted below.
const (
	defaultAgeWeight          = 0.15
	defaultInterestWeight     = 0.25
	defaultRelationshipWeight = 0.15
	defaultOccasionWeight     = 0.15
	defaultBudgetWeight       = 0.15
	defaultPopularityWeight   = 0.075
	defaultRatingWeight       = 0.075
)

// ageDecayYears is the window over which the age score decays linearly to 0
// once the recipient age falls outside the product's age range.
const ageDecayYears = 20.0

// popularityCeiling normalizes the popularity count. Counts above it push
// the popularity component past 1.0; that overflow is kept as a bonus.
const popularityCeiling = 1000.0

// maxRating is the top of the product rating scale.
const maxRating = 5.0

// belowBudgetScore is the fixed budget score for products priced below the
// selected range. Cheaper than asked for is still an acceptable gift.
const belowBudgetScore = 0.5

// ScoringWeights holds the per-factor weights of the content score. Exposed
// as configuration so tests can perturb individual factors without code
// changes.
type ScoringWeights struct {
	Age          float64
	Interest     float64
	Relationship float64
	Occasion     float64
	Budget       float64
	Popularity   float64
	Rating       float64
}

// DefaultScoringWeights returns the standard factor weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Age:          defaultAgeWeight,
		Interest:     defaultInterestWeight,
		Relationship: defaultRelationshipWeight,
		Occasion:     defaultOccasionWeight,
		Budget:       defaultBudgetWeight,
		Popularity:   defaultPopularityWeight,
		Rating:       defaultRatingWeight,
	}
}

// ScoringService computes content-based match scores between a single
// product and a preference profile. It is stateless and safe for concurrent
// use.
type ScoringService struct {
	weights ScoringWeights
}

// NewScoringService creates a scoring service. A zero-value weights struct
// falls back to the defaults.
func NewScoringService(weights ScoringWeights) *ScoringService {
	if weights == (ScoringWeights{}) {
		weights = DefaultScoringWeights()
	}
	return &ScoringService{weights: weights}
}

// ContentScore returns the weighted content match score for the product
// against the profile. All components are normalized to [0,1] before
// weighting; the popularity component may exceed 1 for very popular items.
func (s *ScoringService) ContentScore(product *domain.Product, prefs *domain.UserPreferences) float64 {
	w := s.weights
	return s.AgeScore(product, prefs.Age)*w.Age +
		s.InterestScore(product, prefs.Interests)*w.Interest +
		s.RelationshipScore(product, prefs.Relationship)*w.Relationship +
		s.OccasionScore(product, prefs.Occasion)*w.Occasion +
		s.BudgetScore(product, prefs.BudgetRange)*w.Budget +
		s.PopularityScore(product)*w.Popularity +
		s.RatingScore(product)*w.Rating
}

// AgeScore is 1 when the recipient age lies inside the product's age range,
// and decays linearly to 0 over a 20-year window outside it.
func (s *ScoringService) AgeScore(product *domain.Product, age int) float64 {
	min, max := product.AgeRange.Min, product.AgeRange.Max
	if age >= min && age <= max {
		return 1
	}
	distance := math.Min(math.Abs(float64(age-min)), math.Abs(float64(age-max)))
	return math.Max(0, 1-distance/ageDecayYears)
}

// InterestScore is the fraction of the profile's interests the product
// covers. A profile with no interests scores 0, not an error.
func (s *ScoringService) InterestScore(product *domain.Product, interests []domain.Interest) float64 {
	if len(interests) == 0 {
		return 0
	}
	matching := 0
	for _, interest := range interests {
		if product.HasInterest(interest) {
			matching++
		}
	}
	return float64(matching) / float64(len(interests))
}

// RelationshipScore is 1 when the product suits the recipient relationship,
// else 0.
func (s *ScoringService) RelationshipScore(product *domain.Product, rel domain.Relationship) float64 {
	if product.SuitsRelationship(rel) {
		return 1
	}
	return 0
}

// OccasionScore is 1 when the product suits the occasion, else 0.
func (s *ScoringService) OccasionScore(product *domain.Product, occ domain.Occasion) float64 {
	if product.SuitsOccasion(occ) {
		return 1
	}
	return 0
}

// BudgetScore is 1 inside the budget interval and exactly 0.5 below it.
// Above the interval it decays linearly with the overshoot. The recommender
// pre-filters candidates to the budget interval, so the below/above branches
// are only reachable through direct scorer calls; both are kept because the
// per-item score is an observable part of the scorer API.
func (s *ScoringService) BudgetScore(product *domain.Product, budget domain.BudgetRange) float64 {
	min, max := budget.Bounds()
	if product.Price >= min && product.Price <= max {
		return 1
	}
	if product.Price < min {
		return belowBudgetScore
	}
	return math.Max(0, 1-(product.Price-max)/max)
}

// PopularityScore normalizes the popularity count against popularityCeiling.
// Deliberately not clamped above 1.
func (s *ScoringService) PopularityScore(product *domain.Product) float64 {
	return float64(product.Popularity) / popularityCeiling
}

// RatingScore normalizes the rating to [0,1].
func (s *ScoringService) RatingScore(product *domain.Product) float64 {
	return product.Rating / maxRating
}
