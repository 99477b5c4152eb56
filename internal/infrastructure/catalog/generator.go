package catalog

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/giftwise/backend/internal/domain"
	"github.com/google/uuid"
)

// giftNamespace namespaces the deterministic product ids so regenerating
// with the same seed yields an identical catalog.
var giftNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("giftwise.catalog"))

var allInterests = []domain.Interest{
	domain.InterestPhotography, domain.InterestMusic, domain.InterestReading,
	domain.InterestCooking, domain.InterestTravel, domain.InterestTechnology,
	domain.InterestCreative, domain.InterestGaming,
}

var allRelationships = []domain.Relationship{
	domain.RelationshipFriend, domain.RelationshipPartner, domain.RelationshipParent,
	domain.RelationshipChild, domain.RelationshipSibling, domain.RelationshipCoworker,
	domain.RelationshipOther,
}

var allOccasions = []domain.Occasion{
	domain.OccasionBirthday, domain.OccasionChristmas, domain.OccasionAnniversary,
	domain.OccasionValentines, domain.OccasionGraduation, domain.OccasionWedding,
	domain.OccasionJustBecause, domain.OccasionOther,
}

var nameAdjectives = []string{
	"Classic", "Deluxe", "Handmade", "Vintage", "Smart", "Cozy", "Premium", "Portable",
}

var nameNouns = []string{
	"Camera Strap", "Headphones", "Book Set", "Cookware Kit", "Travel Organizer",
	"Gadget Stand", "Sketch Kit", "Game Bundle", "Photo Album", "Speaker",
}

// SyntheticSource generates a deterministic pseudo-random catalog. Intended
// for demos and benchmarks when no catalog file is configured.
type SyntheticSource struct {
	size int
	seed int64
}

// NewSyntheticSource creates a generator producing size products from seed.
func NewSyntheticSource(size int, seed int64) *SyntheticSource {
	if size <= 0 {
		size = 500
	}
	return &SyntheticSource{size: size, seed: seed}
}

// Load generates the catalog. Identical (size, seed) pairs always produce
// the identical product sequence, ids included.
func (s *SyntheticSource) Load(ctx context.Context) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rng := rand.New(rand.NewSource(s.seed))
	products := make([]domain.Product, 0, s.size)
	for i := 0; i < s.size; i++ {
		products = append(products, s.generate(rng, i))
	}
	return products, nil
}

func (s *SyntheticSource) generate(rng *rand.Rand, index int) domain.Product {
	name := fmt.Sprintf("%s %s",
		nameAdjectives[rng.Intn(len(nameAdjectives))],
		nameNouns[rng.Intn(len(nameNouns))])

	ageMin := rng.Intn(60)
	ageMax := ageMin + 5 + rng.Intn(40)

	interests := pickInterests(rng)

	return domain.Product{
		ID:          uuid.NewSHA1(giftNamespace, []byte(fmt.Sprintf("gift-%d-%d", s.seed, index))).String(),
		Name:        name,
		Description: fmt.Sprintf("%s, a thoughtful gift pick.", name),
		Price:       float64(rng.Intn(15000)) / 100,
		AgeRange:    domain.AgeRange{Min: ageMin, Max: ageMax},
		Interests:   interests,
		SuitableRelationships: []domain.Relationship{
			allRelationships[rng.Intn(len(allRelationships))],
		},
		SuitableOccasions: []domain.Occasion{
			allOccasions[rng.Intn(len(allOccasions))],
		},
		Rating:       1 + rng.Float64()*4,
		Popularity:   rng.Intn(1000),
		InStock:      rng.Intn(10) != 0,
		Weight:       0.1 + rng.Float64()*5,
		Dimensions:   domain.Dimensions{Length: 1 + rng.Float64()*30, Width: 1 + rng.Float64()*30, Height: 1 + rng.Float64()*30},
		ShippingInfo: domain.ShippingInfo{IsFreeShipping: rng.Intn(2) == 0, EstimatedDays: 1 + rng.Intn(9)},
	}
}

// pickInterests draws one to three distinct interest tags.
func pickInterests(rng *rand.Rand) []domain.Interest {
	count := 1 + rng.Intn(3)
	picked := make([]domain.Interest, 0, count)
	seen := make(map[domain.Interest]bool, count)
	for len(picked) < count {
		interest := allInterests[rng.Intn(len(allInterests))]
		if !seen[interest] {
			seen[interest] = true
			picked = append(picked, interest)
		}
	}
	return picked
}
