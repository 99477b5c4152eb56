package http

import "github.com/giftwise/backend/internal/domain"

// fallbackSuggestions is the fixed example list served when the engine
// returns no results, so the quiz never renders an empty state.
var fallbackSuggestions = []domain.Product{
	{
		ID:          "fallback-1",
		Name:        "Gift Card",
		Description: "A flexible gift card lets them pick exactly what they want.",
		Price:       25,
		AgeRange:    domain.AgeRange{Min: 0, Max: 100},
		Interests:   []domain.Interest{domain.InterestCreative},
		SuitableRelationships: []domain.Relationship{
			domain.RelationshipFriend, domain.RelationshipCoworker, domain.RelationshipOther,
		},
		SuitableOccasions: []domain.Occasion{domain.OccasionJustBecause, domain.OccasionOther},
		Rating:            4.5,
		Popularity:        800,
		InStock:           true,
	},
	{
		ID:          "fallback-2",
		Name:        "Scented Candle Set",
		Description: "A warm, safe pick for nearly any home and any occasion.",
		Price:       20,
		AgeRange:    domain.AgeRange{Min: 16, Max: 100},
		Interests:   []domain.Interest{domain.InterestCreative},
		SuitableRelationships: []domain.Relationship{
			domain.RelationshipFriend, domain.RelationshipParent, domain.RelationshipSibling,
		},
		SuitableOccasions: []domain.Occasion{domain.OccasionBirthday, domain.OccasionChristmas},
		Rating:            4.3,
		Popularity:        650,
		InStock:           true,
	},
	{
		ID:          "fallback-3",
		Name:        "Bestseller Novel",
		Description: "A widely loved recent bestseller in a giftable hardcover.",
		Price:       18,
		AgeRange:    domain.AgeRange{Min: 14, Max: 100},
		Interests:   []domain.Interest{domain.InterestReading},
		SuitableRelationships: []domain.Relationship{
			domain.RelationshipFriend, domain.RelationshipParent, domain.RelationshipPartner,
		},
		SuitableOccasions: []domain.Occasion{domain.OccasionBirthday, domain.OccasionJustBecause},
		Rating:            4.6,
		Popularity:        720,
		InStock:           true,
	},
	{
		ID:          "fallback-4",
		Name:        "Gourmet Chocolate Box",
		Description: "Assorted gourmet chocolates, boxed and ribboned.",
		Price:       22,
		AgeRange:    domain.AgeRange{Min: 5, Max: 100},
		Interests:   []domain.Interest{domain.InterestCooking},
		SuitableRelationships: []domain.Relationship{
			domain.RelationshipPartner, domain.RelationshipCoworker, domain.RelationshipOther,
		},
		SuitableOccasions: []domain.Occasion{
			domain.OccasionValentines, domain.OccasionAnniversary, domain.OccasionJustBecause,
		},
		Rating:     4.4,
		Popularity: 690,
		InStock:    true,
	},
}

// FallbackSuggestions returns a copy of the static example gift list.
func FallbackSuggestions() []domain.Product {
	out := make([]domain.Product, len(fallbackSuggestions))
	copy(out, fallbackSuggestions)
	return out
}
