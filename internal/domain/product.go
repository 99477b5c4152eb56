package domain

// AgeRange is the inclusive recipient age band a product is suitable for.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Dimensions holds physical product dimensions. Descriptive only; the
// recommendation engine never reads these.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ShippingInfo holds shipping details. Descriptive only.
type ShippingInfo struct {
	IsFreeShipping bool `json:"isFreeShipping"`
	EstimatedDays  int  `json:"estimatedDays"`
}

// Product is an immutable catalog entry. Name is not guaranteed unique
// across the catalog; the recommender deduplicates final results by name.
type Product struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	Price                 float64        `json:"price"`
	ImageURL              string         `json:"imageUrl"`
	AgeRange              AgeRange       `json:"ageRange"`
	Interests             []Interest     `json:"interests"`
	SuitableRelationships []Relationship `json:"suitableRelationships"`
	SuitableOccasions     []Occasion     `json:"suitableOccasions"`
	Tags                  []string       `json:"tags,omitempty"`
	Rating                float64        `json:"rating"`
	Popularity            int            `json:"popularity"`
	InStock               bool           `json:"inStock"`
	Brand                 string         `json:"brand,omitempty"`
	Category              string         `json:"category,omitempty"`
	Weight                float64        `json:"weight,omitempty"`
	Dimensions            Dimensions     `json:"dimensions"`
	ShippingInfo          ShippingInfo   `json:"shippingInfo"`
}

// HasInterest reports whether the product carries the given interest tag.
func (p *Product) HasInterest(interest Interest) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// SuitsRelationship reports whether the product is suitable for the given
// recipient relationship.
func (p *Product) SuitsRelationship(rel Relationship) bool {
	for _, r := range p.SuitableRelationships {
		if r == rel {
			return true
		}
	}
	return false
}

// SuitsOccasion reports whether the product is suitable for the given occasion.
func (p *Product) SuitsOccasion(occ Occasion) bool {
	for _, o := range p.SuitableOccasions {
		if o == occ {
			return true
		}
	}
	return false
}

// SimilarityEntry is one precomputed neighbor of a product: the neighbor's
// catalog id and its attribute similarity score in [0,1].
type SimilarityEntry struct {
	ProductID  string  `json:"productId"`
	Similarity float64 `json:"similarity"`
}
