package catalog

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/giftwise/backend/internal/domain"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Defaults applied to records that omit the field. The upstream gift list
// export carries neither ratings nor popularity counts.
const (
	defaultRating     = 4.5
	defaultPopularity = 500
	defaultAgeMin     = 0
	defaultAgeMax     = 100
)

// rawRecord is one entry of the JSON catalog file. Enum-typed fields arrive
// as free text (the file is exported from a spreadsheet) and are coerced
// into the closed enumerations by the domain parse functions.
type rawRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	BudgetRange  string   `json:"budget_range"`
	Occasion     string   `json:"occasion"`
	AgeRange     string   `json:"age_range"`
	Relationship string   `json:"relationship"`
	Interests    string   `json:"interests"`
	Notes        string   `json:"notes"`
	Rating       *float64 `json:"rating"`
	Popularity   *int     `json:"popularity"`
}

// FileSource loads the product catalog from a JSON file.
type FileSource struct {
	path  string
	debug bool
}

// NewFileSource creates a catalog source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// SetDebug toggles per-record mapping logs.
func (s *FileSource) SetDebug(debug bool) {
	s.debug = debug
}

// Load reads and maps the catalog file. Records are returned in file order;
// the order is part of the recommender's deterministic tie-break contract.
func (s *FileSource) Load(ctx context.Context) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrCatalogUnavailable, s.path, err)
	}

	products := make([]domain.Product, 0, len(records))
	for i, record := range records {
		product := mapRecord(record)
		if product.ID == "" {
			product.ID = uuid.NewString()
		}
		if s.debug {
			log.Printf("[CATALOG] record %d -> id=%s name=%q interests=%v",
				i, product.ID, product.Name, product.Interests)
		}
		products = append(products, product)
	}

	return products, nil
}

// mapRecord converts a raw file record to a domain product, applying the
// fixed fallback policy for unmapped free-text enum values.
func mapRecord(record rawRecord) domain.Product {
	rating := defaultRating
	if record.Rating != nil {
		rating = *record.Rating
	}
	popularity := defaultPopularity
	if record.Popularity != nil {
		popularity = *record.Popularity
	}

	var tags []string
	if record.Notes != "" {
		tags = []string{record.Notes}
	}

	return domain.Product{
		ID:                    record.ID,
		Name:                  record.Name,
		Description:           record.Description,
		Price:                 record.Price,
		AgeRange:              parseAgeRange(record.AgeRange),
		Interests:             parseInterestList(record.Interests),
		SuitableRelationships: []domain.Relationship{domain.ParseRelationship(record.Relationship)},
		SuitableOccasions:     []domain.Occasion{domain.ParseOccasion(record.Occasion)},
		Tags:                  tags,
		Rating:                rating,
		Popularity:            popularity,
		InStock:               true,
		Weight:                1,
		Dimensions:            domain.Dimensions{Length: 1, Width: 1, Height: 1},
		ShippingInfo:          domain.ShippingInfo{IsFreeShipping: true, EstimatedDays: 5},
	}
}

// parseAgeRange parses "min-max" strings like "18-40". Anything else falls
// back to the full 0-100 band.
func parseAgeRange(value string) domain.AgeRange {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) == 2 {
		min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
		max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errMin == nil && errMax == nil && min <= max {
			return domain.AgeRange{Min: min, Max: max}
		}
	}
	return domain.AgeRange{Min: defaultAgeMin, Max: defaultAgeMax}
}

// parseInterestList splits a comma-separated interest string and maps each
// entry through the total interest parser. Empty input yields no interests.
func parseInterestList(value string) []domain.Interest {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	interests := make([]domain.Interest, 0, len(parts))
	seen := make(map[domain.Interest]bool, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		interest := domain.ParseInterest(part)
		if !seen[interest] {
			seen[interest] = true
			interests = append(interests, interest)
		}
	}
	return interests
}
