package domain

import (
	"math"
	"strings"
)

// Relationship describes who the gift recipient is to the buyer.
type Relationship string

const (
	RelationshipFriend   Relationship = "Friend"
	RelationshipPartner  Relationship = "Partner/Spouse"
	RelationshipParent   Relationship = "Parent"
	RelationshipChild    Relationship = "Child"
	RelationshipSibling  Relationship = "Sibling"
	RelationshipCoworker Relationship = "Coworker"
	RelationshipOther    Relationship = "Other"
)

// Interest is one of the closed set of interest tags a product can appeal to.
type Interest string

const (
	InterestPhotography Interest = "Photography"
	InterestMusic       Interest = "Music"
	InterestReading     Interest = "Reading"
	InterestCooking     Interest = "Cooking"
	InterestTravel      Interest = "Travel"
	InterestTechnology  Interest = "Technology"
	InterestCreative    Interest = "Creative"
	InterestGaming      Interest = "Gaming"
)

// BudgetRange is a display label mapping to a closed price interval.
type BudgetRange string

const (
	BudgetUnder25 BudgetRange = "Under $25"
	Budget25To50  BudgetRange = "$25 - $50"
	Budget50To100 BudgetRange = "$50 - $100"
	BudgetOver100 BudgetRange = "Over $100"
)

// Occasion is the event the gift is being bought for.
type Occasion string

const (
	OccasionBirthday    Occasion = "Birthday"
	OccasionChristmas   Occasion = "Christmas"
	OccasionAnniversary Occasion = "Anniversary"
	OccasionValentines  Occasion = "Valentine's Day"
	OccasionGraduation  Occasion = "Graduation"
	OccasionWedding     Occasion = "Wedding"
	OccasionJustBecause Occasion = "Just Because"
	OccasionOther       Occasion = "Other"
)

// Fallback values used when free-text input does not map to any enum member.
// The catalog data and quiz form both arrive as free text, so every parse
// function below is total: unrecognized input resolves to these defaults
// rather than an error.
const (
	DefaultRelationship = RelationshipOther
	DefaultInterest     = InterestCreative
	DefaultOccasion     = OccasionOther
	DefaultBudgetRange  = BudgetUnder25
)

// ParseRelationship maps a free-text relationship string to a Relationship.
func ParseRelationship(value string) Relationship {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "friend":
		return RelationshipFriend
	case "partner", "spouse", "partner/spouse":
		return RelationshipPartner
	case "parent":
		return RelationshipParent
	case "child":
		return RelationshipChild
	case "sibling":
		return RelationshipSibling
	case "coworker":
		return RelationshipCoworker
	default:
		return DefaultRelationship
	}
}

// ParseInterest maps a free-text interest string to an Interest.
func ParseInterest(value string) Interest {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "photography":
		return InterestPhotography
	case "music":
		return InterestMusic
	case "reading":
		return InterestReading
	case "cooking":
		return InterestCooking
	case "travel":
		return InterestTravel
	case "tech", "technology":
		return InterestTechnology
	case "creative":
		return InterestCreative
	case "gaming":
		return InterestGaming
	default:
		return DefaultInterest
	}
}

// ParseBudgetRange maps a budget selector label to a BudgetRange.
func ParseBudgetRange(value string) BudgetRange {
	switch strings.TrimSpace(value) {
	case string(BudgetUnder25):
		return BudgetUnder25
	case string(Budget25To50):
		return Budget25To50
	case string(Budget50To100):
		return Budget50To100
	case string(BudgetOver100):
		return BudgetOver100
	default:
		return DefaultBudgetRange
	}
}

// ParseOccasion maps an occasion selector label to an Occasion.
func ParseOccasion(value string) Occasion {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "birthday":
		return OccasionBirthday
	case "christmas":
		return OccasionChristmas
	case "anniversary":
		return OccasionAnniversary
	case "valentine's day", "valentines day":
		return OccasionValentines
	case "graduation":
		return OccasionGraduation
	case "wedding":
		return OccasionWedding
	case "just because":
		return OccasionJustBecause
	default:
		return DefaultOccasion
	}
}

// Bounds returns the closed price interval [min, max] for the budget range.
// The top range is unbounded above.
func (b BudgetRange) Bounds() (min, max float64) {
	switch b {
	case BudgetUnder25:
		return 0, 25
	case Budget25To50:
		return 25, 50
	case Budget50To100:
		return 50, 100
	case BudgetOver100:
		return 100, math.Inf(1)
	default:
		return 0, math.Inf(1)
	}
}

// knownRelationships is used for profile validation.
var knownRelationships = map[Relationship]bool{
	RelationshipFriend: true, RelationshipPartner: true, RelationshipParent: true,
	RelationshipChild: true, RelationshipSibling: true, RelationshipCoworker: true,
	RelationshipOther: true,
}

// knownInterests is used for profile validation.
var knownInterests = map[Interest]bool{
	InterestPhotography: true, InterestMusic: true, InterestReading: true,
	InterestCooking: true, InterestTravel: true, InterestTechnology: true,
	InterestCreative: true, InterestGaming: true,
}

// knownBudgetRanges is used for profile validation.
var knownBudgetRanges = map[BudgetRange]bool{
	BudgetUnder25: true, Budget25To50: true, Budget50To100: true, BudgetOver100: true,
}

// knownOccasions is used for profile validation.
var knownOccasions = map[Occasion]bool{
	OccasionBirthday: true, OccasionChristmas: true, OccasionAnniversary: true,
	OccasionValentines: true, OccasionGraduation: true, OccasionWedding: true,
	OccasionJustBecause: true, OccasionOther: true,
}
